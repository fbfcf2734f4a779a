package golang

// DefaultRuntimeImport is the import path of the runtime support
// package generated code depends on.
const DefaultRuntimeImport = "github.com/chainbind/chainbind"

// Config contains Go-backend options.
type Config struct {
	// Unchecked drops the pre-dispatch fingerprint comparison from
	// generated accessors: they always construct and return the
	// dispatch handle. Opt-in; the default is checked accessors.
	Unchecked bool

	// RuntimeImport overrides the runtime support package import path.
	RuntimeImport string

	// Imports lists extra import paths made available to field type
	// expressions (e.g. the package the runtime's primitive types live
	// in). Unused imports are pruned during formatting.
	Imports []string

	// TypeMappings rewrites metadata type references to target type
	// expressions. e.g. map[string]string{"Balance": "types.U128"}
	TypeMappings map[string]string
}
