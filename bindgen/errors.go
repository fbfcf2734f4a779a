package bindgen

import "fmt"

// SchemaError reports a defect in the input metadata that generation
// cannot recover from: a call with positional fields, or a declared
// call with no recorded fingerprint. These are contract violations in
// the input, equivalent to a build failure; the CLI exits non-zero on
// any of them.
type SchemaError struct {
	Pallet string
	Call   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("metadata defect in call %s.%s: %s", e.Pallet, e.Call, e.Reason)
}
