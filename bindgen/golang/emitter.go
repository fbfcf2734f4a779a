// Package golang renders binding IR into Go source: one package per
// pallet, holding the call payload structs and the pallet's
// TransactionAPI with one accessor per call.
package golang

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/tools/imports"

	"github.com/chainbind/chainbind/bindgen/ir"
	"github.com/chainbind/chainbind/metadata"
)

const fileHeader = "// Code generated by chainbind. DO NOT EDIT.\n\n"

// Emitter renders binding modules into Go source files.
type Emitter struct {
	config Config
}

// NewEmitter creates an Emitter with defaults applied.
func NewEmitter(cfg Config) *Emitter {
	if cfg.RuntimeImport == "" {
		cfg.RuntimeImport = DefaultRuntimeImport
	}
	return &Emitter{config: cfg}
}

// FileName returns the relative output path for a module's source file.
func (e *Emitter) FileName(mod *ir.Module) string {
	return mod.Package + "/calls.go"
}

// EmitModule renders one module into a formatted Go source file.
// Formatting also fixes up the import block, pruning any configured
// imports the module's field types do not use.
func (e *Emitter) EmitModule(mod *ir.Module) ([]byte, error) {
	var buf bytes.Buffer
	e.emitModule(&buf, mod)

	src, err := imports.Process(e.FileName(mod), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated package %s: %w", mod.Package, err)
	}
	return src, nil
}

func (e *Emitter) emitModule(buf *bytes.Buffer, mod *ir.Module) {
	buf.WriteString(fileHeader)
	emitDocs(buf, mod.Docs)
	fmt.Fprintf(buf, "package %s\n\n", mod.Package)

	buf.WriteString("import (\n")
	fmt.Fprintf(buf, "\tchainbind %q\n", e.config.RuntimeImport)
	for _, imp := range e.config.Imports {
		fmt.Fprintf(buf, "\t%q\n", imp)
	}
	buf.WriteString(")\n\n")

	for i := range mod.Bindings {
		e.emitStruct(buf, &mod.Bindings[i].Struct)
	}
	e.emitTransactionAPI(buf, mod)
}

// emitStruct emits one payload struct and its capability association.
func (e *Emitter) emitStruct(buf *bytes.Buffer, def *ir.Struct) {
	emitDocs(buf, def.Docs)
	if def.Shape.Kind == ir.NoFields {
		fmt.Fprintf(buf, "type %s struct{}\n\n", def.Name)
	} else {
		fmt.Fprintf(buf, "type %s struct {\n", def.Name)
		for _, f := range def.Shape.Fields {
			fmt.Fprintf(buf, "\t%s %s `call:%q`\n", fieldName(f.Name), e.fieldType(f), f.Name)
		}
		buf.WriteString("}\n\n")
	}

	fmt.Fprintf(buf, "func (%s) PalletName() string { return %q }\n\n", def.Name, def.Pallet)
	fmt.Fprintf(buf, "func (%s) CallName() string { return %q }\n\n", def.Name, def.Call)
}

func (e *Emitter) emitTransactionAPI(buf *bytes.Buffer, mod *ir.Module) {
	fmt.Fprintf(buf, "// TransactionAPI exposes the dispatchable calls of the %s pallet.\n", mod.Pallet)
	buf.WriteString("// The X type parameter carries extrinsic-parameter configuration.\n")
	buf.WriteString("type TransactionAPI[X any] struct {\n")
	buf.WriteString("\tclient *chainbind.Client\n")
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "// NewTransactionAPI returns the %s transaction API backed by client.\n", mod.Pallet)
	buf.WriteString("func NewTransactionAPI[X any](client *chainbind.Client) *TransactionAPI[X] {\n")
	buf.WriteString("\treturn &TransactionAPI[X]{client: client}\n")
	buf.WriteString("}\n")

	for i := range mod.Bindings {
		e.emitAccessor(buf, &mod.Bindings[i])
	}
}

// emitAccessor emits the embedded fingerprint and the accessor method
// for one call binding.
func (e *Emitter) emitAccessor(buf *bytes.Buffer, b *ir.CallBinding) {
	buf.WriteString("\n")

	fpVar := strcase.ToLowerCamel(b.AccessorName) + "Fingerprint"
	if !e.config.Unchecked {
		fmt.Fprintf(buf, "var %s = chainbind.Fingerprint{%s}\n\n", fpVar, fingerprintLiteral(b.Fingerprint))
	}

	emitDocs(buf, b.Docs)

	params := make([]string, 0, len(b.Struct.Shape.Fields))
	inits := make([]string, 0, len(b.Struct.Shape.Fields))
	for _, f := range b.Struct.Shape.Fields {
		p := paramName(f.Name)
		params = append(params, p+" "+e.paramType(f))
		if f.Boxed {
			inits = append(inits, fieldName(f.Name)+": &"+p)
		} else {
			inits = append(inits, fieldName(f.Name)+": "+p)
		}
	}

	fmt.Fprintf(buf, "func (api *TransactionAPI[X]) %s(%s) (*chainbind.Submittable, error) {\n",
		exportedName(b.AccessorName), strings.Join(params, ", "))

	if !e.config.Unchecked {
		fmt.Fprintf(buf, "\tif err := chainbind.EnsureCompatible[%s](api.client, %s); err != nil {\n", b.Struct.Name, fpVar)
		buf.WriteString("\t\treturn nil, err\n")
		buf.WriteString("\t}\n")
	}

	if len(inits) == 0 {
		fmt.Fprintf(buf, "\tcall := %s{}\n", b.Struct.Name)
	} else {
		fmt.Fprintf(buf, "\tcall := %s{\n", b.Struct.Name)
		for _, init := range inits {
			fmt.Fprintf(buf, "\t\t%s,\n", init)
		}
		buf.WriteString("\t}\n")
	}
	buf.WriteString("\treturn chainbind.NewSubmittable(api.client, call), nil\n")
	buf.WriteString("}\n")
}

// fieldType resolves a field's struct representation: the mapped type
// expression, with one pointer level added for boxed fields.
func (e *Emitter) fieldType(f ir.Field) string {
	typ := e.mapType(f.Type)
	if f.Boxed {
		typ = "*" + typ
	}
	return typ
}

// paramType resolves a field's accessor parameter type. Boxed fields
// are passed by value; the accessor body takes the address.
func (e *Emitter) paramType(f ir.Field) string {
	return e.mapType(f.Type)
}

func (e *Emitter) mapType(typ string) string {
	if mapped, ok := e.config.TypeMappings[typ]; ok {
		return mapped
	}
	return typ
}

func emitDocs(buf *bytes.Buffer, docs []string) {
	for _, line := range docs {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			buf.WriteString("//\n")
		} else {
			buf.WriteString("// ")
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
}

func fingerprintLiteral(fp metadata.Fingerprint) string {
	parts := make([]string, len(fp))
	for i, b := range fp {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return strings.Join(parts, ", ")
}
