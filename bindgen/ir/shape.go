package ir

import "github.com/chainbind/chainbind/metadata"

// ShapeKind classifies a call's parameter list.
type ShapeKind int

const (
	// NoFields means the call takes no parameters.
	NoFields ShapeKind = iota

	// Named means every parameter carries a field name.
	Named

	// Unnamed means at least one parameter is positional. Calls with
	// unnamed fields cannot be round-tripped into a self-describing
	// accessor signature, so the assembler rejects this shape.
	Unnamed
)

// String returns the string representation of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case NoFields:
		return "NoFields"
	case Named:
		return "Named"
	case Unnamed:
		return "Unnamed"
	default:
		return "Unknown"
	}
}

// FieldShape is the resolved shape of one call's parameter list.
// Fields is populated only for the Named kind and preserves the
// metadata's declaration order.
type FieldShape struct {
	Kind   ShapeKind
	Fields []Field
}

// Field is one named call parameter. Boxed passes through the
// metadata's indirection flag: a boxed field's payload representation
// gains one pointer level, and the accessor wraps the argument
// identically, so recursive payload shapes terminate.
type Field struct {
	Name  string
	Type  string
	Boxed bool
}

// ResolveShape classifies a call's field list. Total over its input:
// an empty list is NoFields, a list where every field is named is
// Named, anything else is Unnamed.
func ResolveShape(fields []metadata.CallField) FieldShape {
	if len(fields) == 0 {
		return FieldShape{Kind: NoFields}
	}
	resolved := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return FieldShape{Kind: Unnamed}
		}
		resolved = append(resolved, Field{Name: f.Name, Type: f.Type, Boxed: f.Boxed})
	}
	return FieldShape{Kind: Named, Fields: resolved}
}
