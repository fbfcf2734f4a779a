package ir

import "github.com/chainbind/chainbind/metadata"

// Struct is a synthesized call payload type: a normalized name, the
// resolved field shape, and the capability association back to the
// declaring pallet and call.
type Struct struct {
	// Name is the normalized (UpperCamelCase) type name.
	Name string

	// Shape is the resolved parameter shape.
	Shape FieldShape

	// Pallet and Call form the capability association: the raw
	// metadata names the payload type is bound to.
	Pallet string
	Call   string

	// Docs is the variant documentation. Initially attached here;
	// module assembly relocates it to the accessor.
	Docs []string
}

// SynthesizeStruct converts one call variant into a standalone payload
// struct definition. Pure function of its input: the name comes from
// the normalizer, the fields from the shape resolver, and the variant
// docs are preserved unmodified.
func SynthesizeStruct(pallet string, variant metadata.CallVariant) Struct {
	return Struct{
		Name:   ToTypeName(variant.Name),
		Shape:  ResolveShape(variant.Fields),
		Pallet: pallet,
		Call:   variant.Name,
		Docs:   variant.Docs,
	}
}
