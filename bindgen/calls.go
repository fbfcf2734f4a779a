package bindgen

import (
	"github.com/chainbind/chainbind/bindgen/ir"
	"github.com/chainbind/chainbind/metadata"
)

// BuildCallModule assembles the generated artifact for one pallet: a
// payload struct per call variant, each paired with an accessor binding
// carrying its embedded fingerprint.
//
// A pallet that declares no call group produces (nil, nil) — nothing is
// emitted for it. A call with positional fields or without a recorded
// fingerprint is a *SchemaError.
//
// Documentation placement: variant docs are drained from the struct and
// attached to the accessor binding, since the struct is an internal
// payload representation and the accessor is the documented entry
// point. The call group's own docs become the module docs.
func BuildCallModule(meta *metadata.Metadata, pallet *metadata.Pallet) (*ir.Module, error) {
	if pallet.Calls == nil {
		return nil, nil
	}

	mod := &ir.Module{
		Pallet:   pallet.Name,
		Package:  ir.ToAccessorName(pallet.Name),
		Docs:     pallet.Calls.Docs,
		Bindings: make([]ir.CallBinding, 0, len(pallet.Calls.Variants)),
	}

	for _, variant := range pallet.Calls.Variants {
		def := ir.SynthesizeStruct(pallet.Name, variant)
		if def.Shape.Kind == ir.Unnamed {
			return nil, &SchemaError{
				Pallet: pallet.Name,
				Call:   variant.Name,
				Reason: "call fields must all be named",
			}
		}

		fp, err := meta.CallFingerprint(pallet.Name, variant.Name)
		if err != nil {
			return nil, &SchemaError{
				Pallet: pallet.Name,
				Call:   variant.Name,
				Reason: "no fingerprint recorded for the call",
			}
		}

		// Relocate the variant docs onto the accessor.
		docs := def.Docs
		def.Docs = nil

		mod.Bindings = append(mod.Bindings, ir.CallBinding{
			Struct:       def,
			AccessorName: ir.ToAccessorName(variant.Name),
			Fingerprint:  fp,
			Docs:         docs,
		})
	}

	return mod, nil
}
