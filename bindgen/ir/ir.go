// Package ir defines the intermediate representation the binding
// generator produces from metadata. IR values are target-neutral: they
// record normalized names, resolved field shapes, and embedded
// fingerprints, and leave rendering to a backend.
package ir

import "github.com/chainbind/chainbind/metadata"

// Module is the generated artifact for one pallet: its call payload
// structs and the accessor bindings assembled into the pallet's
// transaction API. A pallet without calls produces no Module at all.
type Module struct {
	// Pallet is the raw pallet name as declared by the metadata.
	Pallet string

	// Package is the normalized (lower_snake) namespace name.
	Package string

	// Docs document the call group as a whole.
	Docs []string

	// Bindings holds one entry per call variant, in declaration order.
	Bindings []CallBinding
}

// CallBinding pairs one call's payload struct with its accessor: the
// normalized accessor name, the fingerprint embedded at generation
// time, and the documentation relocated from the struct.
type CallBinding struct {
	Struct Struct

	// AccessorName is the normalized (lower_snake) accessor identifier.
	AccessorName string

	// Fingerprint is the structural fingerprint resolved from the
	// generation-time metadata, embedded into the accessor as a
	// compiled-in constant.
	Fingerprint metadata.Fingerprint

	// Docs are the variant docs, moved here from the struct when the
	// binding is assembled into a module.
	Docs []string
}
