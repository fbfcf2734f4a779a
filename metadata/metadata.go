// Package metadata models the machine-readable description of a remote
// runtime's callable surface: pallets, their call variants, field shapes,
// and the structural fingerprint recorded for every call.
//
// A Metadata value is read-only input. It is built once (decoded from a
// document, or received from a live node) and never mutated by the
// generator or the runtime client.
package metadata

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Fingerprint is a fixed-length structural hash identifying one call's
// exact parameter shape as known to a specific metadata version. It is
// computed externally and only ever compared for equality.
type Fingerprint []byte

// Equal reports whether two fingerprints are byte-for-byte identical.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return bytes.Equal(f, other)
}

// String returns the hex encoding of the fingerprint.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f)
}

// UnmarshalYAML decodes a fingerprint from its hex string form.
func (f *Fingerprint) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid fingerprint %q: %w", s, err)
	}
	*f = raw
	return nil
}

// MarshalYAML encodes the fingerprint as a hex string.
func (f Fingerprint) MarshalYAML() (any, error) {
	return f.String(), nil
}

// Metadata describes the full callable surface of a runtime.
type Metadata struct {
	// Pallets lists every module exposed by the runtime, in declaration order.
	Pallets []Pallet `yaml:"pallets" validate:"required,min=1,dive"`
}

// Pallet is one runtime module. A pallet that dispatches nothing has a
// nil Calls group, which is distinct from an empty one.
type Pallet struct {
	Name  string     `yaml:"name" validate:"required"`
	Docs  []string   `yaml:"docs,omitempty"`
	Calls *CallGroup `yaml:"calls,omitempty"`
}

// CallGroup is the sum type over a pallet's call variants.
type CallGroup struct {
	// Docs document the call group as a whole and become the
	// generated package documentation.
	Docs     []string      `yaml:"docs,omitempty"`
	Variants []CallVariant `yaml:"variants" validate:"required,dive"`
}

// CallVariant is a single invocable call: its name, ordered field list,
// documentation, and the fingerprint recorded for its signature.
type CallVariant struct {
	Name        string      `yaml:"name" validate:"required"`
	Docs        []string    `yaml:"docs,omitempty"`
	Fields      []CallField `yaml:"fields,omitempty" validate:"dive"`
	Fingerprint Fingerprint `yaml:"fingerprint,omitempty"`
}

// CallField is one parameter of a call. A field with an empty Name is
// positional; the generator rejects positional call fields.
type CallField struct {
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type" validate:"required"`

	// Boxed marks a field whose payload representation needs one level
	// of heap indirection to break recursive type structure.
	Boxed bool `yaml:"boxed,omitempty"`
}

// CallNotFoundError reports a fingerprint lookup for a (pallet, call)
// pair the metadata does not declare.
type CallNotFoundError struct {
	Pallet string
	Call   string
}

func (e *CallNotFoundError) Error() string {
	return fmt.Sprintf("metadata has no call %s.%s", e.Pallet, e.Call)
}

// Pallet returns the named pallet, or nil if the metadata does not
// declare it.
func (m *Metadata) Pallet(name string) *Pallet {
	for i := range m.Pallets {
		if m.Pallets[i].Name == name {
			return &m.Pallets[i]
		}
	}
	return nil
}

// CallFingerprint resolves the fingerprint recorded for the given
// (pallet, call) pair. A missing pallet, a pallet without calls, an
// undeclared variant, and a variant without a recorded fingerprint all
// return a *CallNotFoundError.
func (m *Metadata) CallFingerprint(pallet, call string) (Fingerprint, error) {
	p := m.Pallet(pallet)
	if p == nil || p.Calls == nil {
		return nil, &CallNotFoundError{Pallet: pallet, Call: call}
	}
	for i := range p.Calls.Variants {
		v := &p.Calls.Variants[i]
		if v.Name == call {
			if len(v.Fingerprint) == 0 {
				return nil, &CallNotFoundError{Pallet: pallet, Call: call}
			}
			return v.Fingerprint, nil
		}
	}
	return nil, &CallNotFoundError{Pallet: pallet, Call: call}
}
