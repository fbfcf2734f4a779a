// Package chainbind is the runtime support library for generated call
// bindings. Generated packages depend on it for the Call capability
// interface, the client's live-metadata handle, the pre-dispatch
// fingerprint check, and the Submittable dispatch handle.
package chainbind

import (
	"github.com/chainbind/chainbind/metadata"
)

// Fingerprint identifies one call's structural shape. See metadata.Fingerprint.
type Fingerprint = metadata.Fingerprint

// Call is implemented by every generated call payload. The two methods
// form the payload's capability association: they bind the type to its
// declaring pallet and call name so that runtime lookups are indexed by
// type rather than by strings threaded through call sites.
//
// Implementations must declare both methods on the value receiver so a
// zero value of the type answers them.
type Call interface {
	// PalletName returns the name of the pallet declaring the call.
	PalletName() string

	// CallName returns the call's name within its pallet.
	CallName() string
}

// Submittable is a constructed call payload, ready to be handed to a
// transport for signing and submission. It carries no execution state;
// submission itself is owned by the surrounding client machinery.
type Submittable struct {
	client *Client
	call   Call
}

// NewSubmittable wraps a constructed call payload into a dispatch handle.
func NewSubmittable(client *Client, call Call) *Submittable {
	return &Submittable{client: client, call: call}
}

// Call returns the wrapped payload.
func (s *Submittable) Call() Call { return s.call }

// Client returns the client the handle was created against.
func (s *Submittable) Client() *Client { return s.client }
