package chainbind

import (
	"sync"

	"github.com/chainbind/chainbind/metadata"
)

// Client holds the live metadata snapshot that generated accessors check
// against before constructing a payload. The snapshot may be refreshed
// concurrently (a node upgrade observed by a subscription, for example),
// so all access goes through the client's lock.
type Client struct {
	mu   sync.RWMutex
	meta *metadata.Metadata
}

// NewClient returns a client seeded with the given metadata snapshot.
// The snapshot may be nil; fingerprint lookups fail until one is set.
func NewClient(meta *metadata.Metadata) *Client {
	return &Client{meta: meta}
}

// SetMetadata replaces the live metadata snapshot. Checks in flight keep
// reading the snapshot they acquired; later checks see the new one.
func (c *Client) SetMetadata(meta *metadata.Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meta = meta
}

// callFingerprint resolves the live fingerprint for a (pallet, call)
// pair under the read lock.
func (c *Client) callFingerprint(pallet, call string) (Fingerprint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.meta == nil {
		return nil, &MetadataError{Pallet: pallet, Call: call}
	}
	fp, err := c.meta.CallFingerprint(pallet, call)
	if err != nil {
		return nil, &MetadataError{Pallet: pallet, Call: call, Err: err}
	}
	return fp, nil
}

// CallFingerprint resolves the fingerprint the live metadata currently
// reports for the call type T. It returns a *MetadataError if the
// metadata does not recognize the capability.
func CallFingerprint[T Call](c *Client) (Fingerprint, error) {
	var zero T
	return c.callFingerprint(zero.PalletName(), zero.CallName())
}

// EnsureCompatible verifies that the fingerprint compiled into a
// generated binding still matches what the live metadata reports for
// the call type T. It returns nil when the two are equal, a
// *MetadataError when the live metadata does not recognize the
// capability at all, and an *IncompatibleMetadataError when it does but
// the shape has changed.
//
// Generated checked-mode accessors call this before constructing their
// payload, converting what would otherwise be a silent encoding
// mismatch into an explicit error at the call boundary.
func EnsureCompatible[T Call](c *Client, embedded Fingerprint) error {
	var zero T
	pallet, call := zero.PalletName(), zero.CallName()

	live, err := c.callFingerprint(pallet, call)
	if err != nil {
		return err
	}
	if !live.Equal(embedded) {
		return &IncompatibleMetadataError{
			Pallet:   pallet,
			Call:     call,
			Embedded: embedded,
			Live:     live,
		}
	}
	return nil
}
