package chainbind

import "fmt"

// MetadataError reports that the live metadata could not resolve a
// capability at all: the pallet or call is unknown to the runtime, or
// no metadata snapshot has been set on the client. It is an ordinary
// call-time error, recoverable by the caller.
type MetadataError struct {
	Pallet string
	Call   string
	Err    error
}

func (e *MetadataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("metadata resolution failed for %s.%s: %v", e.Pallet, e.Call, e.Err)
	}
	return fmt.Sprintf("metadata resolution failed for %s.%s: no metadata available", e.Pallet, e.Call)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// IncompatibleMetadataError reports that the live metadata recognizes a
// call but its shape no longer matches the fingerprint the binding was
// generated against. The payload is not constructed when this is
// returned; the binding must be regenerated against current metadata.
type IncompatibleMetadataError struct {
	Pallet   string
	Call     string
	Embedded Fingerprint
	Live     Fingerprint
}

func (e *IncompatibleMetadataError) Error() string {
	return fmt.Sprintf("incompatible metadata for %s.%s: generated against %s, runtime reports %s",
		e.Pallet, e.Call, e.Embedded, e.Live)
}
