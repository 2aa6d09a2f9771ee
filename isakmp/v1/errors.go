package v1

import "fmt"

// ErrBufferTooSmall is returned whenever a parser reaches the end of its
// input before finishing a structure. The offending datagram is dropped by
// the caller; this error never aborts a scan.
var ErrBufferTooSmall = fmt.Errorf("isakmp/v1: buffer too small")

// ErrUnexpectedPayload signals a protocol-invariant violation: a non-zero
// reserved byte, a transform-count mismatch, or an exchange mode of None in
// the header.
var ErrUnexpectedPayload = fmt.Errorf("isakmp/v1: unexpected payload")

// UnparsableVariantError is returned when an enumeration value read off the
// wire is outside the known, IANA-assigned set. It carries the raw value so
// callers can log or ignore it without losing information.
type UnparsableVariantError struct {
	Field string
	Raw   uint16
}

func (e *UnparsableVariantError) Error() string {
	return fmt.Sprintf("isakmp/v1: unparsable %s variant: %d", e.Field, e.Raw)
}
