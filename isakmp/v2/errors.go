package v2

import "fmt"

// EnumError is implemented by every v2 enumeration failure. Unlike v1's
// single UnparsableVariantError, v2's identifier spaces distinguish four
// classes of invalid value because the protocol treats them differently:
// Reserved and OutOfRange values are protocol violations, while Unassigned
// and PrivateUse values are merely unrecognized and may be safe to ignore
// in non-critical contexts.
type EnumError interface {
	error
	Field() string
	Raw() uint32
}

type enumErrorBase struct {
	field string
	raw   uint32
}

func (e enumErrorBase) Field() string { return e.field }
func (e enumErrorBase) Raw() uint32   { return e.raw }

// ReservedError reports a value from a range the protocol reserves and
// never assigns meaning to.
type ReservedError struct{ enumErrorBase }

func (e *ReservedError) Error() string {
	return fmt.Sprintf("isakmp/v2: reserved %s value: %d", e.field, e.raw)
}

// UnassignedError reports a value IANA has not yet assigned.
type UnassignedError struct{ enumErrorBase }

func (e *UnassignedError) Error() string {
	return fmt.Sprintf("isakmp/v2: unassigned %s value: %d", e.field, e.raw)
}

// PrivateUseError reports a value from a range reserved for private,
// non-interoperable use between cooperating implementations.
type PrivateUseError struct{ enumErrorBase }

func (e *PrivateUseError) Error() string {
	return fmt.Sprintf("isakmp/v2: private-use %s value: %d", e.field, e.raw)
}

// OutOfRangeError reports a value outside the field's valid bit width or
// outside any range the registry defines.
type OutOfRangeError struct{ enumErrorBase }

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("isakmp/v2: out-of-range %s value: %d", e.field, e.raw)
}

func reservedErr(field string, raw uint32) error {
	return &ReservedError{enumErrorBase{field, raw}}
}

func unassignedErr(field string, raw uint32) error {
	return &UnassignedError{enumErrorBase{field, raw}}
}

func privateUseErr(field string, raw uint32) error {
	return &PrivateUseError{enumErrorBase{field, raw}}
}

func outOfRangeErr(field string, raw uint32) error {
	return &OutOfRangeError{enumErrorBase{field, raw}}
}

var ErrBufferTooSmall = fmt.Errorf("isakmp/v2: buffer too small")
var ErrUnexpectedPayload = fmt.Errorf("isakmp/v2: unexpected payload")

// InvalidProposalNumberingStartError is returned when an SA's first
// proposal does not carry proposal number 1.
type InvalidProposalNumberingStartError struct{ Got uint8 }

func (e *InvalidProposalNumberingStartError) Error() string {
	return fmt.Sprintf("isakmp/v2: invalid-proposal-numbering-start: first proposal number %d, want 1", e.Got)
}

// InvalidProposalNumberingError is returned when a non-first proposal's
// number does not equal its predecessor's number plus one.
type InvalidProposalNumberingError struct {
	Got, Want uint8
}

func (e *InvalidProposalNumberingError) Error() string {
	return fmt.Sprintf("isakmp/v2: invalid-proposal-numbering: got %d, want %d", e.Got, e.Want)
}

// MissingMandatoryTransformError is returned when a proposal's security
// protocol lacks one of its mandatory transform lists.
type MissingMandatoryTransformError struct {
	Protocol SecurityProtocol
	Missing  string
}

func (e *MissingMandatoryTransformError) Error() string {
	return fmt.Sprintf("isakmp/v2: missing-mandatory-transform: protocol %v missing %s", e.Protocol, e.Missing)
}
