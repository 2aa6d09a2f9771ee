package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidTransformError is returned by decodeTransform when a responder's
// transform is missing one of the four mandatory attributes. It is never
// fatal: the proposal carrying it is skipped and the batch still resolves.
type InvalidTransformError struct {
	Missing string
}

func (e *InvalidTransformError) Error() string {
	return fmt.Sprintf("engine: transform missing %s attribute", e.Missing)
}

// ReceiveError wraps an I/O error surfaced by the receive task. It is
// fatal: the driver returns it and the scan aborts.
type ReceiveError struct {
	error
}

func newReceiveError(cause error) *ReceiveError {
	return &ReceiveError{errors.Wrap(cause, "engine: receive")}
}

// SendError wraps an I/O error from a probe transmission. Fatal, same as
// ReceiveError.
type SendError struct {
	error
}

func newSendError(cause error) *SendError {
	return &SendError{errors.Wrap(cause, "engine: send")}
}

// CouldNotBindError is returned before a scan starts when the UDP socket
// can't be bound, most commonly because port 500 requires privileges this
// process doesn't have.
type CouldNotBindError struct {
	error
}

func newCouldNotBindError(cause error) *CouldNotBindError {
	return &CouldNotBindError{errors.Wrap(cause, "engine: could not bind UDP socket (try running with elevated privileges, or as root, to bind port 500)")}
}
