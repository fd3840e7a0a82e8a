package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across ports and usecases. Handlers map them to
// HTTP statuses with errors.Is.
var (
	// ErrNotFound reports that a referenced campaign or delivery does not
	// exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState reports a lifecycle transition that is not legal from
	// the current status. Nothing is mutated.
	ErrInvalidState = errors.New("invalid state transition")

	// ErrAlreadyRecorded reports an engagement signal that was already
	// applied. The duplicate is a no-op, not a failure.
	ErrAlreadyRecorded = errors.New("already recorded")

	// ErrBounced is returned by channel adapters on a hard transport
	// rejection that must not be retried.
	ErrBounced = errors.New("hard bounce")

	// ErrNoAddress reports that the recipient has no address or token for
	// the delivery's channel.
	ErrNoAddress = errors.New("no address for channel")
)

// ValidationError reports malformed campaign or criteria input, rejected
// before any state change, with field-level detail for the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}
