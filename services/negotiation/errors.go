package negotiation

import "errors"

// Error taxonomy for negotiation operations. Every failure an operation can
// return wraps exactly one of these, so controllers can map them to HTTP
// statuses with errors.Is.
var (
	// ErrValidation covers malformed, missing, or out-of-order input.
	ErrValidation = errors.New("validation error")

	// ErrNotFound covers a missing booking, artist, or venue.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor is not a party to the booking.
	ErrForbidden = errors.New("actor is not a party to this booking")

	// ErrInvalidState means the transition was attempted from a non-pending
	// status, including the case where a concurrent action won the race.
	ErrInvalidState = errors.New("booking request has already been processed")
)
