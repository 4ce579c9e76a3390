package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate signals an absent or unparseable event date.
	ErrInvalidDate = errors.New("invalid or missing event date")
	// ErrDateBooked signals that the requested calendar day is already taken,
	// whether caught by the pre-check or by the storage uniqueness constraint.
	ErrDateBooked = errors.New("date already booked")
	// ErrNotFound signals an unknown booking id.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidAmount signals a missing or non-positive approval amount.
	ErrInvalidAmount = errors.New("amount must be a positive number")
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid required field: %s", e.Field)
}

// GatewayError wraps a payment-link creation failure. The approval that
// triggered it has already been persisted when this is returned.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
