package cancel_reservation

import "errors"

var (
	// ErrBookingNotFound is returned when no booking carries the id.
	ErrBookingNotFound = errors.New("cancel_reservation: booking not found")

	// ErrInvalidInput is returned for a missing booking id.
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal is returned on ledger failures.
	ErrInternal = errors.New("cancel_reservation: internal error")
)
