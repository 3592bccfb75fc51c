package session

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is not legal in the
	// session's current state.
	ErrInvalidTransition = errors.New("session: invalid transition")

	// ErrInvalidDate is returned when the selected date is not currently
	// eligible.
	ErrInvalidDate = errors.New("session: date is not eligible")

	// ErrSlotUnavailable is returned when the selected slot is already
	// booked for the chosen date.
	ErrSlotUnavailable = errors.New("session: slot is not available")

	// ErrIncompleteContact is returned by Submit when a required contact
	// field is still empty.
	ErrIncompleteContact = errors.New("session: contact info is incomplete")

	// ErrInternal is returned on ledger failures during selection refresh.
	ErrInternal = errors.New("session: internal error")
)
