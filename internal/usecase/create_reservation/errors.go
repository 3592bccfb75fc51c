package create_reservation

import "errors"

var (
	// ErrSlotNotAvailable is returned when the slot is already booked for
	// the date.
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrDateNotEligible is returned when the date is outside the eligible
	// calendar at commit time.
	ErrDateNotEligible = errors.New("create_reservation: date is not eligible")

	// ErrInvalidSlot is returned for a slot id outside the catalog.
	ErrInvalidSlot = errors.New("create_reservation: invalid slot id")

	// ErrInvalidContact is returned when contact validation fails.
	ErrInvalidContact = errors.New("create_reservation: invalid contact info")

	// ErrInvalidInput is returned for malformed input data.
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned on ledger failures.
	ErrInternal = errors.New("create_reservation: internal error")
)
