package ledger

import "errors"

var (
	// ErrSlotUnavailable is returned when the (date, slot) key is already
	// held, whether detected on selection refresh or at commit time.
	ErrSlotUnavailable = errors.New("ledger: slot is not available")

	// ErrDateNotEligible is returned when the date is outside the eligible
	// calendar at commit time.
	ErrDateNotEligible = errors.New("ledger: date is not eligible for booking")

	// ErrInvalidSlot is returned for a slot id outside the catalog.
	ErrInvalidSlot = errors.New("ledger: invalid slot id")

	// ErrInvalidContact is returned when contact validation fails.
	ErrInvalidContact = errors.New("ledger: invalid contact info")

	// ErrBookingNotFound is returned when no booking matches the lookup.
	ErrBookingNotFound = errors.New("ledger: booking not found")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("ledger: internal error")
)
