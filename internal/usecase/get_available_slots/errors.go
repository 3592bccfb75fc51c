package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for a missing date.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrDateNotEligible is returned when the date is outside the eligible
	// calendar.
	ErrDateNotEligible = errors.New("get_available_slots: date is not eligible")

	// ErrInternal is returned on ledger failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
