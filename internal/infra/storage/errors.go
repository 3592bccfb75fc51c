// Package storage defines the sentinel errors shared by every booking store
// backend, so callers can errors.Is against one vocabulary regardless of
// which backend is wired.
package storage

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the lookup.
	ErrBookingNotFound = errors.New("storage: booking not found")

	// ErrSlotTaken is returned when an insert loses the (date, slot) key to
	// an existing booking. Exactly one of any set of racing inserts for the
	// same key avoids this error.
	ErrSlotTaken = errors.New("storage: slot already booked")

	// ErrBuildQuery is returned when SQL generation fails.
	ErrBuildQuery = errors.New("storage: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("storage: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("storage: failed to scan row")
)
