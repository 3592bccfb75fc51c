package domain

import "time"

// Booking asserts that a specific contact holds a specific slot on a
// specific date. Created only by a successful ledger commit and never
// mutated afterwards.
type Booking struct {
	ID        string
	VisitDate time.Time
	SlotID    int

	// Denormalized slot data so the receipt survives catalog changes
	SlotName        string
	SlotDisplay     string
	SlotDescription string

	Contact ContactInfo

	CreatedAt time.Time
}

// Key returns the (date, slot) ledger key the booking occupies.
func (b *Booking) Key() BookingKey {
	return BookingKey{Date: DateKey(b.VisitDate), SlotID: b.SlotID}
}

// BookingKey is the comparable (date, slot) pair the ledger enforces
// uniqueness on. The date is the canonical YYYY-MM-DD rendering so that
// location and time-of-day differences cannot split a key.
type BookingKey struct {
	Date   string
	SlotID int
}
