package get_available_slots

import (
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// Request asks for the open slots on one date.
type Request struct {
	Date time.Time
}

// Response lists the open slots for the date. Slots already booked are
// absent: the union of Slots with the booked ids is always the full catalog.
type Response struct {
	Date           time.Time
	Slots          []domain.Slot
	TotalSlots     int
	AvailableCount int
}
