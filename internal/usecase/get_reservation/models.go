package get_reservation

import (
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// Request identifies the booking to fetch.
type Request struct {
	ID string
}

// Response carries the booking the receipt projector renders.
type Response struct {
	ID              string
	VisitDate       time.Time
	SlotID          int
	SlotName        string
	SlotDisplay     string
	SlotDescription string
	Contact         domain.ContactInfo
	CreatedAt       time.Time
}
