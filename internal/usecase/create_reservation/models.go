package create_reservation

import (
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// Request is a direct reservation commit, bypassing the session flow.
type Request struct {
	Date    time.Time
	SlotID  int
	Contact domain.ContactInfo
}

// Response carries the committed booking, including the denormalized slot
// data the receipt projector renders.
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
