package create_reservation

import (
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers/sessionview"
	"github.com/nbclib/NBC-ReservationService/internal/domain"
	createReservation "github.com/nbclib/NBC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	VisitDate string `json:"visitDate"` // "2025-06-02"
	SlotID    int    `json:"slotId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Purpose   string `json:"purpose,omitempty"`
}

// ToUseCaseRequest converts the HTTP request to the use case model, parsing
// the date and visit purpose.
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.VisitDate)
	if err != nil {
		return nil, err
	}

	purpose, err := domain.ParseVisitPurpose(r.Purpose)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Date:   date,
		SlotID: r.SlotID,
		Contact: domain.ContactInfo{
			Name:    r.Name,
			Email:   r.Email,
			Phone:   r.Phone,
			Purpose: purpose,
		},
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *createReservation.Response) *sessionview.BookingView {
	return sessionview.FromBooking(&domain.Booking{
		ID:              resp.ID,
		VisitDate:       resp.VisitDate,
		SlotID:          resp.SlotID,
		SlotName:        resp.SlotName,
		SlotDisplay:     resp.SlotDisplay,
		SlotDescription: resp.SlotDescription,
		Contact:         resp.Contact,
		CreatedAt:       resp.CreatedAt,
	})
}
