package get_available_slots

import (
	"github.com/nbclib/NBC-ReservationService/internal/api/handlers/sessionview"
	"github.com/nbclib/NBC-ReservationService/internal/domain"
	getAvailableSlots "github.com/nbclib/NBC-ReservationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string                 `json:"date"`
	Slots          []sessionview.SlotView `json:"slots"`
	TotalSlots     int                    `json:"totalSlots"`
	AvailableCount int                    `json:"availableCount"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]sessionview.SlotView, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, sessionview.SlotView{
			ID:          s.ID,
			Name:        s.Name,
			Display:     s.Display,
			Description: s.Description,
		})
	}
	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		Slots:          slots,
		TotalSlots:     resp.TotalSlots,
		AvailableCount: resp.AvailableCount,
	}
}
