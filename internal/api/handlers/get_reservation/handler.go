package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
	"github.com/nbclib/NBC-ReservationService/internal/api/handlers/sessionview"
	"github.com/nbclib/NBC-ReservationService/internal/domain"
	getReservation "github.com/nbclib/NBC-ReservationService/internal/usecase/get_reservation"
)

const (
	msgBookingNotFound = "booking not found"
)

type Handler struct {
	useCase GetReservationUseCase
	logger  Logger
}

func NewHandler(useCase GetReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &getReservation.Request{ID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, getReservation.ErrBookingNotFound),
			errors.Is(err, getReservation.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{bookingId} - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{bookingId} - Failed to get booking: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := sessionview.FromBooking(&domain.Booking{
		ID:              result.ID,
		VisitDate:       result.VisitDate,
		SlotID:          result.SlotID,
		SlotName:        result.SlotName,
		SlotDisplay:     result.SlotDisplay,
		SlotDescription: result.SlotDescription,
		Contact:         result.Contact,
		CreatedAt:       result.CreatedAt,
	})

	handlers.RespondJSON(w, http.StatusOK, response)
}
