package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
	cancelReservation "github.com/nbclib/NBC-ReservationService/internal/usecase/cancel_reservation"
)

const (
	msgBookingNotFound = "booking not found"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	err := h.useCase.Execute(r.Context(), &cancelReservation.Request{ID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrBookingNotFound),
			errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{bookingId} - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /bookings/{bookingId} - Failed to cancel booking: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{bookingId} - Booking cancelled: id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
