package create_reservation

import (
	"errors"
	"net/http"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
	createReservation "github.com/nbclib/NBC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid visit date, expected YYYY-MM-DD"
	msgSlotNotAvailable   = "the selected slot is already booked"
	msgDateNotEligible    = "date is not open for booking"
	msgInvalidSlot        = "invalid slot id"
	msgInvalidContact     = "invalid contact info"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, slot=%d", req.VisitDate, req.SlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrDateNotEligible):
			h.logger.Warn("POST /bookings - Date not eligible: date=%s", req.VisitDate)
			handlers.RespondBadRequest(w, msgDateNotEligible)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: slot=%d", req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrInvalidContact):
			h.logger.Warn("POST /bookings - Invalid contact: date=%s, slot=%d", req.VisitDate, req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidContact)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: date=%s, slot=%d", req.VisitDate, req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create reservation: date=%s, slot=%d, error=%v",
				req.VisitDate, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Reservation created: booking_id=%s, date=%s, slot=%d",
		result.ID, req.VisitDate, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
