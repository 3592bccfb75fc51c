package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
	"github.com/nbclib/NBC-ReservationService/internal/domain"
	getAvailableSlots "github.com/nbclib/NBC-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgDateNotEligible = "date is not open for booking"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dates/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /dates/{date}/slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDateNotEligible):
			h.logger.Warn("GET /dates/{date}/slots - Date not eligible: date=%s", rawDate)
			handlers.RespondBadRequest(w, msgDateNotEligible)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /dates/{date}/slots - Invalid input: date=%s", rawDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /dates/{date}/slots - Failed to list slots: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
