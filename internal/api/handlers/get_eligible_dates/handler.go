package get_eligible_dates

import (
	"net/http"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
)

type Handler struct {
	useCase GetEligibleDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetEligibleDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /dates - Failed to list eligible dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
