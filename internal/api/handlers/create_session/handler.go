package create_session

import (
	"net/http"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
	"github.com/nbclib/NBC-ReservationService/internal/api/handlers/sessionview"
)

type Handler struct {
	registry SessionRegistry
	logger   Logger
}

func NewHandler(registry SessionRegistry, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snap := h.registry.Create()

	h.logger.Info("POST /sessions - Session created: session_id=%s", snap.ID)
	handlers.RespondJSON(w, http.StatusCreated, sessionview.FromSnapshot(snap))
}
