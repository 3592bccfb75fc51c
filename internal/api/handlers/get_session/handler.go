package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
	"github.com/nbclib/NBC-ReservationService/internal/api/handlers/sessionview"
	"github.com/nbclib/NBC-ReservationService/internal/service/sessions"
)

const (
	msgSessionNotFound = "session not found"
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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	snap, err := h.registry.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{sessionId} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{sessionId} - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSnapshot(snap))
}
