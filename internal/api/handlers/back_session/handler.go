package back_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
	"github.com/nbclib/NBC-ReservationService/internal/api/handlers/sessionview"
	"github.com/nbclib/NBC-ReservationService/internal/service/sessions"
	"github.com/nbclib/NBC-ReservationService/internal/session"
)

const (
	msgSessionNotFound   = "session not found"
	msgInvalidTransition = "operation is not allowed in the current session state"
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

// Handle POST /api/v1/sessions/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	snap, err := h.registry.Back(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/back - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, session.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{sessionId}/back - Invalid transition: session_id=%s, state=%s",
				sessionID, snap.State)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /sessions/{sessionId}/back - Failed to step back: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSnapshot(snap))
}
