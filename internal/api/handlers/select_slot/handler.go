package select_slot

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
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgInvalidTransition  = "operation is not allowed in the current session state"
	msgSlotUnavailable    = "the selected slot is not available"
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

// Handle POST /api/v1/sessions/{sessionId}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{sessionId}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.registry.SelectSlot(r.Context(), sessionID, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/slot - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, session.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{sessionId}/slot - Invalid transition: session_id=%s, state=%s",
				sessionID, snap.State)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, session.ErrSlotUnavailable):
			h.logger.Warn("POST /sessions/{sessionId}/slot - Slot unavailable: session_id=%s, slot=%d",
				sessionID, req.SlotID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		default:
			h.logger.Error("POST /sessions/{sessionId}/slot - Failed to select slot: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{sessionId}/slot - Slot selected: session_id=%s, slot=%d", sessionID, req.SlotID)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSnapshot(snap))
}
