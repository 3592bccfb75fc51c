package select_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
	"github.com/nbclib/NBC-ReservationService/internal/api/handlers/sessionview"
	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/service/sessions"
	"github.com/nbclib/NBC-ReservationService/internal/session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateFormat  = "invalid date format, expected YYYY-MM-DD"
	msgSessionNotFound    = "session not found"
	msgInvalidTransition  = "operation is not allowed in the current session state"
	msgDateNotEligible    = "date is not open for booking"
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

// Handle POST /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{sessionId}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /sessions/{sessionId}/date - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	snap, err := h.registry.SelectDate(sessionID, date)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, session.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{sessionId}/date - Invalid transition: session_id=%s, state=%s",
				sessionID, snap.State)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, session.ErrInvalidDate):
			h.logger.Warn("POST /sessions/{sessionId}/date - Date not eligible: session_id=%s, date=%s",
				sessionID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotEligible)

		default:
			h.logger.Error("POST /sessions/{sessionId}/date - Failed to select date: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{sessionId}/date - Date selected: session_id=%s, date=%s", sessionID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSnapshot(snap))
}
