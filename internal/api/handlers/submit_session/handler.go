package submit_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nbclib/NBC-ReservationService/internal/api/handlers"
	"github.com/nbclib/NBC-ReservationService/internal/api/handlers/sessionview"
	"github.com/nbclib/NBC-ReservationService/internal/service/ledger"
	"github.com/nbclib/NBC-ReservationService/internal/service/sessions"
	"github.com/nbclib/NBC-ReservationService/internal/session"
)

const (
	msgSessionNotFound   = "session not found"
	msgInvalidTransition = "operation is not allowed in the current session state"
	msgIncompleteContact = "name, email and phone are required"
	msgSlotUnavailable   = "the selected slot is already booked"
	msgDateNotEligible   = "date is no longer open for booking"
	msgInvalidContact    = "invalid contact info"
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

// Handle POST /api/v1/sessions/{sessionId}/submit
//
// A commit failure leaves the session in its error state; the snapshot with
// the failure reason stays readable via GET until Back or Reset moves on.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	snap, err := h.registry.Submit(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{sessionId}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, session.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{sessionId}/submit - Invalid transition: session_id=%s, state=%s",
				sessionID, snap.State)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, session.ErrIncompleteContact):
			h.logger.Warn("POST /sessions/{sessionId}/submit - Incomplete contact: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgIncompleteContact)

		case errors.Is(err, ledger.ErrSlotUnavailable):
			h.logger.Warn("POST /sessions/{sessionId}/submit - Slot taken at commit: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, ledger.ErrDateNotEligible):
			h.logger.Warn("POST /sessions/{sessionId}/submit - Date no longer eligible: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgDateNotEligible)

		case errors.Is(err, ledger.ErrInvalidContact):
			h.logger.Warn("POST /sessions/{sessionId}/submit - Invalid contact: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidContact)

		default:
			h.logger.Error("POST /sessions/{sessionId}/submit - Failed to submit: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{sessionId}/submit - Reservation confirmed: session_id=%s, booking_id=%s",
		sessionID, snap.Booking.ID)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSnapshot(snap))
}
