package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backSessionHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/back_session"
	createSessionHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/create_session"
	getReservationHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/get_reservation"
	selectDateHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/select_date"
	selectSlotHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/select_slot"
	setContactHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/set_contact"
	submitSessionHandler "github.com/nbclib/NBC-ReservationService/internal/api/handlers/submit_session"
	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/infra/storage/memory"
	"github.com/nbclib/NBC-ReservationService/internal/service/ledger"
	"github.com/nbclib/NBC-ReservationService/internal/service/sessions"
	getReservationUC "github.com/nbclib/NBC-ReservationService/internal/usecase/get_reservation"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Monday.
var testToday = time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

func newTestRouter() *mux.Router {
	clock := &fixedClock{now: testToday}
	schedule := domain.DefaultSchedule()
	log := nopLogger{}

	ledgerSvc := ledger.NewService(
		memory.NewStore(),
		memory.NewTxManager(),
		schedule,
		ledger.NopMetrics{},
		log,
	).WithTimeProvider(clock)
	registry := sessions.NewRegistry(schedule, ledgerSvc, log).WithTimeProvider(clock)

	getReservationUseCase := getReservationUC.NewUseCase(ledgerSvc, log)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/sessions", createSessionHandler.NewHandler(registry, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/date", selectDateHandler.NewHandler(registry, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/slot", selectSlotHandler.NewHandler(registry, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/contact", setContactHandler.NewHandler(registry, log).Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/submit", submitSessionHandler.NewHandler(registry, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/back", backSessionHandler.NewHandler(registry, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getReservationHandler.NewHandler(getReservationUseCase, log).Handle).Methods(http.MethodGet)
	return r
}

func do(t *testing.T, r *mux.Router, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	parsed := map[string]interface{}{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed), "body: %s", rec.Body.String())
	}
	return rec, parsed
}

func TestSessionFlowOverHTTP(t *testing.T) {
	r := newTestRouter()

	rec, body := do(t, r, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "selecting_date", body["state"])
	sessionID := body["id"].(string)
	base := "/api/v1/sessions/" + sessionID

	rec, body = do(t, r, http.MethodPost, base+"/date", `{"date": "2025-06-02"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "selecting_slot", body["state"])
	assert.Equal(t, "2025-06-02", body["date"])

	rec, body = do(t, r, http.MethodPost, base+"/slot", `{"slotId": 5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "entering_info", body["state"])
	slot := body["slot"].(map[string]interface{})
	assert.Equal(t, "SLOT 5", slot["display"])

	rec, _ = do(t, r, http.MethodPatch, base+"/contact",
		`{"name": "Ada Lovelace", "email": "ada@example.com", "phone": "+1 555 0100", "purpose": "research"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = do(t, r, http.MethodPost, base+"/submit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", body["state"])
	booking := body["booking"].(map[string]interface{})
	assert.Equal(t, "2025-06-02", booking["visitDate"])
	assert.Equal(t, "Visit slot 5 for the day", booking["slotDescription"])

	// The receipt is reachable through the bookings endpoint too.
	bookingID := booking["id"].(string)
	rec, body = do(t, r, http.MethodGet, "/api/v1/bookings/"+bookingID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	contact := body["contact"].(map[string]interface{})
	assert.Equal(t, "Ada Lovelace", contact["name"])
}

func TestSessionConflictOverHTTP(t *testing.T) {
	r := newTestRouter()

	drive := func(t *testing.T) string {
		t.Helper()
		rec, body := do(t, r, http.MethodPost, "/api/v1/sessions", "")
		require.Equal(t, http.StatusCreated, rec.Code)
		id := body["id"].(string)
		base := "/api/v1/sessions/" + id

		rec, _ = do(t, r, http.MethodPost, base+"/date", `{"date": "2025-06-02"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		rec, _ = do(t, r, http.MethodPost, base+"/slot", `{"slotId": 5}`)
		require.Equal(t, http.StatusOK, rec.Code)
		rec, _ = do(t, r, http.MethodPatch, base+"/contact",
			`{"name": "Ada Lovelace", "email": "ada@example.com", "phone": "+1 555 0100"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		return id
	}

	winner := drive(t)
	loser := drive(t)

	rec, _ := do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/sessions/%s/submit", winner), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/sessions/%s/submit", loser), "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Back, then a free slot, then a clean submit.
	rec, _ = do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/sessions/%s/back", loser), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/sessions/%s/slot", loser), `{"slotId": 5}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/sessions/%s/slot", loser), `{"slotId": 6}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/sessions/%s/submit", loser), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", body["state"])
}

func TestSessionNotFoundOverHTTP(t *testing.T) {
	r := newTestRouter()

	rec, _ := do(t, r, http.MethodPost, "/api/v1/sessions/unknown/date", `{"date": "2025-06-02"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
