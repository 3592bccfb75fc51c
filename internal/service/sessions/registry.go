// Package sessions keeps the live reservation sessions, keyed by opaque
// tokens. Each session belongs to one visitor; the registry only serializes
// transitions per session so that a double-clicked request cannot interleave
// inside the state machine.
package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/session"
)

// Snapshot is a read-only view of a session handed to callers.
type Snapshot struct {
	ID      string
	State   session.State
	Date    *time.Time
	Slot    *domain.Slot
	Contact domain.ContactInfo
	Booking *domain.Booking
	Reason  string // cause of StateError, empty otherwise
}

type entry struct {
	mu sync.Mutex
	s  *session.Session
}

// Registry creates, stores and drives reservation sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	schedule domain.Schedule
	ledger   Ledger
	clock    TimeProvider
	logger   Logger
}

// NewRegistry creates an empty session registry.
func NewRegistry(schedule domain.Schedule, ledger Ledger, logger Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		schedule: schedule,
		ledger:   ledger,
		clock:    &RealTimeProvider{},
		logger:   logger,
	}
}

// WithTimeProvider overrides the clock. Intended for tests.
func (r *Registry) WithTimeProvider(tp TimeProvider) *Registry {
	r.clock = tp
	return r
}

// Create starts a new session and returns its snapshot.
func (r *Registry) Create() Snapshot {
	id := uuid.NewString()
	s := session.New(id, r.schedule, r.ledger, r.clock)

	r.mu.Lock()
	r.sessions[id] = &entry{s: s}
	r.mu.Unlock()

	r.logger.Info("Create: session id=%s", id)
	return snapshotOf(s)
}

// Get returns the snapshot of an existing session.
func (r *Registry) Get(id string) (Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshotOf(e.s), nil
}

// SelectDate drives the session's date selection.
func (r *Registry) SelectDate(id string, date time.Time) (Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.s.SelectDate(date); err != nil {
		return snapshotOf(e.s), err
	}
	return snapshotOf(e.s), nil
}

// SelectSlot drives the session's slot selection.
func (r *Registry) SelectSlot(ctx context.Context, id string, slotID int) (Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.s.SelectSlot(ctx, slotID); err != nil {
		return snapshotOf(e.s), err
	}
	return snapshotOf(e.s), nil
}

// SetContact merges contact fields into the session draft.
func (r *Registry) SetContact(id string, fields session.ContactFields) (Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.s.SetContact(fields); err != nil {
		return snapshotOf(e.s), err
	}
	return snapshotOf(e.s), nil
}

// Submit commits the session's reservation against the ledger.
func (r *Registry) Submit(ctx context.Context, id string) (Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.s.Submit(ctx); err != nil {
		return snapshotOf(e.s), err
	}
	return snapshotOf(e.s), nil
}

// Back steps the session one state backwards.
func (r *Registry) Back(id string) (Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.s.Back(); err != nil {
		return snapshotOf(e.s), err
	}
	return snapshotOf(e.s), nil
}

// Reset returns the session to its initial state.
func (r *Registry) Reset(id string) (Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.s.Reset()
	return snapshotOf(e.s), nil
}

func (r *Registry) lookup(id string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func snapshotOf(s *session.Session) Snapshot {
	snap := Snapshot{
		ID:      s.ID(),
		State:   s.State(),
		Slot:    s.Slot(),
		Contact: s.Contact(),
		Booking: s.Booking(),
	}
	if !s.Date().IsZero() {
		date := s.Date()
		snap.Date = &date
	}
	if err := s.Err(); err != nil {
		snap.Reason = err.Error()
	}
	return snap
}
