// Package memory is the in-process booking store. It backs deployments
// without a database and the test suites; it honors the same contract and
// sentinel errors as the PostgreSQL repository.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/infra/storage"
)

// Store keeps bookings in a mutex-guarded map keyed by (date, slot). The map
// update in Create is the atomic check-and-set: under the write lock either
// the key is free and the booking lands, or storage.ErrSlotTaken comes back.
type Store struct {
	mu    sync.RWMutex
	byKey map[domain.BookingKey]*domain.Booking
	byID  map[string]*domain.Booking
	clock func() time.Time
}

// NewStore creates an empty in-memory booking store.
func NewStore() *Store {
	return &Store{
		byKey: make(map[domain.BookingKey]*domain.Booking),
		byID:  make(map[string]*domain.Booking),
		clock: time.Now,
	}
}

// Create inserts a booking, failing with storage.ErrSlotTaken when the
// (date, slot) key is already held.
func (s *Store) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := b.Key()
	if _, exists := s.byKey[key]; exists {
		return nil, storage.ErrSlotTaken
	}

	stored := *b
	stored.CreatedAt = s.clock()

	s.byKey[key] = &stored
	s.byID[stored.ID] = &stored

	result := stored
	return &result, nil
}

// GetByID fetches a booking by its identifier.
func (s *Store) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	result := *b
	return &result, nil
}

// GetByDateAndSlot fetches the booking holding the (date, slot) key.
func (s *Store) GetByDateAndSlot(_ context.Context, date time.Time, slotID int) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byKey[domain.BookingKey{Date: domain.DateKey(date), SlotID: slotID}]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	result := *b
	return &result, nil
}

// ListByDate returns every booking on the date, ordered by slot id.
func (s *Store) ListByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dateKey := domain.DateKey(date)
	bookings := make([]*domain.Booking, 0)
	for key, b := range s.byKey {
		if key.Date != dateKey {
			continue
		}
		copied := *b
		bookings = append(bookings, &copied)
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].SlotID < bookings[j].SlotID
	})
	return bookings, nil
}

// CountByDate returns the number of bookings on the date.
func (s *Store) CountByDate(_ context.Context, date time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dateKey := domain.DateKey(date)
	count := 0
	for key := range s.byKey {
		if key.Date == dateKey {
			count++
		}
	}
	return count, nil
}

// Delete removes a booking, freeing its (date, slot) key.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	delete(s.byID, id)
	delete(s.byKey, b.Key())
	return nil
}

// TxManager is the transaction manager paired with the in-memory store. The
// store's own locking makes every operation atomic, so the manager only has
// to run the function.
type TxManager struct{}

// NewTxManager creates a pass-through transaction manager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do runs fn directly.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoSerializable runs fn directly; the store serializes writes itself.
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoReadOnly runs fn directly.
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
