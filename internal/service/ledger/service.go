package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/infra/storage"
)

// Service is the booking ledger: the single source of truth for slot
// commitment. All mutation goes through Commit and Cancel; everything else
// is a read against a consistent snapshot of the store.
type Service struct {
	store        BookingStore
	txManager    TransactionManager
	schedule     domain.Schedule
	catalog      []domain.Slot
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewService creates the ledger over a booking store. The slot catalog is
// built once from the schedule.
func NewService(
	store BookingStore,
	txManager TransactionManager,
	schedule domain.Schedule,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		txManager:    txManager,
		schedule:     schedule,
		catalog:      domain.BuildCatalog(schedule.SlotCount),
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider overrides the clock. Intended for tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Schedule returns the schedule the ledger enforces.
func (s *Service) Schedule() domain.Schedule {
	return s.schedule
}

// Catalog returns the full ordered slot catalog. Callers must treat the
// slice as read-only.
func (s *Service) Catalog() []domain.Slot {
	return s.catalog
}

// IsBooked reports whether a booking holds the (date, slot) key.
func (s *Service) IsBooked(ctx context.Context, date time.Time, slotID int) (bool, error) {
	_, err := s.store.GetByDateAndSlot(ctx, date, slotID)
	if errors.Is(err, storage.ErrBookingNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsBooked - store error: %v", ErrInternal, err)
	}
	return true, nil
}

// AvailableCount returns how many of the date's slots are still open.
func (s *Service) AvailableCount(ctx context.Context, date time.Time) (int, error) {
	booked, err := s.store.CountByDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("%w: AvailableCount - store error: %v", ErrInternal, err)
	}
	available := s.schedule.SlotCount - booked
	if available < 0 {
		available = 0
	}
	return available, nil
}

// AvailableSlots returns the catalog minus the slots already booked for the
// date. The union of the result with the booked ids is always the full
// catalog, and the two sets never intersect.
func (s *Service) AvailableSlots(ctx context.Context, date time.Time) ([]domain.Slot, error) {
	bookings, err := s.store.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: AvailableSlots - store error: %v", ErrInternal, err)
	}

	booked := make(map[int]bool, len(bookings))
	for _, b := range bookings {
		booked[b.SlotID] = true
	}

	available := make([]domain.Slot, 0, len(s.catalog))
	for _, slot := range s.catalog {
		if !booked[slot.ID] {
			available = append(available, slot)
		}
	}
	return available, nil
}

// Commit atomically claims the (date, slot) key for the contact. It
// validates the contact, the slot id, and the date's eligibility. The
// latter is recomputed against the clock at commit time, so a stale session
// cannot book a date that has since left the calendar. When two commits
// race for the same key, exactly one returns the stored booking; the other
// gets ErrSlotUnavailable.
func (s *Service) Commit(ctx context.Context, date time.Time, slotID int, contact domain.ContactInfo) (*domain.Booking, error) {
	s.logger.Info("Commit: date=%s, slot=%d", domain.DateKey(date), slotID)

	contact = contact.Normalize()
	if err := contact.Validate(); err != nil {
		s.logger.Warn("Commit: contact validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}

	if !domain.IsValidSlotID(slotID, s.schedule.SlotCount) {
		s.logger.Warn("Commit: slot id=%d outside catalog of %d", slotID, s.schedule.SlotCount)
		return nil, fmt.Errorf("%w: slot id must be in 1..%d", ErrInvalidSlot, s.schedule.SlotCount)
	}

	now := s.timeProvider.Now()
	if !s.schedule.IsEligibleDate(date, now) {
		s.logger.Warn("Commit: date=%s not eligible as of %s", domain.DateKey(date), domain.DateKey(now))
		s.metrics.ObserveBookingConflict("date_not_eligible")
		return nil, ErrDateNotEligible
	}

	slot := s.catalog[slotID-1]
	booking := &domain.Booking{
		ID:              uuid.NewString(),
		VisitDate:       domain.TruncateToDate(date),
		SlotID:          slot.ID,
		SlotName:        slot.Name,
		SlotDisplay:     slot.Display,
		SlotDescription: slot.Description,
		Contact:         contact,
	}

	var created *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		stored, err := s.store.Create(txCtx, booking)
		if err != nil {
			return err
		}
		created = stored
		return nil
	})
	if errors.Is(err, storage.ErrSlotTaken) {
		s.logger.Warn("Commit: slot taken, date=%s, slot=%d", domain.DateKey(date), slotID)
		s.metrics.ObserveBookingConflict("slot_taken")
		return nil, ErrSlotUnavailable
	}
	if err != nil {
		s.logger.Error("Commit: store error, date=%s, slot=%d: %v", domain.DateKey(date), slotID, err)
		return nil, fmt.Errorf("%w: Commit - store error: %v", ErrInternal, err)
	}

	s.metrics.ObserveBookingCommitted(string(contact.Purpose))
	s.logger.Info("Commit: booked id=%s, date=%s, slot=%d", created.ID, domain.DateKey(date), slotID)
	return created, nil
}

// GetBooking fetches a booking by id. Its result carries everything the
// receipt projector needs: date, slot label and description, and contact.
func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.store.GetByID(ctx, id)
	if errors.Is(err, storage.ErrBookingNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBooking - store error: %v", ErrInternal, err)
	}
	return b, nil
}

// CancelBooking deletes a booking, freeing its slot for rebooking. The
// stored booking itself is never mutated.
func (s *Service) CancelBooking(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, storage.ErrBookingNotFound) {
		s.logger.Warn("CancelBooking: booking id=%s not found", id)
		return ErrBookingNotFound
	}
	if err != nil {
		s.logger.Error("CancelBooking: store error for id=%s: %v", id, err)
		return fmt.Errorf("%w: CancelBooking - store error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelBooking: cancelled booking id=%s", id)
	return nil
}
