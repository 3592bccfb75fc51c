package ledger

import (
	"context"
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// BookingStore is the persistence contract. Create must be atomic per
// (date, slot) key: of any set of racing creates for one key, exactly one
// succeeds and the rest get storage.ErrSlotTaken.
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByDateAndSlot(ctx context.Context, date time.Time, slotID int) (*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
	Delete(ctx context.Context, id string) error
}

// TransactionManager wraps store operations needing isolation.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies "today" so eligibility stays testable.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the wall-clock provider used in production.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics records commit outcomes.
type Metrics interface {
	ObserveBookingCommitted(purpose string)
	ObserveBookingConflict(reason string)
}

// NopMetrics is used when metrics are disabled.
type NopMetrics struct{}

// ObserveBookingCommitted does nothing.
func (NopMetrics) ObserveBookingCommitted(string) {}

// ObserveBookingConflict does nothing.
func (NopMetrics) ObserveBookingConflict(string) {}
