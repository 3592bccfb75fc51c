package get_available_slots

import (
	"context"
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// Ledger exposes the per-date slot availability view.
type Ledger interface {
	AvailableSlots(ctx context.Context, date time.Time) ([]domain.Slot, error)
}

// TimeProvider supplies "today" for the eligibility check.
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
