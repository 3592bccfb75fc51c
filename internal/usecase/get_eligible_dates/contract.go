package get_eligible_dates

import (
	"context"
	"time"
)

// Ledger exposes per-date availability counts.
type Ledger interface {
	AvailableCount(ctx context.Context, date time.Time) (int, error)
}

// TimeProvider supplies "today" for the calendar walk.
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
