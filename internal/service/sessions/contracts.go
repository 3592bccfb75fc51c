package sessions

import (
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/session"
)

// Ledger re-exports the ledger slice sessions run against.
type Ledger = session.Ledger

// TimeProvider supplies "today" for the sessions' eligibility checks.
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
