package create_reservation

import (
	"context"
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// Ledger is the commit surface of the booking ledger.
type Ledger interface {
	Commit(ctx context.Context, date time.Time, slotID int, contact domain.ContactInfo) (*domain.Booking, error)
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
