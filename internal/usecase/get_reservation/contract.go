package get_reservation

import (
	"context"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// Ledger is the lookup surface of the booking ledger.
type Ledger interface {
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
