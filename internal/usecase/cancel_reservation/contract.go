package cancel_reservation

import "context"

// Ledger is the cancellation surface of the booking ledger.
type Ledger interface {
	CancelBooking(ctx context.Context, id string) error
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
