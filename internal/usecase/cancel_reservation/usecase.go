package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbclib/NBC-ReservationService/internal/service/ledger"
)

// UseCase cancels a booking by id.
type UseCase struct {
	ledger Ledger
	logger Logger
}

// NewUseCase creates the use case.
func NewUseCase(l Ledger, logger Logger) *UseCase {
	return &UseCase{ledger: l, logger: logger}
}

// Execute deletes the booking and translates ledger errors into this
// package's vocabulary.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	if req.ID == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	if err := uc.ledger.CancelBooking(ctx, req.ID); err != nil {
		if errors.Is(err, ledger.ErrBookingNotFound) {
			uc.logger.Warn("CancelReservation: booking not found, id=%s", req.ID)
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelReservation: id=%s: %v", req.ID, err)
		return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelReservation: booking cancelled, id=%s", req.ID)
	return nil
}
