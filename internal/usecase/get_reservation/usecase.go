package get_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbclib/NBC-ReservationService/internal/service/ledger"
)

// UseCase fetches a single booking by id.
type UseCase struct {
	ledger Ledger
	logger Logger
}

// NewUseCase creates the use case.
func NewUseCase(l Ledger, logger Logger) *UseCase {
	return &UseCase{ledger: l, logger: logger}
}

// Execute looks up the booking and translates ledger errors into this
// package's vocabulary.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := uc.ledger.GetBooking(ctx, req.ID)
	if err != nil {
		if errors.Is(err, ledger.ErrBookingNotFound) {
			uc.logger.Warn("GetReservation: booking not found, id=%s", req.ID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GetReservation: id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return &Response{
		ID:              booking.ID,
		VisitDate:       booking.VisitDate,
		SlotID:          booking.SlotID,
		SlotName:        booking.SlotName,
		SlotDisplay:     booking.SlotDisplay,
		SlotDescription: booking.SlotDescription,
		Contact:         booking.Contact,
		CreatedAt:       booking.CreatedAt,
	}, nil
}
