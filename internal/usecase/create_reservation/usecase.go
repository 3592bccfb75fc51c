package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/service/ledger"
)

// UseCase commits a reservation directly against the ledger, for callers
// that already gathered date, slot and contact in one request.
type UseCase struct {
	ledger Ledger
	logger Logger
}

// NewUseCase creates the use case.
func NewUseCase(l Ledger, logger Logger) *UseCase {
	return &UseCase{ledger: l, logger: logger}
}

// Execute validates the request shape and delegates the atomic check-and-set
// to the ledger, translating its errors into this package's vocabulary.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, slot=%d", domain.DateKey(req.Date), req.SlotID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	booking, err := uc.ledger.Commit(ctx, req.Date, req.SlotID, req.Contact)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrSlotUnavailable):
			uc.logger.Warn("CreateReservation: slot unavailable, date=%s, slot=%d", domain.DateKey(req.Date), req.SlotID)
			return nil, ErrSlotNotAvailable
		case errors.Is(err, ledger.ErrDateNotEligible):
			uc.logger.Warn("CreateReservation: date=%s not eligible", domain.DateKey(req.Date))
			return nil, ErrDateNotEligible
		case errors.Is(err, ledger.ErrInvalidSlot):
			uc.logger.Warn("CreateReservation: invalid slot id=%d", req.SlotID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
		case errors.Is(err, ledger.ErrInvalidContact):
			uc.logger.Warn("CreateReservation: invalid contact: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidContact, err)
		default:
			uc.logger.Error("CreateReservation: commit failed, date=%s, slot=%d: %v", domain.DateKey(req.Date), req.SlotID, err)
			return nil, fmt.Errorf("%w: commit failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateReservation: booked id=%s", booking.ID)
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
