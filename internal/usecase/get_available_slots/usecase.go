package get_available_slots

import (
	"context"
	"fmt"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// UseCase lists the open slots on one eligible date.
type UseCase struct {
	ledger       Ledger
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(ledger Ledger, schedule domain.Schedule, logger Logger) *UseCase {
	return &UseCase{
		ledger:       ledger,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider overrides the clock. Intended for tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute returns the slots still open on the requested date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	if !uc.schedule.IsEligibleDate(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date=%s not eligible", domain.DateKey(req.Date))
		return nil, ErrDateNotEligible
	}

	slots, err := uc.ledger.AvailableSlots(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: ledger error for date=%s: %v", domain.DateKey(req.Date), err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, %d/%d open", domain.DateKey(req.Date), len(slots), uc.schedule.SlotCount)
	return &Response{
		Date:           domain.TruncateToDate(req.Date),
		Slots:          slots,
		TotalSlots:     uc.schedule.SlotCount,
		AvailableCount: len(slots),
	}, nil
}
