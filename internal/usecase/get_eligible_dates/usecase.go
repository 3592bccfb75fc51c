package get_eligible_dates

import (
	"context"
	"fmt"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// UseCase lists the eligible dates with per-date availability, mirroring the
// original date grid where fully booked dates are shown but unselectable.
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

// Execute walks the eligible calendar and annotates every date with how many
// slots remain open.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	today := domain.TruncateToDate(now)

	eligible := uc.schedule.EligibleDates(now)
	dates := make([]EligibleDate, 0, len(eligible))

	for _, date := range eligible {
		count, err := uc.ledger.AvailableCount(ctx, date)
		if err != nil {
			uc.logger.Error("GetEligibleDates: availability for %s: %v", domain.DateKey(date), err)
			return nil, fmt.Errorf("%w: failed to count availability: %v", ErrInternal, err)
		}

		dates = append(dates, EligibleDate{
			Date:           date,
			Weekday:        date.Weekday().String(),
			AvailableCount: count,
			FullyBooked:    count == 0,
		})
	}

	uc.logger.Info("GetEligibleDates: %d dates from %s", len(dates), domain.DateKey(today))
	return &Response{
		Today: TodayInfo{Date: today, Weekday: today.Weekday().String()},
		Dates: dates,
	}, nil
}
