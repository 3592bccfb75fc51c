package get_eligible_dates

import (
	"context"

	getEligibleDates "github.com/nbclib/NBC-ReservationService/internal/usecase/get_eligible_dates"
)

type GetEligibleDatesUseCase interface {
	Execute(ctx context.Context) (*getEligibleDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
