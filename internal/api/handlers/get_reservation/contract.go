package get_reservation

import (
	"context"

	getReservation "github.com/nbclib/NBC-ReservationService/internal/usecase/get_reservation"
)

type GetReservationUseCase interface {
	Execute(ctx context.Context, req *getReservation.Request) (*getReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
