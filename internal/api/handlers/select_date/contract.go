package select_date

import (
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/service/sessions"
)

type SessionRegistry interface {
	SelectDate(id string, date time.Time) (sessions.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
