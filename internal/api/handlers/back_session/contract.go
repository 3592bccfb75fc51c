package back_session

import (
	"github.com/nbclib/NBC-ReservationService/internal/service/sessions"
)

type SessionRegistry interface {
	Back(id string) (sessions.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
