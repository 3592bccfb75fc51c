package set_contact

import (
	"github.com/nbclib/NBC-ReservationService/internal/service/sessions"
	"github.com/nbclib/NBC-ReservationService/internal/session"
)

type SessionRegistry interface {
	SetContact(id string, fields session.ContactFields) (sessions.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
