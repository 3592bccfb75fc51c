package sessions

import "errors"

var (
	// ErrSessionNotFound is returned for an unknown session token.
	ErrSessionNotFound = errors.New("sessions: session not found")
)
