// Package session implements the per-visitor reservation workflow as an
// explicit state machine. A session belongs to exactly one visitor and is
// never shared; callers needing cross-request access serialize transitions
// themselves (see service/sessions).
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// State is a reservation session state.
type State string

const (
	StateSelectingDate State = "selecting_date"
	StateSelectingSlot State = "selecting_slot"
	StateEnteringInfo  State = "entering_info"
	StateSubmitting    State = "submitting"
	StateConfirmed     State = "confirmed"
	StateError         State = "error"
)

// Ledger is the slice of the booking ledger a session needs: availability
// refresh on slot selection and the atomic commit on submit.
type Ledger interface {
	AvailableSlots(ctx context.Context, date time.Time) ([]domain.Slot, error)
	Commit(ctx context.Context, date time.Time, slotID int, contact domain.ContactInfo) (*domain.Booking, error)
}

// TimeProvider supplies "today" for date eligibility checks.
type TimeProvider interface {
	Now() time.Time
}

// ContactFields carries a partial contact update. Nil fields are left
// untouched so the visitor can fill the form incrementally.
type ContactFields struct {
	Name    *string
	Email   *string
	Phone   *string
	Purpose *string
}

// Session sequences date choice, slot choice, contact capture and commit.
// Illegal orderings are rejected with ErrInvalidTransition rather than being
// representable.
type Session struct {
	id       string
	state    State
	schedule domain.Schedule
	ledger   Ledger
	clock    TimeProvider

	date    time.Time
	slot    *domain.Slot
	contact domain.ContactInfo
	booking *domain.Booking
	lastErr error
}

// New creates a session in StateSelectingDate.
func New(id string, schedule domain.Schedule, ledger Ledger, clock TimeProvider) *Session {
	return &Session{
		id:       id,
		state:    StateSelectingDate,
		schedule: schedule,
		ledger:   ledger,
		clock:    clock,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Date returns the chosen date; the zero time when none is chosen.
func (s *Session) Date() time.Time { return s.date }

// Slot returns the chosen slot, or nil.
func (s *Session) Slot() *domain.Slot { return s.slot }

// Contact returns the contact fields accumulated so far.
func (s *Session) Contact() domain.ContactInfo { return s.contact }

// Booking returns the committed booking once the session is confirmed.
func (s *Session) Booking() *domain.Booking { return s.booking }

// Err returns the failure that moved the session to StateError, or nil.
func (s *Session) Err() error { return s.lastErr }

// SelectDate chooses a visit date. Legal only in StateSelectingDate; the
// date must be eligible as of now. Moves to StateSelectingSlot.
func (s *Session) SelectDate(date time.Time) error {
	if s.state != StateSelectingDate {
		return fmt.Errorf("%w: SelectDate in state %s", ErrInvalidTransition, s.state)
	}

	if !s.schedule.IsEligibleDate(date, s.clock.Now()) {
		return ErrInvalidDate
	}

	s.date = domain.TruncateToDate(date)
	s.slot = nil
	s.state = StateSelectingSlot
	return nil
}

// SelectSlot chooses a slot on the chosen date. Legal only in
// StateSelectingSlot; the slot must still be available per the ledger.
// Moves to StateEnteringInfo.
func (s *Session) SelectSlot(ctx context.Context, slotID int) error {
	if s.state != StateSelectingSlot {
		return fmt.Errorf("%w: SelectSlot in state %s", ErrInvalidTransition, s.state)
	}

	available, err := s.ledger.AvailableSlots(ctx, s.date)
	if err != nil {
		return fmt.Errorf("%w: SelectSlot - availability refresh: %v", ErrInternal, err)
	}

	for i := range available {
		if available[i].ID == slotID {
			slot := available[i]
			s.slot = &slot
			s.state = StateEnteringInfo
			return nil
		}
	}
	return ErrSlotUnavailable
}

// SetContact merges the given fields into the contact draft. Legal only in
// StateEnteringInfo; it neither validates nor transitions. Validation
// happens on submit.
func (s *Session) SetContact(fields ContactFields) error {
	if s.state != StateEnteringInfo {
		return fmt.Errorf("%w: SetContact in state %s", ErrInvalidTransition, s.state)
	}

	if fields.Name != nil {
		s.contact.Name = *fields.Name
	}
	if fields.Email != nil {
		s.contact.Email = *fields.Email
	}
	if fields.Phone != nil {
		s.contact.Phone = *fields.Phone
	}
	if fields.Purpose != nil {
		s.contact.Purpose = domain.VisitPurpose(*fields.Purpose)
	}
	return nil
}

// Submit commits the reservation. Legal only in StateEnteringInfo with all
// required contact fields present. On success the session is confirmed and
// terminal; on a commit failure it moves to StateError, from which Back or
// Reset recover.
func (s *Session) Submit(ctx context.Context) (*domain.Booking, error) {
	if s.state != StateEnteringInfo {
		return nil, fmt.Errorf("%w: Submit in state %s", ErrInvalidTransition, s.state)
	}
	if !s.contact.IsComplete() {
		return nil, ErrIncompleteContact
	}

	s.state = StateSubmitting

	booking, err := s.ledger.Commit(ctx, s.date, s.slot.ID, s.contact)
	if err != nil {
		s.state = StateError
		s.lastErr = err
		return nil, err
	}

	s.booking = booking
	s.state = StateConfirmed
	return booking, nil
}

// Back steps one state backwards, discarding the selections made past the
// target state. From StateSelectingSlot the date is dropped; from
// StateEnteringInfo the slot is dropped; from StateError the session
// returns to slot selection so availability can be re-queried. The contact
// draft survives, matching the original flow where the form kept its
// values.
func (s *Session) Back() error {
	switch s.state {
	case StateSelectingSlot:
		s.date = time.Time{}
		s.slot = nil
		s.state = StateSelectingDate
	case StateEnteringInfo:
		s.slot = nil
		s.state = StateSelectingSlot
	case StateError:
		s.slot = nil
		s.lastErr = nil
		s.state = StateSelectingSlot
	default:
		return fmt.Errorf("%w: Back in state %s", ErrInvalidTransition, s.state)
	}
	return nil
}

// Reset returns the session to StateSelectingDate with every field cleared.
// Legal from any state, including StateConfirmed, where it starts a new,
// independent reservation.
func (s *Session) Reset() {
	s.date = time.Time{}
	s.slot = nil
	s.contact = domain.ContactInfo{}
	s.booking = nil
	s.lastErr = nil
	s.state = StateSelectingDate
}
