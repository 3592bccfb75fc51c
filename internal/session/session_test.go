package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/pkg/ptr"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

// fakeLedger serves a fixed availability list and scripts the commit result.
type fakeLedger struct {
	available []domain.Slot
	listErr   error

	commitErr     error
	commitBooking *domain.Booking
	commits       int
}

func (f *fakeLedger) AvailableSlots(_ context.Context, _ time.Time) ([]domain.Slot, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.available, nil
}

func (f *fakeLedger) Commit(_ context.Context, date time.Time, slotID int, contact domain.ContactInfo) (*domain.Booking, error) {
	f.commits++
	if f.commitErr != nil {
		return nil, f.commitErr
	}
	if f.commitBooking != nil {
		return f.commitBooking, nil
	}
	return &domain.Booking{
		ID:        "b-1",
		VisitDate: date,
		SlotID:    slotID,
		Contact:   contact,
		CreatedAt: date,
	}, nil
}

// Monday.
var testToday = time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

func newTestSession(ledger Ledger) *Session {
	return New("s-1", domain.DefaultSchedule(), ledger, &fixedClock{now: testToday})
}

func fillContact(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.SetContact(ContactFields{
		Name:  ptr.Ptr("Ada Lovelace"),
		Email: ptr.Ptr("ada@example.com"),
		Phone: ptr.Ptr("+1 555 0100"),
	}))
}

func advanceToEnteringInfo(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.SelectDate(testToday))
	require.NoError(t, s.SelectSlot(context.Background(), 5))
	require.Equal(t, StateEnteringInfo, s.State())
}

func TestHappyPath(t *testing.T) {
	ledger := &fakeLedger{available: domain.DefaultCatalog}
	s := newTestSession(ledger)

	assert.Equal(t, StateSelectingDate, s.State())

	require.NoError(t, s.SelectDate(testToday))
	assert.Equal(t, StateSelectingSlot, s.State())

	require.NoError(t, s.SelectSlot(context.Background(), 5))
	assert.Equal(t, StateEnteringInfo, s.State())
	require.NotNil(t, s.Slot())
	assert.Equal(t, 5, s.Slot().ID)

	fillContact(t, s)
	require.NoError(t, s.SetContact(ContactFields{Purpose: ptr.Ptr("research")}))

	booking, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, s.State())
	assert.Equal(t, booking, s.Booking())
	assert.Equal(t, 1, ledger.commits)
}

func TestTransitionsOutOfOrderRejected(t *testing.T) {
	ledger := &fakeLedger{available: domain.DefaultCatalog}
	ctx := context.Background()

	s := newTestSession(ledger)
	assert.ErrorIs(t, s.SelectSlot(ctx, 5), ErrInvalidTransition)
	assert.ErrorIs(t, s.SetContact(ContactFields{Name: ptr.Ptr("Ada")}), ErrInvalidTransition)
	_, err := s.Submit(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, s.Back(), ErrInvalidTransition)

	require.NoError(t, s.SelectDate(testToday))
	assert.ErrorIs(t, s.SelectDate(testToday), ErrInvalidTransition)
	_, err = s.Submit(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// A confirmed session is terminal except for Reset.
	require.NoError(t, s.SelectSlot(ctx, 5))
	fillContact(t, s)
	_, err = s.Submit(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, s.SelectDate(testToday), ErrInvalidTransition)
	assert.ErrorIs(t, s.Back(), ErrInvalidTransition)
}

func TestSelectDateRejectsIneligible(t *testing.T) {
	s := newTestSession(&fakeLedger{available: domain.DefaultCatalog})

	// Friday is closed.
	err := s.SelectDate(time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Yesterday is gone.
	err = s.SelectDate(testToday.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.Equal(t, StateSelectingDate, s.State())
}

func TestSelectSlotUnavailable(t *testing.T) {
	// Slot 5 is already booked: the refresh only offers the rest.
	available := make([]domain.Slot, 0, len(domain.DefaultCatalog)-1)
	for _, slot := range domain.DefaultCatalog {
		if slot.ID != 5 {
			available = append(available, slot)
		}
	}
	s := newTestSession(&fakeLedger{available: available})

	require.NoError(t, s.SelectDate(testToday))
	assert.ErrorIs(t, s.SelectSlot(context.Background(), 5), ErrSlotUnavailable)
	assert.Equal(t, StateSelectingSlot, s.State())

	// The visitor can pick another slot without restarting.
	assert.NoError(t, s.SelectSlot(context.Background(), 6))
}

func TestSelectSlotLedgerFailure(t *testing.T) {
	s := newTestSession(&fakeLedger{listErr: errors.New("store down")})

	require.NoError(t, s.SelectDate(testToday))
	assert.ErrorIs(t, s.SelectSlot(context.Background(), 5), ErrInternal)
}

func TestSubmitRequiresCompleteContact(t *testing.T) {
	ledger := &fakeLedger{available: domain.DefaultCatalog}
	s := newTestSession(ledger)
	advanceToEnteringInfo(t, s)

	require.NoError(t, s.SetContact(ContactFields{
		Name:  ptr.Ptr("Ada Lovelace"),
		Email: ptr.Ptr("ada@example.com"),
	}))

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteContact)
	assert.Equal(t, StateEnteringInfo, s.State())
	assert.Zero(t, ledger.commits)
}

func TestSubmitCommitFailureMovesToError(t *testing.T) {
	commitErr := errors.New("slot is not available")
	ledger := &fakeLedger{available: domain.DefaultCatalog, commitErr: commitErr}
	s := newTestSession(ledger)
	advanceToEnteringInfo(t, s)
	fillContact(t, s)

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, commitErr)
	assert.Equal(t, StateError, s.State())
	assert.Equal(t, commitErr, s.Err())

	// Back recovers to slot selection with the slot dropped and the error
	// cleared; the contact draft survives.
	require.NoError(t, s.Back())
	assert.Equal(t, StateSelectingSlot, s.State())
	assert.Nil(t, s.Slot())
	assert.Nil(t, s.Err())
	assert.Equal(t, "Ada Lovelace", s.Contact().Name)

	// Retry succeeds once the ledger recovers.
	ledger.commitErr = nil
	require.NoError(t, s.SelectSlot(context.Background(), 6))
	_, err = s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, s.State())
}

func TestBackDiscardsForwardSelections(t *testing.T) {
	s := newTestSession(&fakeLedger{available: domain.DefaultCatalog})
	advanceToEnteringInfo(t, s)
	fillContact(t, s)

	// entering_info -> selecting_slot drops the slot, keeps the date.
	require.NoError(t, s.Back())
	assert.Equal(t, StateSelectingSlot, s.State())
	assert.Nil(t, s.Slot())
	assert.False(t, s.Date().IsZero())
	assert.Equal(t, "Ada Lovelace", s.Contact().Name)

	// selecting_slot -> selecting_date drops the date too.
	require.NoError(t, s.Back())
	assert.Equal(t, StateSelectingDate, s.State())
	assert.True(t, s.Date().IsZero())

	// Choosing a new date starts slot selection from scratch.
	require.NoError(t, s.SelectDate(testToday.AddDate(0, 0, 1)))
	assert.Equal(t, StateSelectingSlot, s.State())
	assert.Nil(t, s.Slot())
}

func TestResetClearsEverything(t *testing.T) {
	s := newTestSession(&fakeLedger{available: domain.DefaultCatalog})
	advanceToEnteringInfo(t, s)
	fillContact(t, s)

	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	s.Reset()

	assert.Equal(t, StateSelectingDate, s.State())
	assert.True(t, s.Date().IsZero())
	assert.Nil(t, s.Slot())
	assert.Nil(t, s.Booking())
	assert.Equal(t, domain.ContactInfo{}, s.Contact())
}

func TestSetContactMergesIncrementally(t *testing.T) {
	s := newTestSession(&fakeLedger{available: domain.DefaultCatalog})
	advanceToEnteringInfo(t, s)

	require.NoError(t, s.SetContact(ContactFields{Name: ptr.Ptr("Ada Lovelace")}))
	require.NoError(t, s.SetContact(ContactFields{Email: ptr.Ptr("ada@example.com")}))
	require.NoError(t, s.SetContact(ContactFields{Phone: ptr.Ptr("+1 555 0100"), Purpose: ptr.Ptr("study")}))

	c := s.Contact()
	assert.Equal(t, "Ada Lovelace", c.Name)
	assert.Equal(t, "ada@example.com", c.Email)
	assert.Equal(t, "+1 555 0100", c.Phone)
	assert.Equal(t, domain.PurposeStudy, c.Purpose)

	// Updating one field leaves the rest untouched.
	require.NoError(t, s.SetContact(ContactFields{Phone: ptr.Ptr("+1 555 0199")}))
	assert.Equal(t, "Ada Lovelace", s.Contact().Name)
	assert.Equal(t, "+1 555 0199", s.Contact().Phone)
}
