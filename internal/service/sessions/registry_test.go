package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/infra/storage/memory"
	"github.com/nbclib/NBC-ReservationService/internal/service/ledger"
	"github.com/nbclib/NBC-ReservationService/internal/session"
	"github.com/nbclib/NBC-ReservationService/pkg/ptr"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Monday.
var testToday = time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

func newTestRegistry() *Registry {
	clock := &fixedClock{now: testToday}
	schedule := domain.DefaultSchedule()
	svc := ledger.NewService(
		memory.NewStore(),
		memory.NewTxManager(),
		schedule,
		ledger.NopMetrics{},
		nopLogger{},
	).WithTimeProvider(clock)
	return NewRegistry(schedule, svc, nopLogger{}).WithTimeProvider(clock)
}

func TestRegistryFullFlow(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	snap := r.Create()
	require.NotEmpty(t, snap.ID)
	assert.Equal(t, session.StateSelectingDate, snap.State)
	id := snap.ID

	snap, err := r.SelectDate(id, testToday)
	require.NoError(t, err)
	assert.Equal(t, session.StateSelectingSlot, snap.State)
	require.NotNil(t, snap.Date)

	snap, err = r.SelectSlot(ctx, id, 5)
	require.NoError(t, err)
	assert.Equal(t, session.StateEnteringInfo, snap.State)
	require.NotNil(t, snap.Slot)
	assert.Equal(t, "SLOT 5", snap.Slot.Display)

	snap, err = r.SetContact(id, session.ContactFields{
		Name:  ptr.Ptr("Ada Lovelace"),
		Email: ptr.Ptr("ada@example.com"),
		Phone: ptr.Ptr("+1 555 0100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", snap.Contact.Name)

	snap, err = r.Submit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, session.StateConfirmed, snap.State)
	require.NotNil(t, snap.Booking)
	assert.Equal(t, 5, snap.Booking.SlotID)
	assert.Equal(t, "Visit slot 5 for the day", snap.Booking.SlotDescription)

	// The snapshot stays readable after confirmation.
	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, session.StateConfirmed, got.State)
}

func TestRegistryUnknownSession(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = r.SelectDate("nope", testToday)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = r.Submit(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	first := r.Create().ID
	second := r.Create().ID

	_, err := r.SelectDate(first, testToday)
	require.NoError(t, err)
	_, err = r.SelectSlot(ctx, first, 5)
	require.NoError(t, err)

	snap, err := r.Get(second)
	require.NoError(t, err)
	assert.Equal(t, session.StateSelectingDate, snap.State)
	assert.Nil(t, snap.Date)
	assert.Nil(t, snap.Slot)
}

func TestRegistrySubmitConflictSurfacesInSnapshot(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	drive := func(id string) {
		t.Helper()
		_, err := r.SelectDate(id, testToday)
		require.NoError(t, err)
		_, err = r.SelectSlot(ctx, id, 5)
		require.NoError(t, err)
		_, err = r.SetContact(id, session.ContactFields{
			Name:  ptr.Ptr("Ada Lovelace"),
			Email: ptr.Ptr("ada@example.com"),
			Phone: ptr.Ptr("+1 555 0100"),
		})
		require.NoError(t, err)
	}

	winner := r.Create().ID
	loser := r.Create().ID
	drive(winner)
	drive(loser)

	_, err := r.Submit(ctx, winner)
	require.NoError(t, err)

	snap, err := r.Submit(ctx, loser)
	require.ErrorIs(t, err, ledger.ErrSlotUnavailable)
	assert.Equal(t, session.StateError, snap.State)
	assert.NotEmpty(t, snap.Reason)

	// Back re-opens slot selection; slot 5 is gone but others remain.
	snap, err = r.Back(loser)
	require.NoError(t, err)
	assert.Equal(t, session.StateSelectingSlot, snap.State)

	_, err = r.SelectSlot(ctx, loser, 5)
	assert.ErrorIs(t, err, session.ErrSlotUnavailable)

	snap, err = r.SelectSlot(ctx, loser, 6)
	require.NoError(t, err)
	assert.Equal(t, session.StateEnteringInfo, snap.State)

	snap, err = r.Submit(ctx, loser)
	require.NoError(t, err)
	assert.Equal(t, session.StateConfirmed, snap.State)
}

func TestRegistryReset(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry()

	id := r.Create().ID
	_, err := r.SelectDate(id, testToday)
	require.NoError(t, err)
	_, err = r.SelectSlot(ctx, id, 5)
	require.NoError(t, err)

	snap, err := r.Reset(id)
	require.NoError(t, err)
	assert.Equal(t, session.StateSelectingDate, snap.State)
	assert.Nil(t, snap.Date)
	assert.Nil(t, snap.Slot)
	assert.Equal(t, domain.ContactInfo{}, snap.Contact)
}
