package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
	"github.com/nbclib/NBC-ReservationService/internal/infra/storage/memory"
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

// Monday, so today and the two days after are all eligible.
var testToday = time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

func newTestService() *Service {
	svc := NewService(
		memory.NewStore(),
		memory.NewTxManager(),
		domain.DefaultSchedule(),
		NopMetrics{},
		nopLogger{},
	)
	return svc.WithTimeProvider(&fixedClock{now: testToday})
}

func validContact() domain.ContactInfo {
	return domain.ContactInfo{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+1 555 0100",
		Purpose: domain.PurposeResearch,
	}
}

func TestCommitAndLookup(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	booking, err := svc.Commit(ctx, date, 5, validContact())
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Slot 5", booking.SlotName)
	assert.Equal(t, "SLOT 5", booking.SlotDisplay)
	assert.Equal(t, "Visit slot 5 for the day", booking.SlotDescription)
	assert.True(t, booking.VisitDate.Equal(date))

	booked, err := svc.IsBooked(ctx, date, 5)
	require.NoError(t, err)
	assert.True(t, booked)

	got, err := svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
	assert.Equal(t, "Ada Lovelace", got.Contact.Name)
}

func TestCommitSecondClaimRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	_, err := svc.Commit(ctx, date, 5, validContact())
	require.NoError(t, err)

	other := validContact()
	other.Name = "Grace Hopper"
	other.Email = "grace@example.com"

	_, err = svc.Commit(ctx, date, 5, other)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// The slot stays with the first claim.
	booking, err := svc.GetBooking(ctx, mustBookingID(t, svc, date, 5))
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", booking.Contact.Name)

	// Same slot on the next eligible date is independent.
	_, err = svc.Commit(ctx, date.AddDate(0, 0, 1), 5, other)
	assert.NoError(t, err)
}

func mustBookingID(t *testing.T, svc *Service, date time.Time, slotID int) string {
	t.Helper()
	bookings, err := svc.store.ListByDate(context.Background(), date)
	require.NoError(t, err)
	for _, b := range bookings {
		if b.SlotID == slotID {
			return b.ID
		}
	}
	t.Fatalf("no booking for slot %d on %s", slotID, domain.DateKey(date))
	return ""
}

func TestCommitValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	missingEmail := validContact()
	missingEmail.Email = ""
	_, err := svc.Commit(ctx, date, 5, missingEmail)
	assert.ErrorIs(t, err, ErrInvalidContact)

	_, err = svc.Commit(ctx, date, 0, validContact())
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = svc.Commit(ctx, date, 21, validContact())
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestCommitEligibilityCheckedAtCommitTime(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: testToday}
	svc := NewService(
		memory.NewStore(),
		memory.NewTxManager(),
		domain.DefaultSchedule(),
		NopMetrics{},
		nopLogger{},
	).WithTimeProvider(clock)

	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	// Friday is closed regardless of the clock.
	_, err := svc.Commit(ctx, time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC), 5, validContact())
	assert.ErrorIs(t, err, ErrDateNotEligible)

	// A date eligible yesterday goes stale once the clock moves past it.
	clock.now = testToday.AddDate(0, 0, 3)
	_, err = svc.Commit(ctx, date, 5, validContact())
	assert.ErrorIs(t, err, ErrDateNotEligible)
}

func TestCommitWithNonUTCClock(t *testing.T) {
	ctx := context.Background()
	// Same Monday morning instant as testToday, but the server clock ticks
	// in a non-UTC zone while wire dates parse to UTC midnights.
	clock := &fixedClock{now: time.Date(2025, time.June, 2, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))}
	svc := NewService(
		memory.NewStore(),
		memory.NewTxManager(),
		domain.DefaultSchedule(),
		NopMetrics{},
		nopLogger{},
	).WithTimeProvider(clock)

	tomorrow, err := time.Parse(domain.DateFormat, "2025-06-03")
	require.NoError(t, err)

	booking, err := svc.Commit(ctx, tomorrow, 5, validContact())
	require.NoError(t, err)
	assert.True(t, booking.VisitDate.Equal(tomorrow))

	// Today stays bookable even when local midnight and UTC midnight differ.
	today, err := time.Parse(domain.DateFormat, "2025-06-02")
	require.NoError(t, err)
	_, err = svc.Commit(ctx, today, 6, validContact())
	require.NoError(t, err)
}

func TestAvailableSlotsPartition(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	for _, slotID := range []int{1, 7, 20} {
		contact := validContact()
		_, err := svc.Commit(ctx, date, slotID, contact)
		require.NoError(t, err)
	}

	available, err := svc.AvailableSlots(ctx, date)
	require.NoError(t, err)
	assert.Len(t, available, 17)

	seen := make(map[int]bool)
	for _, slot := range available {
		seen[slot.ID] = true
	}
	for _, booked := range []int{1, 7, 20} {
		assert.False(t, seen[booked], "booked slot %d must not be listed", booked)
	}

	count, err := svc.AvailableCount(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 17, count)
}

func TestCancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	booking, err := svc.Commit(ctx, date, 5, validContact())
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(ctx, booking.ID))
	assert.ErrorIs(t, svc.CancelBooking(ctx, booking.ID), ErrBookingNotFound)

	_, err = svc.GetBooking(ctx, booking.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	booked, err := svc.IsBooked(ctx, date, 5)
	require.NoError(t, err)
	assert.False(t, booked)

	_, err = svc.Commit(ctx, date, 5, validContact())
	assert.NoError(t, err)
}

func TestCommitRace_ExactlyOneWinner(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	const goroutines = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Commit(ctx, date, 5, validContact())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrSlotUnavailable):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, goroutines-1, conflicts)
}
