package domain

import "time"

// Schedule describes when and how many visit slots the library offers.
// A date is eligible when it lies within HorizonDays of "today" and its
// weekday is not closed; at most MaxEligibleDates dates are offered.
type Schedule struct {
	SlotCount        int
	HorizonDays      int
	MaxEligibleDates int
	ClosedWeekdays   []time.Weekday
}

// DefaultSchedule returns the standard library schedule: 20 slots per day,
// a 50-day lookahead capped at 30 dates, closed on Fridays and Saturdays.
func DefaultSchedule() Schedule {
	return Schedule{
		SlotCount:        DefaultSlotCount,
		HorizonDays:      DefaultHorizonDays,
		MaxEligibleDates: DefaultMaxEligibleDates,
		ClosedWeekdays:   DefaultClosedWeekdays,
	}
}

// IsClosedWeekday reports whether the library is closed on the given weekday.
func (s Schedule) IsClosedWeekday(d time.Weekday) bool {
	for _, closed := range s.ClosedWeekdays {
		if closed == d {
			return true
		}
	}
	return false
}

// EligibleDates walks the calendar forward from today (inclusive) for up to
// HorizonDays days, keeping dates whose weekday is open, and stops once
// MaxEligibleDates dates have been collected. The result is strictly
// increasing and deterministic for a fixed today.
func (s Schedule) EligibleDates(today time.Time) []time.Time {
	start := TruncateToDate(today)
	dates := make([]time.Time, 0, s.MaxEligibleDates)

	for i := 0; i < s.HorizonDays; i++ {
		date := start.AddDate(0, 0, i)
		if s.IsClosedWeekday(date.Weekday()) {
			continue
		}
		dates = append(dates, date)
		if len(dates) >= s.MaxEligibleDates {
			break
		}
	}

	return dates
}

// IsEligibleDate reports whether date is currently bookable relative to
// today. Eligibility is recomputed against the caller-supplied today, never
// against the wall clock, so a long-lived selection can be re-checked at
// commit time. Wire dates arrive as UTC midnights while the clock ticks in
// the server's zone, so every comparison is by calendar day, not by instant.
func (s Schedule) IsEligibleDate(date, today time.Time) bool {
	if DateKey(date) < DateKey(today) {
		return false
	}
	if s.IsClosedWeekday(date.Weekday()) {
		return false
	}

	// The MaxEligibleDates cap can cut the horizon short, so membership in
	// the walked sequence is the authoritative check.
	for _, eligible := range s.EligibleDates(today) {
		if SameDate(eligible, date) {
			return true
		}
	}
	return false
}

// TruncateToDate drops the time-of-day component, keeping the location.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two timestamps fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateKey renders a date as its canonical YYYY-MM-DD ledger key.
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}
