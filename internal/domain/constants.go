package domain

import "time"

// Default schedule values
const (
	DefaultSlotCount        = 20
	DefaultHorizonDays      = 50
	DefaultMaxEligibleDates = 30
)

// DefaultClosedWeekdays are the weekdays the library does not open.
var DefaultClosedWeekdays = []time.Weekday{time.Friday, time.Saturday}

// Business validation constants
const (
	MinSlotCount       = 1
	MaxSlotCount       = 100
	MinHorizonDays     = 1
	MaxHorizonDays     = 365
	MaxContactNameLen  = 200
	MaxContactEmailLen = 200
	MaxContactPhoneLen = 50
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
