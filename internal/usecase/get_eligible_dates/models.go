package get_eligible_dates

import "time"

// Response lists the currently bookable dates in calendar order.
type Response struct {
	Today TodayInfo
	Dates []EligibleDate
}

// TodayInfo echoes the reference date the walk started from.
type TodayInfo struct {
	Date    time.Time
	Weekday string
}

// EligibleDate is one bookable date with its remaining capacity.
type EligibleDate struct {
	Date           time.Time
	Weekday        string
	AvailableCount int
	FullyBooked    bool
}
