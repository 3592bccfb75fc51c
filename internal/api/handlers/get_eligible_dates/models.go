package get_eligible_dates

import (
	"github.com/nbclib/NBC-ReservationService/internal/domain"
	getEligibleDates "github.com/nbclib/NBC-ReservationService/internal/usecase/get_eligible_dates"
)

// EligibleDatesResponse HTTP response model
type EligibleDatesResponse struct {
	Today TodayView          `json:"today"`
	Dates []EligibleDateView `json:"dates"`
}

type TodayView struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

type EligibleDateView struct {
	Date           string `json:"date"`
	Weekday        string `json:"weekday"`
	AvailableCount int    `json:"availableCount"`
	FullyBooked    bool   `json:"fullyBooked"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *getEligibleDates.Response) *EligibleDatesResponse {
	dates := make([]EligibleDateView, 0, len(resp.Dates))
	for _, d := range resp.Dates {
		dates = append(dates, EligibleDateView{
			Date:           d.Date.Format(domain.DateFormat),
			Weekday:        d.Weekday,
			AvailableCount: d.AvailableCount,
			FullyBooked:    d.FullyBooked,
		})
	}
	return &EligibleDatesResponse{
		Today: TodayView{
			Date:    resp.Today.Date.Format(domain.DateFormat),
			Weekday: resp.Today.Weekday,
		},
		Dates: dates,
	}
}
