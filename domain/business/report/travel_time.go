package report

import (
	"cmp"
	"time"

	"bikeshare/dataset"
	"bikeshare/domain/business/tripcounter"
)

// TravelTimeReport most frequent times of travel
type TravelTimeReport struct {
	MostCommonMonth     tripcounter.Count[time.Month]   `json:"most_common_month"`
	MostCommonWeekday   tripcounter.Count[time.Weekday] `json:"most_common_weekday"`
	MostCommonStartHour tripcounter.Count[int]          `json:"most_common_start_hour"`
}

// TravelTimeStats returns the month, weekday and start hour in which most trips begin.
// Ties go to the earliest month, the earliest weekday counting from Monday and the earliest hour
func TravelTimeStats(ds *dataset.Dataset) (*TravelTimeReport, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	monthCounter := tripcounter.NewTripCounter[time.Month](cmp.Less[time.Month])
	weekdayCounter := tripcounter.NewTripCounter[time.Weekday](mondayFirst)
	hourCounter := tripcounter.NewTripCounter[int](cmp.Less[int])

	for _, tripData := range ds.Trips() {
		monthCounter.UpdateCounter(time.Month(tripData.Month))
		// the weekday comes from the start time, not from the day_of_week column
		weekdayCounter.UpdateCounter(tripData.StartTime.Weekday())
		hourCounter.UpdateCounter(tripData.StartTime.Hour())
	}

	mostCommonMonth, _ := monthCounter.Top()
	mostCommonWeekday, _ := weekdayCounter.Top()
	mostCommonStartHour, _ := hourCounter.Top()

	return &TravelTimeReport{
		MostCommonMonth:     mostCommonMonth,
		MostCommonWeekday:   mostCommonWeekday,
		MostCommonStartHour: mostCommonStartHour,
	}, nil
}

// mondayFirst orders weekdays from Monday to Sunday
func mondayFirst(a time.Weekday, b time.Weekday) bool {
	return (a+6)%7 < (b+6)%7
}
