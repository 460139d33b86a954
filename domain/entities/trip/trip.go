package trip

import (
	"time"
)

// Columns of the city datasets
const (
	ColumnStartTime    = "Start Time"
	ColumnEndTime      = "End Time"
	ColumnDuration     = "Trip Duration"
	ColumnStartStation = "Start Station"
	ColumnEndStation   = "End Station"
	ColumnUserType     = "User Type"
	ColumnGender       = "Gender"
	ColumnBirthYear    = "Birth Year"
)

// Columns derived from the start time when the dataset is loaded
const (
	ColumnMonth     = "month"
	ColumnDayOfWeek = "day_of_week"
)

// RequiredColumns every city dataset must have
var RequiredColumns = []string{
	ColumnStartTime,
	ColumnDuration,
	ColumnStartStation,
	ColumnEndStation,
	ColumnUserType,
}

// OptionalColumns some city datasets have. Washington has none of them
var OptionalColumns = []string{
	ColumnGender,
	ColumnBirthYear,
}

// Trip struct that contains one row of a city dataset
// + City: city which belongs the trip
// + StartTime: date and time in which the trip begins
// + EndTime: date and time in which the trip ends, zero if the dataset has no end time
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: Subscriber, Customer, ...
// + Gender: empty if unknown or not present in the dataset
// + BirthYear: zero if unknown or not present in the dataset
// + Month: calendar month of StartTime, 1 is January
// + DayOfWeek: English name of the weekday of StartTime
type Trip struct {
	City         string    `json:"city"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	Month        int       `json:"month"`
	DayOfWeek    string    `json:"day_of_week"`
}

// Route pair of stations in which a trip begins and ends
type Route struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
}

func (t Trip) Route() Route {
	return Route{StartStation: t.StartStation, EndStation: t.EndStation}
}

func (t Trip) HasBirthYear() bool {
	return t.BirthYear != 0
}

// Less orders routes by start station and then by end station
func (r Route) Less(other Route) bool {
	if r.StartStation != other.StartStation {
		return r.StartStation < other.StartStation
	}
	return r.EndStation < other.EndStation
}
