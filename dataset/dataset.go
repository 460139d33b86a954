package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// timeLayouts accepted for the Start Time and End Time columns
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04",
	"01/02/2006 15:04:05",
}

// Dataset trips of a city after applying a selection. It is read-only: every
// method that changes the content returns a new Dataset
type Dataset struct {
	city   string
	frame  dataframe.DataFrame
	schema Schema
	trips  []trip.Trip
}

func newDataset(city string, frame dataframe.DataFrame, schema Schema) (*Dataset, error) {
	trips, err := parseTrips(city, frame, schema)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		city:   city,
		frame:  frame,
		schema: schema,
		trips:  trips,
	}, nil
}

func (ds *Dataset) City() string {
	return ds.city
}

func (ds *Dataset) Schema() Schema {
	return ds.schema
}

func (ds *Dataset) Len() int {
	return len(ds.trips)
}

// Trips returns a copy of the trips of the dataset, in file order
func (ds *Dataset) Trips() []trip.Trip {
	return append([]trip.Trip(nil), ds.trips...)
}

// Columns returns the column names of the raw rows, derived columns included
func (ds *Dataset) Columns() []string {
	return ds.frame.Names()
}

// Rows returns the raw values of the rows in [from, to), clamped to the dataset size
func (ds *Dataset) Rows(from int, to int) [][]string {
	if from < 0 {
		from = 0
	}
	if to > ds.Len() {
		to = ds.Len()
	}
	if from >= to {
		return nil
	}

	indexes := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		indexes = append(indexes, i)
	}

	records := ds.frame.Subset(indexes).Records()
	return records[1:] // first record is the header
}

// Filter keeps the trips that match the month and the day of the selection.
// The city of the selection is ignored
func (ds *Dataset) Filter(sel selection.Selection) (*Dataset, error) {
	var filters []dataframe.F
	if monthIndex := sel.MonthIndex(); monthIndex > 0 {
		filters = append(filters, dataframe.F{
			Colname:    trip.ColumnMonth,
			Comparator: series.Eq,
			Comparando: monthIndex,
		})
	}

	if dayName := sel.DayName(); dayName != "" {
		filters = append(filters, dataframe.F{
			Colname:    trip.ColumnDayOfWeek,
			Comparator: series.Eq,
			Comparando: dayName,
		})
	}

	if len(filters) == 0 {
		return ds, nil
	}

	filtered := ds.frame.FilterAggregation(dataframe.And, filters...)
	if filtered.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFilteringDataset, filtered.Err.Error())
	}

	return newDataset(ds.city, filtered, ds.schema)
}

// parseTrips builds a Trip for every row of the frame. A single invalid row makes the whole frame invalid
func parseTrips(city string, frame dataframe.DataFrame, schema Schema) ([]trip.Trip, error) {
	startTimes := frame.Col(trip.ColumnStartTime).Records()
	durations := frame.Col(trip.ColumnDuration).Records()
	startStations := frame.Col(trip.ColumnStartStation).Records()
	endStations := frame.Col(trip.ColumnEndStation).Records()
	userTypes := frame.Col(trip.ColumnUserType).Records()
	months := frame.Col(trip.ColumnMonth).Records()
	days := frame.Col(trip.ColumnDayOfWeek).Records()

	var endTimes, genders, birthYears []string
	if utils.ContainsString(trip.ColumnEndTime, frame.Names()) {
		endTimes = frame.Col(trip.ColumnEndTime).Records()
	}
	if schema.HasGender() {
		genders = frame.Col(trip.ColumnGender).Records()
	}
	if schema.HasBirthYear() {
		birthYears = frame.Col(trip.ColumnBirthYear).Records()
	}

	trips := make([]trip.Trip, frame.Nrow())
	for i := range trips {
		startTime, err := parseTime(startTimes[i])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %q", ErrInvalidStartTime, i+1, startTimes[i])
		}

		duration, err := parseNumber(durations[i])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %q", ErrInvalidDuration, i+1, durations[i])
		}

		month, err := strconv.Atoi(months[i])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid month %q", ErrInvalidStartTime, i+1, months[i])
		}

		tripData := trip.Trip{
			City:         city,
			StartTime:    startTime,
			Duration:     duration,
			StartStation: cleanValue(startStations[i]),
			EndStation:   cleanValue(endStations[i]),
			UserType:     cleanValue(userTypes[i]),
			Month:        month,
			DayOfWeek:    days[i],
		}

		if endTimes != nil && !isMissing(endTimes[i]) {
			tripData.EndTime, err = parseTime(endTimes[i])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %q", ErrInvalidEndTime, i+1, endTimes[i])
			}
		}

		if genders != nil {
			tripData.Gender = cleanValue(genders[i])
		}

		if birthYears != nil && !isMissing(birthYears[i]) {
			birthYear, err := parseNumber(birthYears[i])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %q", ErrInvalidBirthYear, i+1, birthYears[i])
			}
			tripData.BirthYear = int(birthYear)
		}

		trips[i] = tripData
	}

	return trips, nil
}

func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var err error
	for _, layout := range timeLayouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}

// parseNumber parses a finite number. NaN and infinite values are errors
func parseNumber(value string) (float64, error) {
	number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, fmt.Errorf("%q is not a finite number", value)
	}
	return number, nil
}

// isMissing returns true for empty cells. gota stores them as NaN
func isMissing(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || value == "NaN"
}

func cleanValue(value string) string {
	if isMissing(value) {
		return ""
	}
	return strings.TrimSpace(value)
}
