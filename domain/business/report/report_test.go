package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
)

const header = "Start Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n"

// 2017-01-02 Monday, 2017-01-03 Tuesday, 2017-02-07 Tuesday, 2017-06-04 Sunday
const chicagoCSV = header +
	"2017-01-02 08:10:00,100,Canal St,Clark St,Subscriber,Male,1989.0\n" +
	"2017-01-03 08:20:00,200,Clark St,Canal St,Subscriber,Female,1992.0\n" +
	"2017-02-07 17:00:00,300,Canal St,Clark St,Customer,,\n" +
	"2017-06-04 17:45:00,400,Wells St,Canal St,Subscriber,Male,1989.0\n" +
	"2017-06-04 08:05:00,500,Canal St,Wells St,Dependent,Female,1975.0\n"

const washingtonCSV = "Start Time,Trip Duration,Start Station,End Station,User Type\n" +
	"2017-03-01 07:57:28,100,21st & I St NW,14th & D St SE,Subscriber\n" +
	"2017-03-04 12:01:09,200,Lincoln Memorial,Jefferson Memorial,Customer\n" +
	"2017-03-05 12:01:09,300,Lincoln Memorial,Jefferson Memorial,Customer\n"

func load(t *testing.T, csv string, city string, month string, day string) *dataset.Dataset {
	t.Helper()
	sel, err := selection.New(city, month, day)
	require.NoError(t, err)
	ds, err := dataset.LoadFrom(strings.NewReader(csv), sel)
	require.NoError(t, err)
	return ds
}

func TestTravelTimeStats(t *testing.T) {
	ds := load(t, chicagoCSV, "chicago", "all", "all")

	travelTime, err := TravelTimeStats(ds)
	require.NoError(t, err)

	assert.Equal(t, tripcounter.Count[time.Month]{Value: time.January, Counter: 2}, travelTime.MostCommonMonth)
	assert.Equal(t, tripcounter.Count[time.Weekday]{Value: time.Tuesday, Counter: 2}, travelTime.MostCommonWeekday)
	assert.Equal(t, tripcounter.Count[int]{Value: 8, Counter: 3}, travelTime.MostCommonStartHour)
}

func TestTravelTimeStatsTieBreaks(t *testing.T) {
	// one trip on Sunday and one on Monday, one in January and one in June, one at 23h and one at 6h
	csv := header +
		"2017-06-04 23:00:00,100,A,B,Subscriber,Male,1989\n" +
		"2017-01-02 06:00:00,100,A,B,Subscriber,Male,1989\n"
	ds := load(t, csv, "chicago", "all", "all")

	travelTime, err := TravelTimeStats(ds)
	require.NoError(t, err)

	assert.Equal(t, time.January, travelTime.MostCommonMonth.Value)
	assert.Equal(t, time.Monday, travelTime.MostCommonWeekday.Value)
	assert.Equal(t, 6, travelTime.MostCommonStartHour.Value)
}

func TestTravelTimeStatsWithFilter(t *testing.T) {
	ds := load(t, chicagoCSV, "chicago", "june", "sunday")

	travelTime, err := TravelTimeStats(ds)
	require.NoError(t, err)

	assert.Equal(t, time.June, travelTime.MostCommonMonth.Value)
	assert.Equal(t, 2, travelTime.MostCommonMonth.Counter)
	assert.Equal(t, time.Sunday, travelTime.MostCommonWeekday.Value)
	assert.Equal(t, 8, travelTime.MostCommonStartHour.Value)
}

func TestStationStats(t *testing.T) {
	ds := load(t, chicagoCSV, "chicago", "all", "all")

	stations, err := StationStats(ds)
	require.NoError(t, err)

	assert.Equal(t, tripcounter.Count[string]{Value: "Canal St", Counter: 3}, stations.TopStartStation)
	assert.Equal(t, tripcounter.Count[string]{Value: "Canal St", Counter: 2}, stations.TopEndStation)
	assert.Equal(t, tripcounter.Count[trip.Route]{
		Value:   trip.Route{StartStation: "Canal St", EndStation: "Clark St"},
		Counter: 2,
	}, stations.TopRoute)
}

func TestStationStatsTopIsMaximum(t *testing.T) {
	ds := load(t, washingtonCSV, "washington", "all", "all")

	stations, err := StationStats(ds)
	require.NoError(t, err)

	startCounts := map[string]int{}
	for _, tripData := range ds.Trips() {
		startCounts[tripData.StartStation]++
	}
	for _, counter := range startCounts {
		assert.GreaterOrEqual(t, stations.TopStartStation.Counter, counter)
	}
	assert.Equal(t, "Lincoln Memorial", stations.TopStartStation.Value)
	assert.Equal(t, "Jefferson Memorial", stations.TopEndStation.Value)
	assert.Equal(t, 2, stations.TopRoute.Counter)
}

func TestDurationStats(t *testing.T) {
	ds := load(t, washingtonCSV, "washington", "all", "all")

	duration, err := DurationStats(ds)
	require.NoError(t, err)

	assert.Equal(t, &DurationReport{Trips: 3, TotalDuration: 600, MeanDuration: 200}, duration)
}

func TestDurationStatsMeanIsTotalOverTrips(t *testing.T) {
	ds := load(t, chicagoCSV, "chicago", "all", "all")

	duration, err := DurationStats(ds)
	require.NoError(t, err)

	assert.Equal(t, 1500.0, duration.TotalDuration)
	assert.InDelta(t, duration.TotalDuration/float64(ds.Len()), duration.MeanDuration, 1e-9)
}

func TestUserDemographics(t *testing.T) {
	ds := load(t, chicagoCSV, "chicago", "all", "all")

	users, err := UserDemographics(ds)
	require.NoError(t, err)

	assert.Equal(t, []tripcounter.Count[string]{
		{Value: "Subscriber", Counter: 3},
		{Value: "Customer", Counter: 1},
		{Value: "Dependent", Counter: 1},
	}, users.UserTypes)
	assert.Equal(t, []tripcounter.Count[string]{
		{Value: "Female", Counter: 2},
		{Value: "Male", Counter: 2},
	}, users.Genders)

	require.NotNil(t, users.BirthYear)
	assert.Equal(t, 1975, users.BirthYear.Earliest)
	assert.Equal(t, 1992, users.BirthYear.MostRecent)
	assert.Equal(t, tripcounter.Count[int]{Value: 1989, Counter: 2}, users.BirthYear.MostCommon)
	assert.LessOrEqual(t, users.BirthYear.Earliest, users.BirthYear.MostRecent)
}

func TestUserDemographicsWithoutOptionalColumns(t *testing.T) {
	ds := load(t, washingtonCSV, "washington", "all", "all")

	users, err := UserDemographics(ds)
	require.NoError(t, err)

	assert.Equal(t, []tripcounter.Count[string]{
		{Value: "Customer", Counter: 2},
		{Value: "Subscriber", Counter: 1},
	}, users.UserTypes)
	assert.Nil(t, users.Genders)
	assert.Nil(t, users.BirthYear)
}

func TestUserDemographicsBirthYearTie(t *testing.T) {
	csv := header +
		"2017-01-02 08:10:00,100,A,B,Subscriber,Male,1990\n" +
		"2017-01-02 08:10:00,100,A,B,Subscriber,Male,1980\n" +
		"2017-01-02 08:10:00,100,A,B,Subscriber,,\n"
	ds := load(t, csv, "chicago", "all", "all")

	users, err := UserDemographics(ds)
	require.NoError(t, err)

	require.NotNil(t, users.BirthYear)
	assert.Equal(t, 1980, users.BirthYear.MostCommon.Value)
	assert.Equal(t, []tripcounter.Count[string]{{Value: "Male", Counter: 2}}, users.Genders)
}

func TestUserDemographicsBlankBirthYears(t *testing.T) {
	csv := header + "2017-01-02 08:10:00,100,A,B,Customer,,\n"
	ds := load(t, csv, "chicago", "all", "all")

	users, err := UserDemographics(ds)
	require.NoError(t, err)

	assert.NotNil(t, users.Genders)
	assert.Empty(t, users.Genders)
	assert.Nil(t, users.BirthYear)
}

func TestReportsOnEmptyDataset(t *testing.T) {
	ds := load(t, chicagoCSV, "chicago", "march", "all")
	require.Equal(t, 0, ds.Len())

	_, err := TravelTimeStats(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = StationStats(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = DurationStats(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = UserDemographics(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestStationStatsSkipsUnknownStations(t *testing.T) {
	csv := header +
		"2017-01-02 08:10:00,100,,Clark St,Subscriber,Male,1989\n" +
		"2017-01-02 08:10:00,100,,Clark St,Subscriber,Male,1989\n" +
		"2017-01-02 08:10:00,100,NA,,Subscriber,Male,1989\n" +
		"2017-01-02 08:10:00,100,Wells St,Canal St,Subscriber,Male,1989\n"
	ds := load(t, csv, "chicago", "all", "all")

	stations, err := StationStats(ds)
	require.NoError(t, err)

	assert.Equal(t, tripcounter.Count[string]{Value: "Wells St", Counter: 1}, stations.TopStartStation)
	assert.Equal(t, tripcounter.Count[string]{Value: "Clark St", Counter: 2}, stations.TopEndStation)
	assert.Equal(t, tripcounter.Count[trip.Route]{
		Value:   trip.Route{StartStation: "Wells St", EndStation: "Canal St"},
		Counter: 1,
	}, stations.TopRoute)
}

func TestStationStatsWithoutKnownStations(t *testing.T) {
	csv := header + "2017-01-02 08:10:00,100,,,Subscriber,Male,1989\n"
	ds := load(t, csv, "chicago", "all", "all")

	_, err := StationStats(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestReportsOnHeaderOnlyDataset(t *testing.T) {
	ds := load(t, header, "chicago", "all", "all")
	require.Equal(t, 0, ds.Len())

	_, err := TravelTimeStats(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = StationStats(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = DurationStats(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = UserDemographics(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}
