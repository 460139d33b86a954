package report

import (
	"cmp"

	"bikeshare/dataset"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/trip"
)

// StationReport most popular stations and trip
type StationReport struct {
	TopStartStation tripcounter.Count[string]     `json:"top_start_station"`
	TopEndStation   tripcounter.Count[string]     `json:"top_end_station"`
	TopRoute        tripcounter.Count[trip.Route] `json:"top_route"`
}

// StationStats returns the most used start station, end station and combination of both.
// Ties go to the lowest name in alphabetical order. Trips with an unknown station are not counted
func StationStats(ds *dataset.Dataset) (*StationReport, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	startStationCounter := tripcounter.NewTripCounter[string](cmp.Less[string])
	endStationCounter := tripcounter.NewTripCounter[string](cmp.Less[string])
	routeCounter := tripcounter.NewTripCounter[trip.Route](trip.Route.Less)

	for _, tripData := range ds.Trips() {
		if tripData.StartStation != "" {
			startStationCounter.UpdateCounter(tripData.StartStation)
		}
		if tripData.EndStation != "" {
			endStationCounter.UpdateCounter(tripData.EndStation)
		}
		if tripData.StartStation != "" && tripData.EndStation != "" {
			routeCounter.UpdateCounter(tripData.Route())
		}
	}

	topStartStation, okStart := startStationCounter.Top()
	topEndStation, okEnd := endStationCounter.Top()
	topRoute, okRoute := routeCounter.Top()
	if !okStart || !okEnd || !okRoute {
		return nil, ErrEmptyDataset
	}

	return &StationReport{
		TopStartStation: topStartStation,
		TopEndStation:   topEndStation,
		TopRoute:        topRoute,
	}, nil
}
