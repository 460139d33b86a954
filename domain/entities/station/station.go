package station

import (
	"github.com/umahmood/haversine"

	"bikeshare/domain/entities/trip"
)

// StationData struct that contains the coordinates of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Catalog stations indexed by name. The zero value is an empty catalog
type Catalog map[string]StationData

func NewCatalog(stations []StationData) Catalog {
	catalog := make(Catalog, len(stations))
	for _, stationData := range stations {
		catalog[stationData.Name] = stationData
	}
	return catalog
}

// Distance returns the distance in km between both stations of the route.
// The second value is false if the catalog does not know one of them
func (c Catalog) Distance(route trip.Route) (float64, bool) {
	startStation, ok := c[route.StartStation]
	if !ok {
		return 0, false
	}
	endStation, ok := c[route.EndStation]
	if !ok {
		return 0, false
	}
	return calculateDistance(startStation, endStation), true
}

// calculateDistance returns the distance between two stations using haversine formula
func calculateDistance(startStation StationData, endStation StationData) float64 {
	station1 := haversine.Coord{Lat: startStation.Latitude, Lon: startStation.Longitude}
	station2 := haversine.Coord{Lat: endStation.Latitude, Lon: endStation.Longitude}

	_, km := haversine.Distance(station1, station2)
	return km
}
