package dataset

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
	"bikeshare/utils"
)

const (
	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"
)

// LoadStations reads a station catalog csv with name, latitude and longitude columns.
// An empty path returns an empty catalog
func LoadStations(path string) (station.Catalog, error) {
	if path == "" {
		return station.Catalog{}, nil
	}

	stationsFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening stations file: %w", err)
	}
	defer stationsFile.Close()

	frame := dataframe.ReadCSV(
		stationsFile,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if frame.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadingCSV, frame.Err.Error())
	}

	for _, column := range []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn} {
		if !utils.ContainsString(column, frame.Names()) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
		}
	}

	names := frame.Col(stationNameColumn).Records()
	latitudes := frame.Col(stationLatitudeColumn).Records()
	longitudes := frame.Col(stationLongitudeColumn).Records()

	stations := make([]station.StationData, len(names))
	for i := range names {
		latitude, err := strconv.ParseFloat(strings.TrimSpace(latitudes[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: latitude %q", ErrInvalidCoordinate, i+1, latitudes[i])
		}
		longitude, err := strconv.ParseFloat(strings.TrimSpace(longitudes[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: longitude %q", ErrInvalidCoordinate, i+1, longitudes[i])
		}
		stations[i] = station.StationData{Name: names[i], Latitude: latitude, Longitude: longitude}
	}

	log.Debugf("[component: loader][method: LoadStations][status: OK] %v stations read from %s", len(stations), path)
	return station.NewCatalog(stations), nil
}
