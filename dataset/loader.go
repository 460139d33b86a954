package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// CityData file of each city, relative to the data directory
var CityData = map[string]string{
	selection.Chicago:     "chicago.csv",
	selection.NewYorkCity: "new_york_city.csv",
	selection.Washington:  "washington.csv",
}

// weekdayNames English name of each time.Weekday
var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Load reads the csv of the selected city from dataDir and filters it by month and day
func Load(dataDir string, sel selection.Selection) (*Dataset, error) {
	filename, ok := CityData[sel.City]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, sel.City)
	}

	filePath := filepath.Join(dataDir, filename)
	dataFile, err := os.Open(filePath)
	if err != nil {
		log.Errorf("[component: loader][city: %s][method: Load][status: ERROR] error opening %s: %s", sel.City, filePath, err.Error())
		return nil, err
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("[component: loader][city: %s][method: Load][status: ERROR] error closing %s: %s", sel.City, filePath, err.Error())
		}
	}(dataFile)

	return LoadFrom(dataFile, sel)
}

// LoadFrom reads a city dataset from r and filters it by month and day
func LoadFrom(r io.Reader, sel selection.Selection) (*Dataset, error) {
	ds, err := read(r, sel.City)
	if err != nil {
		return nil, err
	}
	log.Debugf("[component: loader][city: %s][method: LoadFrom][status: OK] %v trips read", sel.City, ds.Len())

	filtered, err := ds.Filter(sel)
	if err != nil {
		return nil, err
	}
	log.Debugf("[component: loader][city: %s][method: LoadFrom][status: OK] %v trips match %s", filtered.City(), filtered.Len(), sel)

	return filtered, nil
}

// read parses the whole csv and adds the month and day_of_week columns
func read(r io.Reader, city string) (*Dataset, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadingCSV, err.Error())
	}

	frame := dataframe.ReadCSV(
		bytes.NewReader(content),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if frame.Err != nil {
		// gota refuses a csv without rows, but a header alone is a valid dataset with no trips
		frame, err = emptyFrame(content)
		if err != nil {
			return nil, err
		}
	}

	columnNames := frame.Names()
	for _, column := range trip.RequiredColumns {
		if !utils.ContainsString(column, columnNames) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
		}
	}

	startTimes := frame.Col(trip.ColumnStartTime).Records()
	months := make([]int, len(startTimes))
	days := make([]string, len(startTimes))
	for i, value := range startTimes {
		startTime, err := parseTime(value)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %q", ErrInvalidStartTime, i+1, value)
		}
		months[i] = int(startTime.Month())
		days[i] = weekdayNames[startTime.Weekday()]
	}

	frame = frame.
		Mutate(series.New(months, series.Int, trip.ColumnMonth)).
		Mutate(series.New(days, series.String, trip.ColumnDayOfWeek))
	if frame.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadingCSV, frame.Err.Error())
	}

	return newDataset(city, frame, newSchema(columnNames))
}

// emptyFrame builds a frame without rows from the header of content.
// Content with more than a header is a malformed csv
func emptyFrame(content []byte) (dataframe.DataFrame, error) {
	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrReadingCSV, err.Error())
	}
	if len(records) != 1 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: expected a header row", ErrReadingCSV)
	}

	columns := make([]series.Series, len(records[0]))
	for i, name := range records[0] {
		columns[i] = series.New([]string{}, series.String, name)
	}

	frame := dataframe.New(columns...)
	if frame.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrReadingCSV, frame.Err.Error())
	}
	return frame, nil
}
