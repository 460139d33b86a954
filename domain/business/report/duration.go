package report

import (
	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
)

// DurationReport total and average trip duration, in seconds
type DurationReport struct {
	Trips         int     `json:"trips"`
	TotalDuration float64 `json:"total_duration"`
	MeanDuration  float64 `json:"mean_duration"`
}

func DurationStats(ds *dataset.Dataset) (*DurationReport, error) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range ds.Trips() {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	meanDuration, err := accumulator.GetAverageDuration()
	if err != nil {
		return nil, ErrEmptyDataset
	}

	return &DurationReport{
		Trips:         accumulator.Counter,
		TotalDuration: accumulator.GetTotalDuration(),
		MeanDuration:  meanDuration,
	}, nil
}
