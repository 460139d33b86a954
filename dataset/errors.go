package dataset

import "errors"

var (
	ErrUnknownCity       = errors.New("unknown city")
	ErrReadingCSV        = errors.New("error reading csv")
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidStartTime  = errors.New("invalid start time")
	ErrInvalidEndTime    = errors.New("invalid end time")
	ErrInvalidDuration   = errors.New("invalid trip duration")
	ErrInvalidBirthYear  = errors.New("invalid birth year")
	ErrInvalidCoordinate = errors.New("invalid station coordinate")
	ErrFilteringDataset  = errors.New("error filtering dataset")
)
