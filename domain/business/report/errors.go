package report

import "errors"

var ErrEmptyDataset = errors.New("no data for selection")
