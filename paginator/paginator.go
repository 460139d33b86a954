package paginator

import (
	"bikeshare/dataset"
)

// PageSize amount of raw rows shown per request
const PageSize = 5

// Field column name and raw value of a row
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Row raw row of the dataset. Fields keep the column order of the dataset
type Row []Field

// Get returns the value of the column key. The second value is false if the row has no such column
func (r Row) Get(key string) (string, bool) {
	for _, field := range r {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// NextPage returns up to PageSize rows starting at offset and the offset of the following page.
// Once offset reaches the end of the dataset the page is empty and the offset does not move
func NextPage(ds *dataset.Dataset, offset int) ([]Row, int) {
	if offset < 0 {
		offset = 0
	}
	if offset >= ds.Len() {
		return nil, offset
	}

	columns := ds.Columns()
	records := ds.Rows(offset, offset+PageSize)
	page := make([]Row, len(records))
	for i, record := range records {
		row := make(Row, len(columns))
		for j, column := range columns {
			row[j] = Field{Key: column, Value: record[j]}
		}
		page[i] = row
	}

	return page, offset + len(page)
}

// Paginator cursor over the raw rows of a dataset
type Paginator struct {
	dataset *dataset.Dataset
	offset  int
}

func NewPaginator(ds *dataset.Dataset) *Paginator {
	return &Paginator{dataset: ds}
}

// Next returns the following page, empty once every row was returned
func (p *Paginator) Next() []Row {
	var page []Row
	page, p.offset = NextPage(p.dataset, p.offset)
	return page
}

// Done returns true if every row was returned
func (p *Paginator) Done() bool {
	return p.offset >= p.dataset.Len()
}
