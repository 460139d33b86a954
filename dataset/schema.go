package dataset

import (
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// Schema optional columns available in a dataset. It is decided once, when the csv is read
type Schema struct {
	optionalColumns []string
}

func newSchema(columnNames []string) Schema {
	var optionalColumns []string
	for _, column := range trip.OptionalColumns {
		if utils.ContainsString(column, columnNames) {
			optionalColumns = append(optionalColumns, column)
		}
	}
	return Schema{optionalColumns: optionalColumns}
}

// Has returns true if the dataset contains the optional column
func (s Schema) Has(column string) bool {
	return utils.ContainsString(column, s.optionalColumns)
}

func (s Schema) HasGender() bool {
	return s.Has(trip.ColumnGender)
}

func (s Schema) HasBirthYear() bool {
	return s.Has(trip.ColumnBirthYear)
}
