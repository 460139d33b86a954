package report

import (
	"cmp"

	"bikeshare/dataset"
	"bikeshare/domain/business/tripcounter"
)

// BirthYearSummary earliest, most recent and most common year of birth
type BirthYearSummary struct {
	Earliest   int                    `json:"earliest"`
	MostRecent int                    `json:"most_recent"`
	MostCommon tripcounter.Count[int] `json:"most_common"`
}

// UserReport user demographics.
// + UserTypes: trips per user type, highest first
// + Genders: trips per gender, highest first. Nil if the dataset has no gender column
// + BirthYear: nil if the dataset has no birth year column or no trip has a birth year
type UserReport struct {
	UserTypes []tripcounter.Count[string] `json:"user_types"`
	Genders   []tripcounter.Count[string] `json:"genders,omitempty"`
	BirthYear *BirthYearSummary           `json:"birth_year,omitempty"`
}

// UserDemographics counts trips by user type and gender and summarizes the birth years.
// Empty cells are not counted
func UserDemographics(ds *dataset.Dataset) (*UserReport, error) {
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	schema := ds.Schema()
	userTypeCounter := tripcounter.NewTripCounter[string](cmp.Less[string])
	genderCounter := tripcounter.NewTripCounter[string](cmp.Less[string])
	birthYearCounter := tripcounter.NewTripCounter[int](cmp.Less[int])

	var birthYear BirthYearSummary
	for _, tripData := range ds.Trips() {
		if tripData.UserType != "" {
			userTypeCounter.UpdateCounter(tripData.UserType)
		}

		if schema.HasGender() && tripData.Gender != "" {
			genderCounter.UpdateCounter(tripData.Gender)
		}

		if schema.HasBirthYear() && tripData.HasBirthYear() {
			if birthYearCounter.Len() == 0 || tripData.BirthYear < birthYear.Earliest {
				birthYear.Earliest = tripData.BirthYear
			}
			if birthYearCounter.Len() == 0 || tripData.BirthYear > birthYear.MostRecent {
				birthYear.MostRecent = tripData.BirthYear
			}
			birthYearCounter.UpdateCounter(tripData.BirthYear)
		}
	}

	userReport := &UserReport{
		UserTypes: userTypeCounter.Counts(),
	}

	if schema.HasGender() {
		userReport.Genders = genderCounter.Counts()
	}

	if mostCommon, ok := birthYearCounter.Top(); ok {
		birthYear.MostCommon = mostCommon
		userReport.BirthYear = &birthYear
	}

	return userReport, nil
}
