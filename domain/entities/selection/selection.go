package selection

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bikeshare/utils"
)

// All disables the month or day filter
const All = "all"

const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	Washington  = "washington"
)

var (
	Cities = []string{Chicago, NewYorkCity, Washington}
	// Months only covers the range present in the datasets
	Months = []string{"january", "february", "march", "april", "may", "june"}
	Days   = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	titleCaser = cases.Title(language.English)
)

// Selection filter chosen by the user
// + City: one of Cities
// + Month: one of Months or All
// + Day: one of Days or All
type Selection struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// New validates the three values and returns the normalized Selection
func New(city string, month string, day string) (Selection, error) {
	var err error
	sel := Selection{}
	if sel.City, err = ParseCity(city); err != nil {
		return Selection{}, err
	}
	if sel.Month, err = ParseMonth(month); err != nil {
		return Selection{}, err
	}
	if sel.Day, err = ParseDay(day); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

// ParseCity matches the input against the known cities, ignoring case and surrounding spaces
func ParseCity(input string) (string, error) {
	city := normalize(input)
	if !utils.ContainsString(city, Cities) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCity, input)
	}
	return city, nil
}

// ParseMonth accepts January to June or "all"
func ParseMonth(input string) (string, error) {
	month := normalize(input)
	if month != All && !utils.ContainsString(month, Months) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, input)
	}
	return month, nil
}

// ParseDay accepts any weekday name or "all"
func ParseDay(input string) (string, error) {
	day := normalize(input)
	if day != All && !utils.ContainsString(day, Days) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDay, input)
	}
	return day, nil
}

// MonthIndex returns the 1-based calendar month of the selection, 0 when every month is selected
func (s Selection) MonthIndex() int {
	return utils.IndexOfString(s.Month, Months) + 1
}

// DayName returns the title-cased day of the selection, "" when every day is selected
func (s Selection) DayName() string {
	if s.Day == All || s.Day == "" {
		return ""
	}
	return Title(s.Day)
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", Title(s.City), Title(s.Month), Title(s.Day))
}

// Title title-cases names such as "new york city" or "monday"
func Title(value string) string {
	return titleCaser.String(value)
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
