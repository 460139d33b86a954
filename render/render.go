// Package render writes the reports and the raw rows for a person reading a terminal.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"bikeshare/domain/business/report"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/station"
	"bikeshare/paginator"
)

var separator = strings.Repeat("-", 40)

// Header writes the title of a statistics section
func Header(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s...\n\n", title)
}

// Footer closes a statistics section. A negative elapsed time is not shown
func Footer(w io.Writer, elapsed time.Duration) {
	if elapsed >= 0 {
		fmt.Fprintf(w, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	}
	fmt.Fprintln(w, separator)
}

// Error writes why a section could not be computed
func Error(w io.Writer, err error) {
	if errors.Is(err, report.ErrEmptyDataset) {
		fmt.Fprintln(w, "No data for selection.")
		return
	}
	fmt.Fprintf(w, "Could not compute statistics: %s\n", err.Error())
}

func TravelTime(w io.Writer, travelTime *report.TravelTimeReport) {
	fmt.Fprintf(w, "Most common month: %s (%d trips)\n", travelTime.MostCommonMonth.Value, travelTime.MostCommonMonth.Counter)
	fmt.Fprintf(w, "Most common day: %s (%d trips)\n", travelTime.MostCommonWeekday.Value, travelTime.MostCommonWeekday.Counter)
	fmt.Fprintf(w, "Most common start hour: %d (%d trips)\n", travelTime.MostCommonStartHour.Value, travelTime.MostCommonStartHour.Counter)
}

// Stations writes the station report. The distance of the top route is shown when the catalog knows both stations
func Stations(w io.Writer, stations *report.StationReport, catalog station.Catalog) {
	fmt.Fprintf(w, "Most commonly used start station: %s (%d trips)\n", stations.TopStartStation.Value, stations.TopStartStation.Counter)
	fmt.Fprintf(w, "Most commonly used end station: %s (%d trips)\n", stations.TopEndStation.Value, stations.TopEndStation.Counter)

	route := stations.TopRoute.Value
	fmt.Fprintf(w, "\nMost frequent combination of start and end station:\n%s -> %s (%d trips)\n", route.StartStation, route.EndStation, stations.TopRoute.Counter)
	if distance, ok := catalog.Distance(route); ok {
		fmt.Fprintf(w, "Distance between stations: %.2f km\n", distance)
	}
}

func Duration(w io.Writer, duration *report.DurationReport) {
	fmt.Fprintf(w, "Total travel time: %s seconds (%s)\n", formatSeconds(duration.TotalDuration), toDuration(duration.TotalDuration))
	fmt.Fprintf(w, "Mean travel time: %s seconds (%s)\n", formatSeconds(duration.MeanDuration), toDuration(duration.MeanDuration))
}

func Users(w io.Writer, users *report.UserReport) error {
	fmt.Fprintln(w, "Number of User Types:")
	if err := counts(w, users.UserTypes); err != nil {
		return err
	}

	if users.Genders != nil {
		fmt.Fprintln(w, "\nNumber of Genders:")
		if err := counts(w, users.Genders); err != nil {
			return err
		}
	}

	if users.BirthYear != nil {
		fmt.Fprintf(w, "\nEarliest year of birth: %d\n", users.BirthYear.Earliest)
		fmt.Fprintf(w, "Most recent year of birth: %d\n", users.BirthYear.MostRecent)
		fmt.Fprintf(w, "Most common year of birth: %d\n", users.BirthYear.MostCommon.Value)
	}
	return nil
}

// Rows writes every row as an indented block of "column: value" lines, in column order
func Rows(w io.Writer, page []paginator.Row) error {
	for _, row := range page {
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, field := range row {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: field.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Value: field.Value},
			)
		}

		block, err := yaml.Marshal(node)
		if err != nil {
			return fmt.Errorf("error rendering row: %w", err)
		}

		fmt.Fprintln(w, "{")
		for _, line := range strings.Split(strings.TrimRight(string(block), "\n"), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w, "}")
	}
	return nil
}

func counts(w io.Writer, values []tripcounter.Count[string]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 4, ' ', 0)
	for _, value := range values {
		fmt.Fprintf(tw, "%s\t%d\n", value.Value, value.Counter)
	}
	return tw.Flush()
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

func toDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second)).Round(time.Second)
}
