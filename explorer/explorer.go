package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/station"
	"bikeshare/explorer/config"
	"bikeshare/paginator"
	"bikeshare/render"
)

const (
	notUnderstoodMessage = "I did not really understand that, try again"
	layout               = "------------------------------------------------"
)

const (
	cityQuestion    = "What city do you want to explore? Chicago, New York City or Washington?:  "
	monthQuestion   = "\nWhat month do you want to explore in %s?\n %s\n | January  | February  | March     | April     |\n %s\n | May      | June      | All       |           |\n %s\n ...  "
	dayQuestion     = "\nWhat day do you want to explore in %s?\n %s\n | Sunday   | Monday    | Tuesday   | Wednesday |\n %s\n | Thursday | Friday    | Saturday  | All       |\n %s\n ...  "
	rawDataQuestion = "\nWould you like to examine the particular user trip data? Type 'yes' or 'no'\n> "
	restartQuestion = "\nWould you like to restart? Enter yes or no.\n"
)

// Explorer interactive session: asks for a selection, shows its statistics and raw data, and starts again
type Explorer struct {
	config  *config.ExplorerConfig
	catalog station.Catalog
	scanner *bufio.Scanner
	out     io.Writer
}

func NewExplorer(explorerConfig *config.ExplorerConfig, catalog station.Catalog, in io.Reader, out io.Writer) *Explorer {
	return &Explorer{
		config:  explorerConfig,
		catalog: catalog,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the user does not want to restart or the input ends
func (e *Explorer) Run() error {
	fmt.Fprintln(e.out, "Hello! Let's explore some US bikeshare data!")
	for {
		sel, err := e.askSelection()
		if err != nil {
			return ignoreEOF(err)
		}

		err = e.explore(sel)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("[component: explorer][city: %s][method: Run][status: ERROR] %s", sel.City, err.Error())
			fmt.Fprintf(e.out, "\nCould not analyze %s: %s\n", selection.Title(sel.City), err.Error())
		}

		restart, err := e.askYes(restartQuestion)
		if err != nil {
			return ignoreEOF(err)
		}
		if !restart {
			return nil
		}
	}
}

// askSelection asks for city, month and day, repeating every question until the answer is valid
func (e *Explorer) askSelection() (selection.Selection, error) {
	city, err := e.ask(cityQuestion, selection.ParseCity)
	if err != nil {
		return selection.Selection{}, err
	}

	month, err := e.ask(fmt.Sprintf(monthQuestion, selection.Title(city), layout, layout, layout), selection.ParseMonth)
	if err != nil {
		return selection.Selection{}, err
	}

	day, err := e.ask(fmt.Sprintf(dayQuestion, selection.Title(month), layout, layout, layout), selection.ParseDay)
	if err != nil {
		return selection.Selection{}, err
	}

	fmt.Fprintln(e.out, strings.Repeat("-", 40))
	return selection.Selection{City: city, Month: month, Day: day}, nil
}

func (e *Explorer) ask(question string, parse func(string) (string, error)) (string, error) {
	for {
		answer, err := e.readAnswer(question)
		if err != nil {
			return "", err
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}
		log.Debugf("[component: explorer][method: ask][status: OK] invalid answer: %s", err.Error())
		fmt.Fprintln(e.out, notUnderstoodMessage)
	}
}

func (e *Explorer) askYes(question string) (bool, error) {
	answer, err := e.readAnswer(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}

func (e *Explorer) readAnswer(question string) (string, error) {
	fmt.Fprint(e.out, question)
	if !e.scanner.Scan() {
		if err := e.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return e.scanner.Text(), nil
}

// explore loads the dataset of the selection, shows every statistics section and then the raw data
func (e *Explorer) explore(sel selection.Selection) error {
	ds, err := dataset.Load(e.config.DataDir, sel)
	if err != nil {
		return err
	}
	log.Debugf("[component: explorer][city: %s][method: explore][status: OK] %v trips to analyze", ds.City(), ds.Len())

	e.section("Calculating The Most Frequent Times of Travel", func() error {
		travelTime, err := report.TravelTimeStats(ds)
		if err != nil {
			return err
		}
		render.TravelTime(e.out, travelTime)
		return nil
	})

	e.section("Calculating The Most Popular Stations and Trip", func() error {
		stations, err := report.StationStats(ds)
		if err != nil {
			return err
		}
		render.Stations(e.out, stations, e.catalog)
		return nil
	})

	e.section("Calculating Trip Duration", func() error {
		duration, err := report.DurationStats(ds)
		if err != nil {
			return err
		}
		render.Duration(e.out, duration)
		return nil
	})

	e.section("Calculating User Stats", func() error {
		users, err := report.UserDemographics(ds)
		if err != nil {
			return err
		}
		return render.Users(e.out, users)
	})

	return e.showRawData(ds)
}

// section runs one statistics section. A section that fails does not stop the following ones
func (e *Explorer) section(title string, compute func() error) {
	render.Header(e.out, title)
	start := time.Now()

	if err := compute(); err != nil {
		log.Debugf("[component: explorer][method: section][status: ERROR] %s: %s", title, err.Error())
		render.Error(e.out, err)
	}

	elapsed := time.Duration(-1)
	if e.config.ShowTiming {
		elapsed = time.Since(start)
	}
	render.Footer(e.out, elapsed)
}

// showRawData shows pages of raw rows while the user asks for them
func (e *Explorer) showRawData(ds *dataset.Dataset) error {
	rawData := paginator.NewPaginator(ds)
	for !rawData.Done() {
		more, err := e.askYes(rawDataQuestion)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		if err = render.Rows(e.out, rawData.Next()); err != nil {
			return err
		}
	}
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
