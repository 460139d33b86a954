package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/explorer/config"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	configFilepath := flag.String("config", config.DefaultConfigFilepath, "path to the explorer config file")
	dataDir := flag.String("data-dir", "", "directory with the city csv files, overrides data_dir")
	logLevel := flag.String("log-level", "", "log level, overrides log_level")
	flag.Parse()

	explorerConfig, err := config.LoadConfig(*configFilepath)
	if err != nil {
		log.Fatalf("%s", err)
	}

	if *dataDir != "" {
		explorerConfig.DataDir = *dataDir
	}
	if *logLevel != "" {
		explorerConfig.LogLevel = *logLevel
	}

	if err = explorerConfig.Validate(); err != nil {
		log.Fatalf("%s", err)
	}

	if err = InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	catalog, err := dataset.LoadStations(explorerConfig.StationsFile)
	if err != nil {
		log.Fatalf("[component: explorer][method: main][status: ERROR] error loading stations: %s", err.Error())
	}

	explorer := NewExplorer(explorerConfig, catalog, os.Stdin, os.Stdout)
	if err = explorer.Run(); err != nil {
		log.Fatalf("[component: explorer][method: main][status: ERROR] %s", err.Error())
	}

	log.Debug("[component: explorer] finish main.go")
}
