package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const DefaultConfigFilepath = "./explorer/config/config.yaml"

// ExplorerConfig
// + DataDir: directory with the csv of each city
// + LogLevel: logrus level
// + StationsFile: optional csv with the coordinates of the stations
// + ShowTiming: shows how long each statistics section took
type ExplorerConfig struct {
	DataDir      string `yaml:"data_dir" validate:"required"`
	LogLevel     string `yaml:"log_level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	StationsFile string `yaml:"stations_file"`
	ShowTiming   bool   `yaml:"show_timing"`
}

func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	return &explorerConfig, nil
}

// Validate normalizes the log level and checks that every required field is set
func (ec *ExplorerConfig) Validate() error {
	ec.LogLevel = strings.ToLower(strings.TrimSpace(ec.LogLevel))
	if err := validator.New().Struct(ec); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}
	return nil
}
