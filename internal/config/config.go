// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"

	"github.com/btcbacked/collateral-calc/pkg/constants"
)

// Configuration holds all configuration for collateral-calc.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Preset  *Preset       `yaml:"preset,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, csv
	Language string `yaml:"language,omitempty"` // BCP-47 tag, e.g. en, uk
}

// ServerConfig holds runtime parameters for the HTTP server.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// Preset seeds the calculator at startup with a saved scenario. Entries are
// applied through the normal add paths so every invariant (validation, period
// clamping) holds for preset data exactly as it does for user input.
type Preset struct {
	DurationMonths int              `yaml:"durationMonths,omitempty"`
	Positions      []PresetPosition `yaml:"positions,omitempty"`
	Rates          []PresetRate     `yaml:"rates,omitempty"`
	Prices         []string         `yaml:"prices,omitempty"`
}

// PresetPosition is one preset loan position.
type PresetPosition struct {
	Principal  string `yaml:"principal"`
	Collateral string `yaml:"collateral"`
}

// PresetRate is one preset rate period.
type PresetRate struct {
	Rate   string `yaml:"rate"`
	Period string `yaml:"period"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error; defaults are returned
// so the calculator can start empty.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := &Configuration{
		Server: ServerConfig{Address: constants.DefaultServerAddress},
	}

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return configuration, nil
		}
		return nil, fmt.Errorf("error checking config file, %s", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := v.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if configuration.Server.Address == "" {
		configuration.Server.Address = constants.DefaultServerAddress
	}

	return configuration, nil
}
