package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListen     = ":8080"
	DefaultDbFilepath = "gridcalc.db"
	DefaultGridRows   = 100
	DefaultGridCols   = 100
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

type Config struct {
	Listen           string `yaml:"listen"`
	DatabaseFilepath string `yaml:"database_filepath"`
	DefaultRows      int    `yaml:"default_rows"`
	DefaultCols      int    `yaml:"default_cols"`
	LogLevel         string `yaml:"log_level"`
	LogFormat        string `yaml:"log_format"`
}

func DefaultConfig() Config {
	return Config{
		Listen:           DefaultListen,
		DatabaseFilepath: DefaultDbFilepath,
		DefaultRows:      DefaultGridRows,
		DefaultCols:      DefaultGridCols,
		LogLevel:         DefaultLogLevel,
		LogFormat:        DefaultLogFormat,
	}
}

// LoadConfig reads the YAML config at configPath and applies environment
// overrides on top. A missing file is not an error: defaults apply. An empty
// configPath skips the file entirely.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config, err
		}
		if err == nil {
			if err = yaml.Unmarshal(data, &config); err != nil {
				return config, fmt.Errorf("config %s: %w", configPath, err)
			}
		}
	}

	if listen := os.Getenv("GRIDCALC_LISTEN"); listen != "" {
		config.Listen = listen
	}
	if filepath := os.Getenv("DATABASE_FILEPATH"); filepath != "" {
		config.DatabaseFilepath = filepath
	}
	if level := os.Getenv("GRIDCALC_LOG_LEVEL"); level != "" {
		config.LogLevel = level
	}
	if format := os.Getenv("GRIDCALC_LOG_FORMAT"); format != "" {
		config.LogFormat = format
	}

	if err := ValidateDims(config.DefaultRows, config.DefaultCols); err != nil {
		return config, err
	}

	return config, nil
}
