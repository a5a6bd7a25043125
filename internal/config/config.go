// Package config provides configuration management for fileheader
// using Viper for flexible loading from files, environment variables,
// and command-line flags.
//
// Values resolve with the usual precedence: flags override FILEHEADER_
// environment variables, which override the .fileheader.yml config
// file, which overrides built-in defaults.
package config

import (
	"os"
	"runtime"
	"time"

	"github.com/conneroisu/fileheader/internal/errors"
	"github.com/spf13/viper"
)

type Config struct {
	// Root is the directory tree the commands operate on.
	Root string `mapstructure:"root" yaml:"root"`

	// License selects a catalog entry by SPDX identifier. Mutually
	// exclusive with HeaderFile.
	License string `mapstructure:"license" yaml:"license"`
	// Owner is the copyright holder substituted into license text.
	Owner string `mapstructure:"owner" yaml:"owner"`
	// Year is the copyright year substituted into license text.
	Year int `mapstructure:"year" yaml:"year"`

	// HeaderFile points at a file holding custom plain header text,
	// used instead of the license catalog.
	HeaderFile string `mapstructure:"header_file" yaml:"header_file"`
	// Pattern overrides the substring the checker searches for. With a
	// custom header file and no pattern, the first non-empty line of
	// the header text is used.
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
	// MaxLines bounds how many leading lines the checker inspects.
	MaxLines int `mapstructure:"max_lines" yaml:"max_lines"`

	// Workers is the scan worker count; mutation is always serial.
	Workers int `mapstructure:"workers" yaml:"workers"`

	// Include and Exclude are filepath.Match patterns filtering which
	// files the engines visit. Directories are always descended into.
	Include []string `mapstructure:"include" yaml:"include"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Root:     ".",
		Year:     time.Now().Year(),
		MaxLines: 10,
		Workers:  runtime.NumCPU(),
		Exclude:  []string{".git", "node_modules", "vendor"},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load unmarshals the current viper state into a Config, fills in
// defaults for unset values, and validates the result.
func Load() (*Config, error) {
	config := Default()
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.NewConfigError("unmarshal: " + err.Error())
	}

	// Viper leaves zero values in place for keys absent from every
	// source; restore defaults for the ones that must not be zero.
	defaults := Default()
	if config.Root == "" {
		config.Root = defaults.Root
	}
	if config.Year == 0 {
		config.Year = defaults.Year
	}
	if config.MaxLines == 0 {
		config.MaxLines = defaults.MaxLines
	}
	if config.Workers == 0 {
		config.Workers = defaults.Workers
	}
	if !viper.IsSet("exclude") && len(config.Exclude) == 0 {
		config.Exclude = defaults.Exclude
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}
	if config.Log.Format == "" {
		config.Log.Format = defaults.Log.Format
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for values the engines cannot run
// with.
func (c *Config) Validate() error {
	if c.Root == "" {
		return errors.NewValidationError("root", "must not be empty")
	}
	if info, err := os.Stat(c.Root); err != nil {
		return errors.NewValidationError("root", err.Error())
	} else if !info.IsDir() {
		return errors.NewValidationError("root", c.Root+" is not a directory")
	}
	if c.Workers < 1 {
		return errors.NewValidationError("workers", "must be at least 1")
	}
	if c.MaxLines < 1 {
		return errors.NewValidationError("max_lines", "must be at least 1")
	}
	if c.License != "" && c.HeaderFile != "" {
		return errors.NewValidationError("license", "mutually exclusive with header_file")
	}

	return nil
}
