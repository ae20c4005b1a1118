// Package config provides layered configuration for the command line tool.
//
// Values are resolved in this order, later sources winning:
//  1. built-in defaults
//  2. a TOML file (--config, or the nearest remapper.toml above the working directory)
//  3. a .env file (existing environment variables are never overridden by it)
//  4. REMAPPER_* environment variables
//  5. command-line flags (applied by the caller)
package config

import (
	"fmt"
	"slices"
	"strings"
)

// FileName is the configuration file searched for when no path is given.
const FileName = "remapper.toml"

// EnvPrefix is the prefix of every environment variable.
const EnvPrefix = "REMAPPER"

// Config holds all configuration.
// Environment names are derived from the envconfig tags, e.g.
// REMAPPER_PIPELINE_WORKERS.
type Config struct {
	// Pipeline controls how stages run.
	Pipeline PipelineConfig `toml:"pipeline" envconfig:"PIPELINE"`

	// Log controls logger construction.
	Log LogConfig `toml:"log" envconfig:"LOG"`

	// Output controls terminal rendering.
	Output OutputConfig `toml:"output" envconfig:"OUTPUT"`
}

// PipelineConfig holds pipeline settings.
type PipelineConfig struct {
	// Workers is the number of goroutines per stage. 0 or 1 is sequential.
	// Env: REMAPPER_PIPELINE_WORKERS (default: 1)
	Workers int `toml:"workers" envconfig:"WORKERS"`

	// Coalesce merges overlapping intervals between stages.
	// Env: REMAPPER_PIPELINE_COALESCE (default: false)
	Coalesce bool `toml:"coalesce" envconfig:"COALESCE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the zap level name.
	// Env: REMAPPER_LOG_LEVEL (default: warn)
	Level string `toml:"level" envconfig:"LEVEL"`

	// Format is console or json.
	// Env: REMAPPER_LOG_FORMAT (default: console)
	Format string `toml:"format" envconfig:"FORMAT"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	// Color is auto, on or off.
	// Env: REMAPPER_OUTPUT_COLOR (default: auto)
	Color string `toml:"color" envconfig:"COLOR"`

	// Format is the default report format.
	// Env: REMAPPER_OUTPUT_FORMAT (default: text)
	Format string `toml:"format" envconfig:"FORMAT"`
}

// Colour modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pipeline: PipelineConfig{Workers: 1},
		Log:      LogConfig{Level: "warn", Format: LogFormatConsole},
		Output:   OutputConfig{Color: ColorAuto, Format: "text"},
	}
}

// Validate rejects values no component accepts.
func (c Config) Validate() error {
	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("pipeline.workers must not be negative, got %d", c.Pipeline.Workers)
	}

	if !slices.Contains([]string{LogFormatConsole, LogFormatJSON}, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.Log.Format)
	}

	if !slices.Contains([]string{ColorAuto, ColorOn, ColorOff}, strings.ToLower(c.Output.Color)) {
		return fmt.Errorf("output.color must be auto, on or off, got %q", c.Output.Color)
	}

	return nil
}

// UseColor resolves the colour mode; isTerminal is consulted only for auto.
func (c Config) UseColor(isTerminal bool) bool {
	switch strings.ToLower(c.Output.Color) {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return isTerminal
	}
}
