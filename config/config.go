// SPDX-License-Identifier: MIT
// Package config loads the terminal front-end's settings from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvRows        = "GRIDPATH_ROWS"
	EnvCols        = "GRIDPATH_COLS"
	EnvStepDelay   = "GRIDPATH_STEP_DELAY"
	EnvLogFile     = "GRIDPATH_LOG_FILE"
	EnvLogLevel    = "GRIDPATH_LOG_LEVEL"
	EnvMetricsAddr = "GRIDPATH_METRICS_ADDR"
)

// Defaults applied when a variable is unset.
const (
	DefaultRows      = 25
	DefaultCols      = 25
	DefaultStepDelay = 15 * time.Millisecond
	DefaultLogFile   = "gridpath.log"
)

// ErrInvalidValue indicates an environment variable that is set but cannot
// be used.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the front-end configuration.
type Config struct {
	Rows        int           // grid rows
	Cols        int           // grid columns
	StepDelay   time.Duration // pause after each expansion while animating
	LogFile     string        // destination of structured logs; "-" for stderr
	LogLevel    slog.Level    // minimum log level
	MetricsAddr string        // listen address for /metrics; empty disables it
}

// Load reads an optional .env file (or the given files) into the process
// environment and then builds a Config. A missing .env file is not an error;
// a malformed value is, wrapped as ErrInvalidValue and naming the variable.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	var (
		cfg Config
		err error
	)
	if cfg.Rows, err = getEnvAsPositiveInt(EnvRows, DefaultRows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = getEnvAsPositiveInt(EnvCols, DefaultCols); err != nil {
		return Config{}, err
	}
	if cfg.StepDelay, err = getEnvAsDuration(EnvStepDelay, DefaultStepDelay); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = getEnvAsLevel(EnvLogLevel, slog.LevelInfo); err != nil {
		return Config{}, err
	}
	cfg.LogFile = getEnvWithDefault(EnvLogFile, DefaultLogFile)
	cfg.MetricsAddr = getEnvWithDefault(EnvMetricsAddr, "")

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or
// returns defaultValue if it is unset or blank.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsPositiveInt(key string, defaultValue int) (int, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidValue, key, raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s=%d must be positive", ErrInvalidValue, key, v)
	}
	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q must be a duration such as 15ms", ErrInvalidValue, key, raw)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s=%s must not be negative", ErrInvalidValue, key, d)
	}
	return d, nil
}

func getEnvAsLevel(key string, defaultValue slog.Level) (slog.Level, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("%w: %s=%q must be debug, info, warn or error", ErrInvalidValue, key, raw)
	}
	return lvl, nil
}
