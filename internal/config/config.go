// Package config loads farepath settings from a .env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel    = "FAREPATH_LOG_LEVEL"
	EnvLogFile     = "FAREPATH_LOG_FILE"
	EnvTimetable   = "FAREPATH_TIMETABLE"
	EnvMetricsFile = "FAREPATH_METRICS_FILE"
	EnvTimezone    = "FAREPATH_TZ"
	EnvMaxHops     = "FAREPATH_MAX_HOPS"
	EnvMaxDuration = "FAREPATH_MAX_DURATION"
)

// Config is the resolved runtime configuration.
//
// MaxHops and MaxDuration are defaults for query limits; nil means the limit
// is absent.
type Config struct {
	LogLevel    string
	LogFile     string
	Timetable   string // path to a YAML timetable; empty uses the embedded demo
	MetricsFile string // Prometheus textfile output; empty disables it
	Location    *time.Location
	MaxHops     *int
	MaxDuration *time.Duration
}

// Load reads .env (if present) into the environment and parses the settings.
func Load() (*Config, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv parses the settings through getenv, without touching the process
// environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		LogLevel:    getenvDefault(getenv, EnvLogLevel, "info"),
		LogFile:     strings.TrimSpace(getenv(EnvLogFile)),
		Timetable:   strings.TrimSpace(getenv(EnvTimetable)),
		MetricsFile: strings.TrimSpace(getenv(EnvMetricsFile)),
		Location:    time.Local,
	}

	if tz := strings.TrimSpace(getenv(EnvTimezone)); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTimezone, err)
		}
		cfg.Location = loc
	}

	if v := strings.TrimSpace(getenv(EnvMaxHops)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s: %q", EnvMaxHops, v)
		}
		cfg.MaxHops = &n
	}

	if v := strings.TrimSpace(getenv(EnvMaxDuration)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid %s: %q", EnvMaxDuration, v)
		}
		cfg.MaxDuration = &d
	}

	return cfg, nil
}

func getenvDefault(getenv func(string) string, k, def string) string {
	if v := strings.TrimSpace(getenv(k)); v != "" {
		return v
	}

	return def
}
