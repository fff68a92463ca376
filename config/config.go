// Package config handles planner configuration from a dotenv file, an
// optional YAML file, and environment variables, with defaults that
// reproduce the reference behavior (test_task_data.csv, ';' delimiter,
// circuit starting at the first station in sorted order).
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultTimetablePath is the timetable file read when nothing else
	// is configured.
	DefaultTimetablePath = "test_task_data.csv"

	// DefaultDelimiter separates fields in the timetable file.
	DefaultDelimiter = ';'

	// defaultConfigFile is probed when ROUNDTOUR_CONFIG is unset.
	defaultConfigFile = "roundtour.yml"
)

var (
	// ErrBadDelimiter indicates a configured delimiter that is not
	// exactly one character.
	ErrBadDelimiter = errors.New("config: delimiter must be a single character")

	// ErrNoTimetable indicates an empty timetable path.
	ErrNoTimetable = errors.New("config: timetable path must be non-empty")
)

// Config holds everything the planner binary needs.
type Config struct {
	// TimetablePath locates the delimited schedule file.
	TimetablePath string

	// Delimiter separates the six fields of a timetable line.
	Delimiter rune

	// Start optionally names the station the circuit begins at. Empty
	// means the first station in sorted order.
	Start string
}

// yamlConfig mirrors the optional roundtour.yml file.
type yamlConfig struct {
	Timetable string `yaml:"timetable"`
	Delimiter string `yaml:"delimiter"`
	Start     string `yaml:"start"`
}

// Load assembles the configuration. Precedence, lowest to highest:
// built-in defaults, the YAML file (ROUNDTOUR_CONFIG or ./roundtour.yml
// when present), then ROUNDTOUR_* environment variables. A .env file in
// the working directory is folded into the environment first; its
// absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TimetablePath: DefaultTimetablePath,
		Delimiter:     DefaultDelimiter,
	}

	if err := cfg.applyFile(getEnv("ROUNDTOUR_CONFIG", defaultConfigFile)); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.TimetablePath == "" {
		return ErrNoTimetable
	}

	return nil
}

// applyFile overlays values from a YAML file. A missing file is fine;
// an unreadable or malformed one is not.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("config: %w", err)
	}

	var y yamlConfig
	if err = yaml.Unmarshal(data, &y); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if y.Timetable != "" {
		c.TimetablePath = y.Timetable
	}
	if y.Start != "" {
		c.Start = y.Start
	}
	if y.Delimiter != "" {
		if c.Delimiter, err = parseDelimiter(y.Delimiter); err != nil {
			return err
		}
	}

	return nil
}

// applyEnv overlays ROUNDTOUR_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("ROUNDTOUR_TIMETABLE"); v != "" {
		c.TimetablePath = v
	}
	if v := os.Getenv("ROUNDTOUR_START"); v != "" {
		c.Start = v
	}
	if v := os.Getenv("ROUNDTOUR_DELIMITER"); v != "" {
		var err error
		if c.Delimiter, err = parseDelimiter(v); err != nil {
			return err
		}
	}

	return nil
}

// parseDelimiter accepts exactly one rune.
func parseDelimiter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: %q", ErrBadDelimiter, s)
	}

	return r, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
