package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-match-go/internal/errors"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// LogConfig holds settings for the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is console or json.
	Format string `yaml:"format"`

	// File, if set, receives log output in addition to stderr.
	File string `yaml:"file"`

	// Quiet disables the stderr sink.
	Quiet bool `yaml:"quiet"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "warn",
		Format: LogFormatConsole,
	}
}

// Validate checks the level and format names.
func (l *LogConfig) Validate() error {
	if !contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("unknown log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch l.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
