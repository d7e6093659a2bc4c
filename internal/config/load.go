package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-match-go/internal/errors"
)

// Load reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(raw, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document does not set.
func Parse(raw []byte, cfg *Config) error {
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	return cfg.Validate()
}

// ApplyEnv overrides fields from CHESS_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("CHESS_LOG_LEVEL")); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv("CHESS_LOG_FORMAT")); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv("CHESS_LOG_FILE")); v != "" {
		c.Log.File = v
	}
	if v := strings.TrimSpace(getenv("CHESS_UNICODE")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Display.Unicode = b
		}
	}
	if v := strings.TrimSpace(getenv("CHESS_INTERFACE")); v != "" {
		c.Game.Interface = strings.ToLower(v)
	}
}
