// Package config provides configuration for chess-match.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
	Game    GameConfig    `yaml:"game"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	InputFile  io.Reader `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:        *NewLogConfig(),
		Display:    *NewDisplayConfig(),
		Game:       *NewGameConfig(),
		OutputFile: os.Stdout,
		InputFile:  os.Stdin,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetInput sets the reader used by the plain console interface.
func (c *Config) SetInput(r io.Reader) {
	c.InputFile = r
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}
