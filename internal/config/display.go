package config

import (
	"fmt"

	"github.com/lgbarn/chess-match-go/internal/errors"
)

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Unicode draws pieces as chess glyphs instead of letters
	Unicode bool `yaml:"unicode"`

	// ShowMoves highlights the move matrix of the selected piece
	ShowMoves bool `yaml:"show_moves"`

	// Colour enables ANSI styling of the text board
	Colour bool `yaml:"colour"`

	// SquareSize is the edge length of one square in SVG output
	SquareSize int `yaml:"square_size"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Unicode:    true,
		ShowMoves:  true,
		Colour:     true,
		SquareSize: 60,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.SquareSize < 8 {
		return fmt.Errorf("square size %d below minimum 8: %w", d.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
