package config

import (
	"fmt"

	"github.com/lgbarn/chess-match-go/internal/engine"
	"github.com/lgbarn/chess-match-go/internal/errors"
)

// Interface names.
const (
	InterfaceTUI   = "tui"
	InterfacePlain = "plain"
)

// GameConfig holds settings for starting and recording a match.
type GameConfig struct {
	// StartFEN is an optional piece placement to start from
	StartFEN string `yaml:"start_fen"`

	// Interface selects the bubbletea UI or the line-based console
	Interface string `yaml:"interface"`

	// SVGOut, if set, receives an SVG of the final position
	SVGOut string `yaml:"svg_out"`
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Interface: InterfaceTUI,
	}
}

// Validate checks the interface name and parses StartFEN if set.
func (g *GameConfig) Validate() error {
	switch g.Interface {
	case InterfaceTUI, InterfacePlain:
	default:
		return fmt.Errorf("unknown interface %q: %w", g.Interface, errors.ErrInvalidConfig)
	}
	if g.StartFEN != "" {
		if _, _, err := engine.ParsePlacements(g.StartFEN); err != nil {
			return fmt.Errorf("start_fen: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}
