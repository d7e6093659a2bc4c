package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lgbarn/chess-match-go/internal/engine"
	"github.com/lgbarn/chess-match-go/internal/render"
)

// Run plays match in the alternate screen until the user quits or ctx ends.
func Run(ctx context.Context, match *engine.Match, opts render.Options, showMoves bool) error {
	p := tea.NewProgram(NewModel(match, opts, showMoves), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
