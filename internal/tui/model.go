// Package tui is the interactive bubbletea front end for a match.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chess-match-go/internal/chess"
	"github.com/lgbarn/chess-match-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-match-go/internal/errors"
	"github.com/lgbarn/chess-match-go/internal/render"
)

// Model drives one match with a cursor: the first selection picks the
// origin and highlights its moves, the second picks the destination.
type Model struct {
	match     *engine.Match
	opts      render.Options
	showMoves bool

	cursor   chess.Position
	selected *chess.Position
	moves    engine.MoveMatrix

	message string
	width   int
}

// NewModel creates a model for match. The cursor starts on the e2 square of
// the mover's side. With showMoves the selected piece's moves are highlighted.
func NewModel(match *engine.Match, opts render.Options, showMoves bool) Model {
	cursor := chess.MustParseSquare("e2")
	if match.ActiveColour() == chess.Black {
		cursor = chess.MustParseSquare("e7")
	}
	return Model{
		match:     match,
		opts:      opts,
		showMoves: showMoves,
		cursor:    cursor,
		message:   "arrows move, enter selects, esc cancels, q quits",
	}
}

// Match returns the match being played.
func (m Model) Match() *engine.Match { return m.match }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.deselect()
			return m, nil
		case "up", "k":
			m.moveCursor(-1, 0)
		case "down", "j":
			m.moveCursor(1, 0)
		case "left", "h":
			m.moveCursor(0, -1)
		case "right", "l":
			m.moveCursor(0, 1)
		case "enter", " ":
			m.choose()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	next := m.cursor.Offset(dr, dc)
	if next.Row < 0 || next.Row >= chess.BoardSize || next.Col < 0 || next.Col >= chess.BoardSize {
		return
	}
	m.cursor = next
}

func (m *Model) deselect() {
	m.selected = nil
	m.moves = nil
}

// choose handles enter on the cursor square.
func (m *Model) choose() {
	if m.match.Finished() {
		return
	}
	if m.selected == nil {
		m.selectOrigin()
		return
	}
	if *m.selected == m.cursor {
		m.deselect()
		m.message = "selection cleared"
		return
	}

	from, to := *m.selected, m.cursor
	if err := m.match.ValidateDestination(from, to); err != nil {
		m.message = describe(err)
		return
	}
	mover := m.match.ActiveColour()
	captured, err := m.match.PerformMove(from, to)
	m.deselect()
	if err != nil {
		m.message = describe(err)
		return
	}
	m.message = fmt.Sprintf("%s %v-%v", mover, from, to)
	if captured != nil {
		m.message += fmt.Sprintf(" captures %s", captured.Kind)
	}
}

func (m *Model) selectOrigin() {
	pos := m.cursor
	if err := m.match.ValidateOrigin(pos); err != nil {
		m.message = describe(err)
		return
	}
	moves, err := m.match.PossibleMovesAt(pos)
	if err != nil {
		m.message = describe(err)
		return
	}
	m.selected = &pos
	m.moves = moves
	m.message = fmt.Sprintf("origin %v: choose a destination", pos)
}

// describe turns a rule violation into a short prompt line.
func describe(err error) string {
	switch {
	case errors.Is(err, chesserrors.ErrEmptyOrigin):
		return "there is no piece on that square"
	case errors.Is(err, chesserrors.ErrWrongOwner):
		return "that piece is not yours"
	case errors.Is(err, chesserrors.ErrNoLegalMove):
		return "that piece has no possible moves"
	case errors.Is(err, chesserrors.ErrIllegalDestination):
		return "that piece cannot move there"
	case errors.Is(err, chesserrors.ErrSelfCheck):
		return "you cannot put yourself in check"
	case errors.Is(err, chesserrors.ErrMatchFinished):
		return "the match is over"
	default:
		return err.Error()
	}
}

func (m Model) View() string {
	opts := m.opts
	cursor := m.cursor
	opts.Cursor = &cursor
	opts.Selected = m.selected
	if m.showMoves {
		opts.Highlight = m.moves
	}

	screen := render.Screen(m.match.Snapshot(), opts)
	if m.width > 0 {
		screen = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, screen)
	}

	var b strings.Builder
	b.WriteString(screen)
	b.WriteByte('\n')

	line := m.message
	if m.match.Finished() {
		line = "press q to quit"
	}
	if m.opts.Colour {
		line = lipgloss.NewStyle().Faint(true).Render(line)
	}
	b.WriteString(line)
	b.WriteByte('\n')
	return b.String()
}
