// Package render draws match snapshots as terminal text and SVG.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chess-match-go/internal/chess"
	"github.com/lgbarn/chess-match-go/internal/engine"
)

// Options controls how a board is drawn.
type Options struct {
	Unicode bool
	Colour  bool

	// Highlight marks destinations, usually the selected piece's move matrix.
	Highlight engine.MoveMatrix
	Selected  *chess.Position
	Cursor    *chess.Position
}

var glyphs = [2][chess.NumKinds]string{
	chess.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// Glyph returns the symbol for p: a chess glyph or its FEN letter.
func Glyph(p chess.Piece, unicode bool) string {
	if unicode {
		return glyphs[p.Colour][p.Kind]
	}
	return string(p.Letter())
}

var (
	lightStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#E9CFA3")).Foreground(lipgloss.Color("#000000"))
	darkStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#BB8860")).Foreground(lipgloss.Color("#000000"))
	highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("#6A9A4A")).Foreground(lipgloss.Color("#000000"))
	selectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#D9C53F")).Foreground(lipgloss.Color("#000000"))
	cursorStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#C0392B")).Foreground(lipgloss.Color("#FFFFFF"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Board renders the grid with rank 8 on top and file letters below.
func Board(s engine.Snapshot, opts Options) string {
	var b strings.Builder
	for r := 0; r < s.Rows; r++ {
		fmt.Fprintf(&b, "%d ", s.Rows-r)
		for c := 0; c < s.Cols; c++ {
			b.WriteString(cell(s, chess.Pos(r, c), opts))
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ")
	for c := 0; c < s.Cols; c++ {
		fmt.Fprintf(&b, " %c ", chess.FileBase+c)
	}
	b.WriteByte('\n')
	return b.String()
}

// cell returns a fixed-width 3-column cell. Without colour, the selected
// square is bracketed, highlighted squares are parenthesised and the cursor
// is shown with angle brackets.
func cell(s engine.Snapshot, pos chess.Position, opts Options) string {
	symbol := "-"
	if p := s.PieceAt(pos); p != nil {
		symbol = Glyph(*p, opts.Unicode)
	}

	isCursor := opts.Cursor != nil && *opts.Cursor == pos
	isSelected := opts.Selected != nil && *opts.Selected == pos
	isHighlight := opts.Highlight.Has(pos)

	if !opts.Colour {
		switch {
		case isCursor:
			return "<" + symbol + ">"
		case isSelected:
			return "[" + symbol + "]"
		case isHighlight:
			return "(" + symbol + ")"
		default:
			return " " + symbol + " "
		}
	}

	style := darkStyle
	switch {
	case isCursor:
		style = cursorStyle
	case isSelected:
		style = selectedStyle
	case isHighlight:
		style = highlightStyle
	case (pos.Row+pos.Col)%2 == 0:
		style = lightStyle
	}
	return style.Render(" " + symbol + " ")
}

// Status returns the captured pieces, the turn and the match state lines.
func Status(s engine.Snapshot, unicode bool) string {
	var b strings.Builder
	b.WriteString("Captured pieces:\n")
	for _, colour := range chess.Colours {
		fmt.Fprintf(&b, "%s: %s\n", colour, capturedList(s.Captured[colour], unicode))
	}
	fmt.Fprintf(&b, "Turn: %d\n", s.Turn)

	if winner, ok := s.Winner(); ok {
		fmt.Fprintf(&b, "CHECKMATE! Winner: %s\n", winner)
		return b.String()
	}
	fmt.Fprintf(&b, "Waiting for %s\n", s.ActiveColour)
	if s.InCheck {
		b.WriteString("CHECK!\n")
	}
	return b.String()
}

func capturedList(pieces []chess.Piece, unicode bool) string {
	symbols := make([]string, 0, len(pieces))
	for _, p := range pieces {
		symbols = append(symbols, Glyph(p, unicode))
	}
	return "[" + strings.Join(symbols, " ") + "]"
}

// Screen lays the board and the status side by side. Without colour the
// status is printed below the board with no border.
func Screen(s engine.Snapshot, opts Options) string {
	board := Board(s, opts)
	status := Status(s, opts.Unicode)
	if !opts.Colour {
		return board + "\n" + status
	}
	header := titleStyle.Render("chess-match")
	panel := boxStyle.Render(strings.TrimRight(status, "\n"))
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel) + "\n"
}
