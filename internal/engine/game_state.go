package engine

import "github.com/lgbarn/chess-match-go/internal/chess"

// Turn returns the current turn number, starting at 1.
func (m *Match) Turn() uint { return m.turn }

// ActiveColour returns the colour on move.
func (m *Match) ActiveColour() chess.Colour { return m.active }

// Finished reports whether the match ended in checkmate.
func (m *Match) Finished() bool { return m.finished }

// InCheck reports whether the opponent of the last mover is in check. Once
// the match is finished that is the opponent of ActiveColour.
func (m *Match) InCheck() bool { return m.inCheck }

// Winner returns the colour that delivered checkmate, if the match is finished.
func (m *Match) Winner() (chess.Colour, bool) {
	if !m.finished {
		return 0, false
	}
	return m.active, true
}

// PieceAt returns a copy of the piece at pos.
func (m *Match) PieceAt(pos chess.Position) (chess.Piece, bool) {
	p := m.board.PieceAt(pos)
	if p == nil {
		return chess.Piece{}, false
	}
	return *p, true
}

// CapturedPieces returns copies of the captured pieces of colour.
func (m *Match) CapturedPieces(colour chess.Colour) []chess.Piece {
	var out []chess.Piece
	for _, p := range m.pieces {
		if p.Colour == colour && m.captured[p.ID] {
			out = append(out, *p)
		}
	}
	return out
}

// PiecesInPlay returns copies of the pieces of colour still on the board.
func (m *Match) PiecesInPlay(colour chess.Colour) []chess.Piece {
	var out []chess.Piece
	for _, p := range m.inPlay(colour) {
		out = append(out, *p)
	}
	return out
}

// inPlay returns all registered pieces of colour minus the captured ones.
// It is recomputed on each call rather than maintained incrementally.
func (m *Match) inPlay(colour chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range m.pieces {
		if p.Colour == colour && !m.captured[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// Snapshot is a read-only copy of the match state for presentation.
type Snapshot struct {
	ID           string
	Turn         uint
	ActiveColour chess.Colour
	Finished     bool
	InCheck      bool
	Rows         int
	Cols         int

	// Cells holds a copy of each occupant, nil for empty cells.
	Cells    [][]*chess.Piece
	Captured map[chess.Colour][]chess.Piece
}

// Snapshot copies the current board and match flags.
func (m *Match) Snapshot() Snapshot {
	rows, cols := m.board.Dimensions()
	s := Snapshot{
		ID:           m.id,
		Turn:         m.turn,
		ActiveColour: m.active,
		Finished:     m.finished,
		InCheck:      m.inCheck,
		Rows:         rows,
		Cols:         cols,
		Cells:        make([][]*chess.Piece, rows),
		Captured:     make(map[chess.Colour][]chess.Piece, 2),
	}
	for r := 0; r < rows; r++ {
		s.Cells[r] = make([]*chess.Piece, cols)
		for c := 0; c < cols; c++ {
			if p := m.board.PieceAt(chess.Pos(r, c)); p != nil {
				cp := *p
				s.Cells[r][c] = &cp
			}
		}
	}
	for _, colour := range chess.Colours {
		s.Captured[colour] = m.CapturedPieces(colour)
	}
	return s
}

// PieceAt returns the snapshot occupant of pos, or nil.
func (s Snapshot) PieceAt(pos chess.Position) *chess.Piece {
	if pos.Row < 0 || pos.Row >= s.Rows || pos.Col < 0 || pos.Col >= s.Cols {
		return nil
	}
	return s.Cells[pos.Row][pos.Col]
}

// Winner returns the colour that delivered checkmate, if the match is finished.
func (s Snapshot) Winner() (chess.Colour, bool) {
	if !s.Finished {
		return 0, false
	}
	return s.ActiveColour, true
}
