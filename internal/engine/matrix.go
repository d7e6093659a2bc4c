package engine

import "github.com/lgbarn/chess-match-go/internal/chess"

// MoveMatrix marks every cell a piece could pseudo-legally move to.
// A true cell means the move fits the piece's pattern and the board occupancy,
// without regard to whether it leaves the mover's own king in check.
type MoveMatrix [][]bool

// NewMoveMatrix allocates an all-false matrix of the given size.
func NewMoveMatrix(rows, cols int) MoveMatrix {
	m := make(MoveMatrix, rows)
	for r := range m {
		m[r] = make([]bool, cols)
	}
	return m
}

// Has reports whether pos is marked. Positions outside the matrix are never marked.
func (m MoveMatrix) Has(pos chess.Position) bool {
	if pos.Row < 0 || pos.Row >= len(m) || pos.Col < 0 || pos.Col >= len(m[pos.Row]) {
		return false
	}
	return m[pos.Row][pos.Col]
}

// Any reports whether at least one cell is marked.
func (m MoveMatrix) Any() bool {
	for _, row := range m {
		for _, ok := range row {
			if ok {
				return true
			}
		}
	}
	return false
}

// Count returns the number of marked cells.
func (m MoveMatrix) Count() int {
	n := 0
	for _, row := range m {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}

// Positions returns the marked cells in row-major order.
func (m MoveMatrix) Positions() []chess.Position {
	var out []chess.Position
	for r, row := range m {
		for c, ok := range row {
			if ok {
				out = append(out, chess.Pos(r, c))
			}
		}
	}
	return out
}

func (m MoveMatrix) mark(pos chess.Position) {
	m[pos.Row][pos.Col] = true
}
