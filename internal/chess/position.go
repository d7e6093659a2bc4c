package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-match-go/internal/errors"
)

// Position is a 0-indexed (row, column) coordinate. Row 0 is rank 8.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Offset returns the position shifted by dr rows and dc columns.
// The result may lie off the board; the Board decides validity.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns the algebraic name of the position on a standard board ("e2").
func (p Position) String() string {
	if p.Row < 0 || p.Row >= BoardSize || p.Col < 0 || p.Col >= BoardSize {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	file, rank := p.Square()
	return fmt.Sprintf("%c%d", file, rank)
}

// Square returns the file letter and rank number of the position.
func (p Position) Square() (file byte, rank int) {
	return byte(FileBase + p.Col), BoardSize - p.Row
}

// FromSquare converts a file letter and rank number to a position.
func FromSquare(file byte, rank int) (Position, error) {
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	if file < FileBase || file >= FileBase+BoardSize || rank < RankBase || rank >= RankBase+BoardSize {
		return Position{}, fmt.Errorf("square %c%d: %w", file, rank, errors.ErrInvalidPosition)
	}
	return Position{Row: BoardSize - rank, Col: int(file - FileBase)}, nil
}

// ParseSquare parses algebraic notation such as "e2" into a position.
func ParseSquare(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 || s[1] < '0' || s[1] > '9' {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidPosition)
	}
	return FromSquare(s[0], int(s[1]-'0'))
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed tables and tests.
func MustParseSquare(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}
