package chess

import (
	"fmt"

	"github.com/lgbarn/chess-match-go/internal/errors"
)

// Board is a fixed-size grid holding at most one piece per cell.
// It validates coordinates but knows nothing about chess rules.
type Board struct {
	rows  int
	cols  int
	cells [][]*Piece
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]*Piece, rows)
	for r := range b.cells {
		b.cells[r] = make([]*Piece, cols)
	}
	return b
}

// NewStandardBoard creates an empty 8x8 board.
func NewStandardBoard() *Board {
	return NewBoard(BoardSize, BoardSize)
}

// Dimensions returns the number of rows and columns.
func (b *Board) Dimensions() (rows, cols int) {
	return b.rows, b.cols
}

// IsValid reports whether pos lies on the board.
func (b *Board) IsValid(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Col >= 0 && pos.Col < b.cols
}

// CheckPosition returns ErrInvalidPosition if pos lies off the board.
func (b *Board) CheckPosition(pos Position) error {
	if !b.IsValid(pos) {
		return fmt.Errorf("position %v: %w", pos, errors.ErrInvalidPosition)
	}
	return nil
}

// PieceAt returns the piece at pos, or nil if the cell is empty or off the board.
func (b *Board) PieceAt(pos Position) *Piece {
	if !b.IsValid(pos) {
		return nil
	}
	return b.cells[pos.Row][pos.Col]
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	return b.IsValid(pos) && b.cells[pos.Row][pos.Col] == nil
}

// Place puts piece at pos and updates the piece's position.
// Any existing occupant is overwritten; callers vacate the cell first.
func (b *Board) Place(piece *Piece, pos Position) error {
	if err := b.CheckPosition(pos); err != nil {
		return err
	}
	b.cells[pos.Row][pos.Col] = piece
	piece.Pos = pos
	return nil
}

// Remove clears pos and returns its previous occupant, if any.
func (b *Board) Remove(pos Position) *Piece {
	if !b.IsValid(pos) {
		return nil
	}
	p := b.cells[pos.Row][pos.Col]
	b.cells[pos.Row][pos.Col] = nil
	return p
}

// Occupied returns every piece on the board in row-major order.
func (b *Board) Occupied() []*Piece {
	var pieces []*Piece
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if p := b.cells[r][c]; p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}
