package chess

import "unicode"

// Piece is a single chess piece. Pieces are owned by a match registry;
// the Board only holds non-owning references to them.
type Piece struct {
	// ID is stable for the lifetime of the match that registered the piece.
	ID        int
	Kind      Kind
	Colour    Colour
	Pos       Position
	MoveCount uint
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		return byte(unicode.ToLower(rune(l)))
	}
	return l
}

// String returns a short description such as "White Knight@g1".
func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.Colour.String() + " " + p.Kind.String() + "@" + p.Pos.String()
}

// IncrementMoves records that the piece has moved.
func (p *Piece) IncrementMoves() {
	p.MoveCount++
}

// DecrementMoves reverts one IncrementMoves.
func (p *Piece) DecrementMoves() {
	if p.MoveCount > 0 {
		p.MoveCount--
	}
}
