package engine

import (
	"github.com/lgbarn/chess-match-go/internal/chess"
	"github.com/lgbarn/chess-match-go/internal/errors"
)

// Move is an origin-destination pair.
type Move struct {
	From chess.Position
	To   chess.Position
}

// String returns the move in long algebraic form ("e2e4").
func (mv Move) String() string {
	return mv.From.String() + mv.To.String()
}

// ValidateOrigin checks that pos holds a piece of the colour on move that has
// at least one possible move.
func (m *Match) ValidateOrigin(pos chess.Position) error {
	if m.finished {
		return m.originError(errors.ErrMatchFinished, pos)
	}
	if err := m.board.CheckPosition(pos); err != nil {
		return m.originError(err, pos)
	}
	p := m.board.PieceAt(pos)
	if p == nil {
		return m.originError(errors.ErrEmptyOrigin, pos)
	}
	if p.Colour != m.active {
		return m.originError(errors.ErrWrongOwner, pos)
	}
	if !HasAnyMove(m.board, p) {
		return m.originError(errors.ErrNoLegalMove, pos)
	}
	return nil
}

// ValidateDestination checks that to is marked in the move matrix of the
// piece at from.
func (m *Match) ValidateDestination(from, to chess.Position) error {
	if err := m.board.CheckPosition(to); err != nil {
		return m.moveError(err, from, to)
	}
	p := m.board.PieceAt(from)
	if p == nil {
		return m.moveError(errors.ErrEmptyOrigin, from, to)
	}
	if !PossibleMoves(m.board, p).Has(to) {
		return m.moveError(errors.ErrIllegalDestination, from, to)
	}
	return nil
}

// PossibleMovesAt returns the move matrix of the piece at pos.
func (m *Match) PossibleMovesAt(pos chess.Position) (MoveMatrix, error) {
	if err := m.board.CheckPosition(pos); err != nil {
		return nil, err
	}
	p := m.board.PieceAt(pos)
	if p == nil {
		return nil, m.originError(errors.ErrEmptyOrigin, pos)
	}
	return PossibleMoves(m.board, p), nil
}

// LegalMoves returns every pseudo-legal move of colour that does not leave
// its own king in check, ordered by piece registration then destination.
func (m *Match) LegalMoves(colour chess.Colour) ([]Move, error) {
	var moves []Move
	err := m.eachLegalMove(colour, func(mv Move) bool {
		moves = append(moves, mv)
		return true
	})
	return moves, err
}

// HasLegalMoves reports whether colour has at least one legal move.
func (m *Match) HasLegalMoves(colour chess.Colour) (bool, error) {
	mv, err := m.findLegalMove(colour)
	return mv != nil, err
}

// findLegalMove returns the first legal move of colour, or nil.
func (m *Match) findLegalMove(colour chess.Colour) (*Move, error) {
	var found *Move
	err := m.eachLegalMove(colour, func(mv Move) bool {
		found = &mv
		return false
	})
	return found, err
}

// eachLegalMove calls fn for each legal move of colour until fn returns false.
func (m *Match) eachLegalMove(colour chess.Colour, fn func(Move) bool) error {
	for _, p := range m.inPlay(colour) {
		from := p.Pos
		for _, to := range PossibleMoves(m.board, p).Positions() {
			inCheck, err := m.leavesInCheck(colour, from, to)
			if err != nil {
				return err
			}
			if inCheck {
				continue
			}
			if !fn(Move{From: from, To: to}) {
				return nil
			}
		}
	}
	return nil
}
