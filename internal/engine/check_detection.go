package engine

import (
	"fmt"

	"github.com/lgbarn/chess-match-go/internal/chess"
	"github.com/lgbarn/chess-match-go/internal/errors"
)

// IsInCheck reports whether the given colour's king is attacked by any enemy
// piece in play. Attack sets are recomputed on every call.
func (m *Match) IsInCheck(colour chess.Colour) (bool, error) {
	king := m.king(colour)
	if king == nil {
		return false, fmt.Errorf("%v: %w", colour, errors.ErrNoKing)
	}
	return m.isSquareAttacked(king.Pos, colour.Opposite()), nil
}

// IsCheckmate reports whether colour is in check and no pseudo-legal move of
// any of its pieces escapes the check. Every candidate is simulated and rolled back.
func (m *Match) IsCheckmate(colour chess.Colour) (bool, error) {
	inCheck, err := m.IsInCheck(colour)
	if err != nil || !inCheck {
		return false, err
	}

	escape, err := m.findLegalMove(colour)
	if err != nil {
		return false, err
	}
	return escape == nil, nil
}

// king returns the in-play king of colour, or nil.
func (m *Match) king(colour chess.Colour) *chess.Piece {
	for _, p := range m.inPlay(colour) {
		if p.Kind == chess.King {
			return p
		}
	}
	return nil
}

// isSquareAttacked reports whether any in-play piece of byColour has pos in
// its move matrix.
func (m *Match) isSquareAttacked(pos chess.Position, byColour chess.Colour) bool {
	for _, p := range m.inPlay(byColour) {
		if PossibleMoves(m.board, p).Has(pos) {
			return true
		}
	}
	return false
}

// leavesInCheck simulates from-to and reports whether colour is in check
// afterwards. The board is always restored before returning.
func (m *Match) leavesInCheck(colour chess.Colour, from, to chess.Position) (bool, error) {
	captured, err := m.ExecuteMove(from, to)
	if err != nil {
		return false, err
	}
	inCheck, checkErr := m.IsInCheck(colour)
	if err := m.UndoMove(from, to, captured); err != nil {
		return false, err
	}
	return inCheck, checkErr
}
