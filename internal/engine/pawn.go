package engine

import "github.com/lgbarn/chess-match-go/internal/chess"

// pawnMoves marks the forward pushes and diagonal captures of a pawn.
func pawnMoves(board *chess.Board, pawn *chess.Piece, m MoveMatrix) {
	dir := chess.ForwardOffset(pawn.Colour)

	// Single push
	one := pawn.Pos.Offset(dir, 0)
	if board.IsEmpty(one) {
		m.mark(one)
	}

	// Double push, only before the pawn's first move
	two := pawn.Pos.Offset(2*dir, 0)
	if pawn.MoveCount == 0 && board.IsEmpty(one) && board.IsEmpty(two) {
		m.mark(two)
	}

	// Captures
	for _, dc := range []int{-1, 1} {
		diag := pawn.Pos.Offset(dir, dc)
		if board.IsValid(diag) && isEnemy(board, pawn, diag) {
			m.mark(diag)
		}
	}
}
