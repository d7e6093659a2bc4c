package engine

import "github.com/lgbarn/chess-match-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PossibleMoves computes the pseudo-legal move matrix of piece on board.
// It only reads the board.
func PossibleMoves(board *chess.Board, piece *chess.Piece) MoveMatrix {
	rows, cols := board.Dimensions()
	m := NewMoveMatrix(rows, cols)

	switch piece.Kind {
	case chess.Pawn:
		pawnMoves(board, piece, m)
	case chess.Knight:
		stepMoves(board, piece, m, knightOffsets)
	case chess.King:
		stepMoves(board, piece, m, kingOffsets)
	case chess.Bishop:
		slidingMoves(board, piece, m, diagonalDirs)
	case chess.Rook:
		slidingMoves(board, piece, m, straightDirs)
	case chess.Queen:
		slidingMoves(board, piece, m, diagonalDirs)
		slidingMoves(board, piece, m, straightDirs)
	}

	return m
}

// HasAnyMove reports whether piece has at least one pseudo-legal move.
func HasAnyMove(board *chess.Board, piece *chess.Piece) bool {
	return PossibleMoves(board, piece).Any()
}

// stepMoves marks each single-step target that is empty or holds an enemy.
func stepMoves(board *chess.Board, piece *chess.Piece, m MoveMatrix, offsets [][2]int) {
	for _, off := range offsets {
		to := piece.Pos.Offset(off[0], off[1])
		if canLand(board, piece, to) {
			m.mark(to)
		}
	}
}

// canLand reports whether piece may finish on pos: on the board and not
// occupied by a friendly piece.
func canLand(board *chess.Board, piece *chess.Piece, pos chess.Position) bool {
	if !board.IsValid(pos) {
		return false
	}
	occupant := board.PieceAt(pos)
	return occupant == nil || occupant.Colour != piece.Colour
}

// isEnemy reports whether pos holds a piece of the other colour.
func isEnemy(board *chess.Board, piece *chess.Piece, pos chess.Position) bool {
	occupant := board.PieceAt(pos)
	return occupant != nil && occupant.Colour != piece.Colour
}
