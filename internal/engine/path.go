package engine

import "github.com/lgbarn/chess-match-go/internal/chess"

var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// slidingMoves walks each ray from the piece until it leaves the board or
// meets an occupied cell. An enemy occupant is included; a friendly one is not.
func slidingMoves(board *chess.Board, piece *chess.Piece, m MoveMatrix, dirs [][2]int) {
	for _, dir := range dirs {
		pos := piece.Pos.Offset(dir[0], dir[1])
		for board.IsValid(pos) {
			occupant := board.PieceAt(pos)
			if occupant != nil {
				if occupant.Colour != piece.Colour {
					m.mark(pos)
				}
				break // Blocked
			}
			m.mark(pos)
			pos = pos.Offset(dir[0], dir[1])
		}
	}
}
