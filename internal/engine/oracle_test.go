package engine

import (
	"sort"
	"testing"

	nchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-match-go/internal/testutil"
)

// Positions without castling rights, en passant targets or promotable pawns,
// where the rule set here agrees with full chess.
var oracleFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w",
	"2r3k1/1q3ppp/8/3B4/8/2Q5/5PPP/3R2K1 b",
	"4k3/4r3/8/8/8/8/4B3/4K3 w",
	"4k3/8/8/8/8/8/8/R3K2r w",
	"R5k1/5ppp/8/8/8/8/8/6K1 b",
	"R5k1/3n1ppp/8/8/8/8/8/6K1 b",
	"7k/5Q2/6K1/8/8/8/8/8 b",
	"r3k3/8/8/3n4/8/2N5/8/4K2R b",
	"8/8/3k4/8/2b1N3/8/3K4/8 w",
}

func oracleMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := nchess.FEN(fen + " - - 0 1")
	if err != nil {
		t.Fatalf("nchess.FEN(%q): %v", fen, err)
	}
	game := nchess.NewGame(opt)

	var moves []string
	for _, mv := range game.ValidMoves() {
		moves = append(moves, mv.S1().String()+mv.S2().String())
	}
	sort.Strings(moves)
	return moves
}

func TestLegalMoves_AgreeWithReferenceLibrary(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			m := mustMatch(t, fen)
			_, toMove, err := ParsePlacements(fen)
			testutil.AssertNoError(t, err)
			legal, err := m.LegalMoves(toMove)
			testutil.AssertNoError(t, err)

			got := []string{}
			for _, mv := range legal {
				got = append(got, mv.String())
			}
			sort.Strings(got)

			want := append([]string{}, oracleMoves(t, fen)...)
			testutil.AssertEqual(t, got, want)

			mate, err := m.IsCheckmate(toMove)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, mate, len(want) == 0 && m.InCheck(), "IsCheckmate")
			testutil.AssertEqual(t, m.Finished(), mate, "Finished")
		})
	}
}
