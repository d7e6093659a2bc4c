package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-match-go/internal/chess"
)

// Square parses an algebraic square, failing the test on error.
func Square(t *testing.T, s string) chess.Position {
	t.Helper()
	p, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return p
}

// SquareNames converts positions to sorted algebraic names, which makes
// move sets easy to compare with AssertEqual.
func SquareNames(positions []chess.Position) []string {
	names := make([]string, 0, len(positions))
	for _, p := range positions {
		names = append(names, p.String())
	}
	sort.Strings(names)
	return names
}

// Sorted returns a sorted copy of names.
func Sorted(names ...string) []string {
	out := append([]string{}, names...)
	sort.Strings(out)
	return out
}
