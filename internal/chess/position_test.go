package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-match-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Position
	}{
		{"a8", Pos(0, 0)},
		{"h8", Pos(0, 7)},
		{"a1", Pos(7, 0)},
		{"e2", Pos(6, 4)},
		{"e4", Pos(4, 4)},
		{"H1", Pos(7, 7)},
		{" d5 ", Pos(3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, in := range []string{"", "e", "e9", "i1", "a0", "e22", "4e"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSquare(in)
			if !errors.Is(err, chesserrors.ErrInvalidPosition) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidPosition", in, err)
			}
		})
	}
}

func TestPosition_String(t *testing.T) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := Pos(r, c)
			back, err := ParseSquare(p.String())
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", p.String(), err)
			}
			if back != p {
				t.Errorf("ParseSquare(%v.String()) = %+v; want %+v", p, back, p)
			}
		}
	}
	if got := Pos(9, 1).String(); got != "(9,1)" {
		t.Errorf("off-board String() = %q; want %q", got, "(9,1)")
	}
}

func TestKindFromLetter(t *testing.T) {
	for k := Pawn; k < NumKinds; k++ {
		got, ok := KindFromLetter(k.Letter())
		if !ok || got != k {
			t.Errorf("KindFromLetter(%c) = %v, %v; want %v, true", k.Letter(), got, ok, k)
		}
	}
	if _, ok := KindFromLetter('x'); ok {
		t.Error("KindFromLetter('x') ok = true; want false")
	}
}

func TestPiece_Letter(t *testing.T) {
	w := &Piece{Kind: Queen, Colour: White}
	b := &Piece{Kind: Queen, Colour: Black}
	if w.Letter() != 'Q' || b.Letter() != 'q' {
		t.Errorf("Letter() = %c/%c; want Q/q", w.Letter(), b.Letter())
	}
}

func TestColour_Opposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
}
