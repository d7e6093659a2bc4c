package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-match-go/internal/chess"
	"github.com/lgbarn/chess-match-go/internal/errors"
)

// InitialFEN is the piece placement of the standard starting position, White to move.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// Placement puts one piece of kind and colour on the square (file, rank).
type Placement struct {
	File   byte
	Rank   int
	Kind   chess.Kind
	Colour chess.Colour
}

var backRank = []chess.Kind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}

// StandardPlacements returns the 32 pieces of the standard starting position.
func StandardPlacements() []Placement {
	placements := make([]Placement, 0, 32)
	for i, kind := range backRank {
		file := byte('a' + i)
		placements = append(placements, Placement{File: file, Rank: 1, Kind: kind, Colour: chess.White})
	}
	for i := range backRank {
		placements = append(placements, Placement{File: byte('a' + i), Rank: 2, Kind: chess.Pawn, Colour: chess.White})
	}
	for i, kind := range backRank {
		placements = append(placements, Placement{File: byte('a' + i), Rank: 8, Kind: kind, Colour: chess.Black})
	}
	for i := range backRank {
		placements = append(placements, Placement{File: byte('a' + i), Rank: 7, Kind: chess.Pawn, Colour: chess.Black})
	}
	return placements
}

// Setup applies placements to an unstarted match.
func (m *Match) Setup(placements []Placement) error {
	for _, pl := range placements {
		if _, err := m.PlacePiece(pl.File, pl.Rank, pl.Kind, pl.Colour); err != nil {
			return err
		}
	}
	return nil
}

// NewStandardMatch creates a match in the standard starting position.
func NewStandardMatch(opts ...Option) *Match {
	m := New(opts...)
	mustSetup(m, StandardPlacements())
	return m
}

// mustSetup is Setup for fixed placement tables; it panics on error.
func mustSetup(m *Match, placements []Placement) {
	if err := m.Setup(placements); err != nil {
		panic(err)
	}
}

// NewMatchFromFEN creates a match from the piece placement and optional
// side-to-move fields of a FEN string. Each colour must have exactly one king
// and the side not on move must not be in check. A side to move that is
// already mated yields a finished match won by its opponent.
func NewMatchFromFEN(fen string, opts ...Option) (*Match, error) {
	placements, toMove, err := ParsePlacements(fen)
	if err != nil {
		return nil, err
	}
	if err := checkKings(placements); err != nil {
		return nil, err
	}

	m := New(opts...)
	if err := m.Setup(placements); err != nil {
		return nil, err
	}
	m.active = toMove

	exposed, err := m.IsInCheck(toMove.Opposite())
	if err != nil {
		return nil, err
	}
	if exposed {
		return nil, fmt.Errorf("%s king is in check with %s to move: %w",
			toMove.Opposite(), toMove, errors.ErrInvalidPlacement)
	}

	inCheck, err := m.IsInCheck(toMove)
	if err != nil {
		return nil, err
	}
	m.inCheck = inCheck
	if !inCheck {
		return m, nil
	}

	mated, err := m.IsCheckmate(toMove)
	if err != nil {
		return nil, err
	}
	if mated {
		m.active = toMove.Opposite()
		m.finished = true
	}
	return m, nil
}

// ParsePlacements parses the piece placement field and, if present, the
// side-to-move field of a FEN string. Remaining fields are ignored.
func ParsePlacements(fen string) ([]Placement, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty placement string: %w", errors.ErrInvalidPlacement)
	}

	placements, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, chess.White, err
	}

	toMove := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			toMove = chess.Black
		default:
			return nil, chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidPlacement)
		}
	}
	return placements, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) ([]Placement, error) {
	var placements []Placement
	rank := chess.BoardSize
	file := byte('a')

	for _, c := range positions {
		switch {
		case c == '/':
			if file != 'a'+chess.BoardSize {
				return nil, errors.Wrapf(errors.ErrInvalidPlacement, "rank %d has %d files", rank, file-'a')
			}
			rank--
			file = 'a'
		case c >= '1' && c <= '8':
			file += byte(c - '0')
		default:
			kind, ok := chess.KindFromLetter(byte(c))
			if !ok {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidPlacement)
			}
			if file >= 'a'+chess.BoardSize || rank < 1 {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidPlacement)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			placements = append(placements, Placement{File: file, Rank: rank, Kind: kind, Colour: colour})
			file++
		}
	}
	if rank != 1 || file != 'a'+chess.BoardSize {
		return nil, errors.Wrapf(errors.ErrInvalidPlacement, "placement %q does not cover the board", positions)
	}
	return placements, nil
}

// checkKings enforces one king per colour.
func checkKings(placements []Placement) error {
	var kings [2]int
	for _, pl := range placements {
		if pl.Kind == chess.King {
			kings[pl.Colour]++
		}
	}
	for _, colour := range chess.Colours {
		if kings[colour] != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, kings[colour], errors.ErrInvalidPlacement)
		}
	}
	return nil
}

// PlacementString renders the board as a FEN piece placement field followed
// by the side to move.
func (m *Match) PlacementString() string {
	var sb strings.Builder
	rows, cols := m.board.Dimensions()

	for r := 0; r < rows; r++ {
		empty := 0
		for c := 0; c < cols; c++ {
			p := m.board.PieceAt(chess.Pos(r, c))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r < rows-1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if m.active == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}
