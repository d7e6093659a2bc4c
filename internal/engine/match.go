// Package engine provides piece move generation and the match orchestrator that
// executes, validates and reverts moves and detects check and checkmate.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-match-go/internal/chess"
	"github.com/lgbarn/chess-match-go/internal/errors"
)

// Match is the aggregate root of a two-player game. It owns the board and
// the piece registry; all mutation goes through ExecuteMove and UndoMove.
// A Match is not safe for concurrent use.
type Match struct {
	id       string
	board    *chess.Board
	turn     uint
	active   chess.Colour
	finished bool
	inCheck  bool

	// pieces is indexed by Piece.ID and includes captured pieces.
	pieces   []*chess.Piece
	captured map[int]bool

	log *zap.Logger
}

// Option configures a Match at construction.
type Option func(*Match)

// WithLogger sets the logger used for turn and check events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.log = l
		}
	}
}

// WithID overrides the generated match ID.
func WithID(id string) Option {
	return func(m *Match) {
		m.id = id
	}
}

// New creates a match with an empty board, White to move on turn 1.
func New(opts ...Option) *Match {
	m := &Match{
		id:       uuid.NewString(),
		board:    chess.NewStandardBoard(),
		turn:     1,
		active:   chess.White,
		captured: make(map[int]bool),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(zap.String("match", m.id))
	return m
}

// ID returns the match identifier used in logs.
func (m *Match) ID() string {
	return m.id
}

// PlacePiece registers a new piece and puts it on the board. It is a setup
// operation: the target cell must be empty.
func (m *Match) PlacePiece(file byte, rank int, kind chess.Kind, colour chess.Colour) (*chess.Piece, error) {
	pos, err := chess.FromSquare(file, rank)
	if err != nil {
		return nil, errors.Wrap(err, "placing piece")
	}
	if err := m.board.CheckPosition(pos); err != nil {
		return nil, errors.Wrap(err, "placing piece")
	}
	if occupant := m.board.PieceAt(pos); occupant != nil {
		return nil, fmt.Errorf("%v already holds %v: %w", pos, occupant, errors.ErrInvalidPlacement)
	}

	p := &chess.Piece{ID: len(m.pieces), Kind: kind, Colour: colour}
	if err := m.board.Place(p, pos); err != nil {
		return nil, err
	}
	m.pieces = append(m.pieces, p)
	return p, nil
}

// ExecuteMove moves the piece at from to to, capturing any occupant of to.
// It does not check legality. The returned captured piece (nil if none) must
// be handed back to UndoMove to revert the move.
func (m *Match) ExecuteMove(from, to chess.Position) (*chess.Piece, error) {
	if err := m.board.CheckPosition(from); err != nil {
		return nil, err
	}
	if err := m.board.CheckPosition(to); err != nil {
		return nil, err
	}

	p := m.board.Remove(from)
	if p == nil {
		return nil, fmt.Errorf("executing %v-%v: %w", from, to, errors.ErrEmptyOrigin)
	}
	p.IncrementMoves()

	captured := m.board.Remove(to)
	if err := m.board.Place(p, to); err != nil {
		return nil, err
	}
	if captured != nil {
		m.captured[captured.ID] = true
	}
	return captured, nil
}

// UndoMove reverts an ExecuteMove(from, to) that returned captured.
func (m *Match) UndoMove(from, to chess.Position, captured *chess.Piece) error {
	if err := m.board.CheckPosition(from); err != nil {
		return err
	}
	p := m.board.Remove(to)
	if p == nil {
		return fmt.Errorf("undoing %v-%v: %w", from, to, errors.ErrEmptyOrigin)
	}
	p.DecrementMoves()

	if captured != nil {
		if err := m.board.Place(captured, to); err != nil {
			return err
		}
		delete(m.captured, captured.ID)
	}
	return m.board.Place(p, from)
}

// PerformMove plays one turn for the colour on move. A move that leaves the
// mover in check is rolled back and rejected with ErrSelfCheck.
// On success the check flag is refreshed and either the match finishes by
// checkmate or the turn passes. On any error the match is left unchanged.
// The returned piece is a copy of the captured piece, or nil.
func (m *Match) PerformMove(from, to chess.Position) (*chess.Piece, error) {
	if err := m.ValidateOrigin(from); err != nil {
		return nil, err
	}
	if err := m.ValidateDestination(from, to); err != nil {
		return nil, err
	}

	captured, err := m.ExecuteMove(from, to)
	if err != nil {
		return nil, m.moveError(err, from, to)
	}

	mover := m.active
	opponent := mover.Opposite()

	selfCheck, err := m.IsInCheck(mover)
	if err != nil {
		return nil, m.rollback(from, to, captured, err)
	}
	if selfCheck {
		m.log.Warn("rejected move into check",
			zap.Stringer("colour", mover),
			zap.Stringer("from", from),
			zap.Stringer("to", to))
		return nil, m.rollback(from, to, captured, m.moveError(errors.ErrSelfCheck, from, to))
	}

	inCheck, err := m.IsInCheck(opponent)
	if err != nil {
		return nil, m.rollback(from, to, captured, err)
	}
	mate, err := m.IsCheckmate(opponent)
	if err != nil {
		return nil, m.rollback(from, to, captured, err)
	}

	m.inCheck = inCheck
	m.log.Debug("move performed",
		zap.Uint("turn", m.turn),
		zap.Stringer("colour", mover),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Bool("capture", captured != nil))

	if mate {
		m.finished = true
		m.log.Info("checkmate", zap.Uint("turn", m.turn), zap.Stringer("winner", mover))
	} else {
		if inCheck {
			m.log.Info("check", zap.Uint("turn", m.turn), zap.Stringer("colour", opponent))
		}
		m.turn++
		m.active = opponent
	}

	if captured == nil {
		return nil, nil
	}
	cp := *captured
	return &cp, nil
}

// rollback reverts a speculative move and returns cause. A failed undo means
// the registry and board disagree, which is reported alongside cause.
func (m *Match) rollback(from, to chess.Position, captured *chess.Piece, cause error) error {
	if err := m.UndoMove(from, to, captured); err != nil {
		return fmt.Errorf("%w (rollback failed: %v)", cause, err)
	}
	return cause
}

// moveError wraps err with the current turn context.
func (m *Match) moveError(err error, from, to chess.Position) error {
	return &errors.MoveError{
		Err:    err,
		From:   from.String(),
		To:     to.String(),
		Turn:   m.turn,
		Colour: m.active.String(),
	}
}

// originError wraps err raised while checking an origin square.
func (m *Match) originError(err error, from chess.Position) error {
	return &errors.MoveError{
		Err:    err,
		From:   from.String(),
		Turn:   m.turn,
		Colour: m.active.String(),
	}
}
