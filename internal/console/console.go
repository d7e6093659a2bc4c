// Package console plays a match over line-based text input and output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-match-go/internal/chess"
	"github.com/lgbarn/chess-match-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-match-go/internal/errors"
	"github.com/lgbarn/chess-match-go/internal/render"
)

// Session reads squares from in and prints the board to out after each prompt.
type Session struct {
	match     *engine.Match
	in        *bufio.Scanner
	out       io.Writer
	opts      render.Options
	showMoves bool
	log       *zap.Logger
}

// NewSession creates a console session for match.
func NewSession(match *engine.Match, in io.Reader, out io.Writer, opts render.Options, showMoves bool, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		match:     match,
		in:        bufio.NewScanner(in),
		out:       out,
		opts:      opts,
		showMoves: showMoves,
		log:       log,
	}
}

// Run loops until checkmate, end of input or ctx cancellation. It returns nil
// when input runs out; "quit" on either prompt also ends the session.
func (s *Session) Run(ctx context.Context) error {
	for !s.match.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, render.Screen(s.match.Snapshot(), s.opts))

		quit, err := s.turn()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	fmt.Fprint(s.out, render.Screen(s.match.Snapshot(), s.opts))
	return nil
}

// turn reads one origin-destination pair and performs it. Rule violations are
// printed and the turn is retried by the caller.
func (s *Session) turn() (quit bool, err error) {
	from, ok, err := s.readSquare("Origin: ")
	if !ok || err != nil {
		return true, err
	}
	if err := s.match.ValidateOrigin(from); err != nil {
		return false, s.report(err)
	}

	if s.showMoves {
		moves, err := s.match.PossibleMovesAt(from)
		if err != nil {
			return false, s.report(err)
		}
		opts := s.opts
		opts.Highlight = moves
		opts.Selected = &from
		fmt.Fprint(s.out, "\n"+render.Board(s.match.Snapshot(), opts))
	}

	to, ok, err := s.readSquare("Destination: ")
	if !ok || err != nil {
		return true, err
	}
	if err := s.match.ValidateDestination(from, to); err != nil {
		return false, s.report(err)
	}
	if _, err := s.match.PerformMove(from, to); err != nil {
		return false, s.report(err)
	}
	fmt.Fprintln(s.out)
	return false, nil
}

// readSquare prompts until a square parses. ok is false on end of input or quit.
func (s *Session) readSquare(prompt string) (chess.Position, bool, error) {
	for {
		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			return chess.Position{}, false, s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if strings.EqualFold(line, "quit") {
			return chess.Position{}, false, nil
		}
		pos, err := chess.ParseSquare(line)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		return pos, true, nil
	}
}

// report prints rule violations and passes through anything else.
func (s *Session) report(err error) error {
	if !chesserrors.IsRuleViolation(err) && !errors.Is(err, chesserrors.ErrMatchFinished) {
		s.log.Error("move failed", zap.Error(err))
		return err
	}
	fmt.Fprintf(s.out, "%v\n\n", err)
	return nil
}
