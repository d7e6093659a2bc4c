// Package errors provides sentinel errors and error types for the chess match engine.
// Rule violations are reported as sentinels wrapped in a MoveError so callers can
// re-prompt on errors.Is() while still seeing which move was rejected.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rejected moves.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrEmptyOrigin indicates there is no piece on the chosen origin square.
	ErrEmptyOrigin = errors.New("no piece at origin")

	// ErrWrongOwner indicates the origin piece belongs to the player not on move.
	ErrWrongOwner = errors.New("origin piece belongs to the other player")

	// ErrNoLegalMove indicates the origin piece is completely blocked.
	ErrNoLegalMove = errors.New("origin piece has no possible moves")

	// ErrIllegalDestination indicates the destination is not reachable by the origin piece.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrSelfCheck indicates the move would leave the mover's own king in check.
	ErrSelfCheck = errors.New("move leaves own king in check")

	// ErrMatchFinished indicates a move was attempted after checkmate.
	ErrMatchFinished = errors.New("match is finished")
)

// Sentinel errors for defects and malformed input.
var (
	// ErrNoKing indicates a colour has no king in play. This is a setup or
	// mutation bug, never a game outcome.
	ErrNoKing = errors.New("no king in play")

	// ErrInvalidPosition indicates a coordinate outside the board.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidPlacement indicates a malformed setup placement string.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with the context it was attempted in.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying sentinel
	From   string // Origin square in algebraic notation
	To     string // Destination square (empty for origin-only checks)
	Turn   uint   // Turn number when the move was attempted
	Colour string // Colour on move
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("origin %s", e.From))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsRuleViolation reports whether err is a recoverable rule rejection that a
// UI should answer by re-prompting.
func IsRuleViolation(err error) bool {
	for _, s := range []error{ErrEmptyOrigin, ErrWrongOwner, ErrNoLegalMove,
		ErrIllegalDestination, ErrSelfCheck, ErrInvalidPosition} {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}
