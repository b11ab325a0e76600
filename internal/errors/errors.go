// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedRecord indicates a position record (FEN) that cannot be decoded.
	ErrMalformedRecord = errors.New("malformed position record")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPromotion indicates a promotion piece outside queen, rook,
	// bishop and knight. It is also an ErrIllegalMove.
	ErrInvalidPromotion = fmt.Errorf("invalid promotion choice: %w", ErrIllegalMove)

	// ErrInvalidSquare indicates a square index outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrGameOver indicates a move attempted after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrNothingToUndo indicates an undo request with no move history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// RecordError wraps a decoding failure with the field that caused it.
type RecordError struct {
	Err   error  // The underlying error
	Field string // Name of the record field, e.g. "castling rights"
	Value string // The offending text (if applicable)
}

// Error returns a formatted error message including the field and value.
func (e *RecordError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	context := strings.Join(parts, " ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "record error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the RecordError wrapper.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// MoveError wraps a rejected move with the reason it was refused.
type MoveError struct {
	Err    error  // The underlying error
	Move   string // The move in long algebraic notation (if known)
	Reason string // Why the move was rejected
}

// Error returns a formatted error message including the move and reason.
func (e *MoveError) Error() string {
	var parts []string
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
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

// Is reports whether any error in err's chain matches target. It lets
// callers importing this package avoid a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
