// Package errors provides sentinel errors and error types for chessmoves.
// It defines the failure conditions of the board and notation layers and a
// structured error type that preserves square context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside 0..7 on either axis.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidNotation indicates a malformed algebraic square label.
	ErrInvalidNotation = errors.New("invalid algebraic notation")

	// ErrInvalidFEN indicates a malformed FEN piece placement.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrUnknownPiece indicates a piece kind outside the six chess kinds.
	ErrUnknownPiece = errors.New("unknown piece kind")

	// ErrOccupied indicates a setup write onto an occupied square.
	ErrOccupied = errors.New("square occupied")

	// ErrPieceNotFound indicates a piece that is not part of the live set.
	ErrPieceNotFound = errors.New("piece not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError wraps an error with the square it concerns. Row and Col are
// the raw array coordinates; Label carries the original text when the
// error came from notation parsing.
type SquareError struct {
	Err   error  // The underlying error
	Op    string // Operation that failed, e.g. "set" or "parse"
	Row   int
	Col   int
	Label string
}

// Error returns a formatted error message including all available context.
func (e *SquareError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}

	if e.Label != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Label))
	} else {
		parts = append(parts, fmt.Sprintf("(%d,%d)", e.Row, e.Col))
	}

	context := strings.Join(parts, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
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
