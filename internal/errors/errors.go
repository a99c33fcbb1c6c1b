// Package errors provides sentinel errors and error types for the dnchess core.
// It defines the failure taxonomy of the move pipeline (parse, resolve, apply)
// and structured error types that keep their context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/dnchess-go/internal/chess"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrParse indicates a malformed Descriptive Notation token.
	ErrParse = errors.New("parse failure")

	// ErrIllegalMove indicates a move intent that matches no legal move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates a move intent that matches more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrEmptyHistory indicates an undo with nothing to undo.
	ErrEmptyHistory = errors.New("no moves to undo")

	// ErrGameOver indicates a move submitted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseErrorKind classifies why a token could not be parsed.
type ParseErrorKind int

const (
	UnrecognizedToken ParseErrorKind = iota
	InvalidFileOrRank
	MalformedPromotion
)

// String returns the name of the parse error kind.
func (k ParseErrorKind) String() string {
	switch k {
	case InvalidFileOrRank:
		return "invalid file or rank"
	case MalformedPromotion:
		return "malformed promotion"
	default:
		return "unrecognized token"
	}
}

// ParseError represents a notation parsing error with the offending substring.
type ParseError struct {
	Err    error          // The underlying error (ErrParse when unset)
	Kind   ParseErrorKind // What went wrong
	Token  string         // The offending substring
	Input  string         // The complete text being parsed
	Column int            // 1-based column of Token within Input (0 if unknown)
}

// Error returns a formatted error message with the offending substring.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		if e.Column > 0 {
			parts = append(parts, fmt.Sprintf("%q:%d", e.Input, e.Column))
		} else {
			parts = append(parts, fmt.Sprintf("%q", e.Input))
		}
	}

	if e.Token != "" {
		parts = append(parts, fmt.Sprintf("%s %q", e.Kind, e.Token))
	} else {
		parts = append(parts, e.Kind.String())
	}

	return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Unwrap())
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	if e.Err == nil {
		return ErrParse
	}
	return e.Err
}

// AmbiguousMoveError reports a move intent that several legal moves satisfy.
// Candidates holds the origin squares, sorted, so a caller can re-prompt
// with a file or rank hint.
type AmbiguousMoveError struct {
	MoveText   string
	Candidates []chess.Square
}

// Error lists the candidate origins.
func (e *AmbiguousMoveError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, sq := range e.Candidates {
		names[i] = sq.String()
	}
	msg := fmt.Sprintf("%v: candidates from %s", ErrAmbiguousMove, strings.Join(names, ", "))
	if e.MoveText != "" {
		return fmt.Sprintf("%q: %s", e.MoveText, msg)
	}
	return msg
}

// Unwrap returns ErrAmbiguousMove.
func (e *AmbiguousMoveError) Unwrap() error {
	return ErrAmbiguousMove
}

// IllegalMoveError reports a move intent that no legal move satisfies.
type IllegalMoveError struct {
	MoveText string
	Reason   string
}

// Error returns the reason, if any, after the sentinel text.
func (e *IllegalMoveError) Error() string {
	msg := ErrIllegalMove.Error()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.MoveText != "" {
		return fmt.Sprintf("%q: %s", e.MoveText, msg)
	}
	return msg
}

// Unwrap returns ErrIllegalMove.
func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// Stage names the step of the move pipeline that failed.
type Stage string

const (
	StageParse   Stage = "parse"
	StageResolve Stage = "resolve"
	StageGame    Stage = "game"
)

// MoveError wraps errors with move context: the pipeline stage, the ply
// the move would have been, and the move text. It supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Stage    Stage  // Pipeline stage that failed
	PlyNum   int    // 1-based ply the move would have occupied (0 if not applicable)
	MoveText string // The move text as submitted
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.Stage != "" {
		parts = append(parts, string(e.Stage))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
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
