package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/errors"
)

// OutputFormat selects how a finished game is written.
type OutputFormat int

const (
	Text OutputFormat = iota // Numbered move history
	JSON                     // JSON game record
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// ParseOutputFormat accepts the flag spelling of a format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// MinLineLength is the shortest line the history writer will wrap to.
const MinLineLength = 20

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the game record format
	Format OutputFormat

	// MaxLineLength is the wrap column for the move history (0 = no wrap)
	MaxLineLength uint

	// KeepMoveNumbers controls whether move numbers are written
	KeepMoveNumbers bool

	// KeepResult controls whether the result is written after the moves
	KeepResult bool

	// KeepClaims controls whether "ch" and "mate" suffixes are kept
	KeepClaims bool

	// SquareSize is the side of one square in SVG diagrams, in pixels
	SquareSize int

	// BlackView draws diagrams from Black's side
	BlackView bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          Text,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResult:      true,
		KeepClaims:      true,
		SquareSize:      45,
	}
}

// ViewSide returns the side diagrams are drawn from.
func (o *OutputConfig) ViewSide() chess.Colour {
	if o.BlackView {
		return chess.Black
	}
	return chess.White
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength != 0 && o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below minimum %d: %w",
			o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	if o.SquareSize < 1 {
		return fmt.Errorf("square size must be positive, got %d: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
