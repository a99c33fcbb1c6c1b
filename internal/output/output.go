// Package output writes finished or in-progress games: the numbered move
// history, a JSON game record, and board diagrams as text or SVG.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/config"
	"github.com/lgbarn/dnchess-go/internal/engine"
)

// Record is the read-only view of a game the writers need.
// *game.Game satisfies it.
type Record interface {
	ID() uuid.UUID
	Tags() map[string]string
	StartFEN() string
	FEN() string
	History() []chess.Move
	MoveHistory() []string
	Result() string
	Status() engine.Status
	BoardSnapshot() chess.Snapshot
}

// SevenTagRoster lists the tags written first, in this order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of zero
// or less never wraps.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes the tags, a blank line, then the move history.
func OutputGame(w io.Writer, rec Record, cfg *config.Config) {
	outputTags(w, rec.Tags())
	fmt.Fprintln(w)
	OutputHistory(w, rec, cfg)
	fmt.Fprintln(w)
}

// outputTags writes the seven tag roster first, then the rest sorted by name.
func outputTags(w io.Writer, tags map[string]string) {
	for _, tag := range SevenTagRoster {
		value, ok := tags[tag]
		if !ok || value == "" {
			value = "?"
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}

	var extra []string
	for tag := range tags {
		if !slices.Contains(SevenTagRoster, tag) {
			extra = append(extra, tag)
		}
	}
	slices.Sort(extra)
	for _, tag := range extra {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(tags[tag]))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// OutputHistory writes the numbered move history, e.g.
// "1. P-K4 P-K4 2. N-KB3 N-QB3 *", wrapped at the configured line length.
func OutputHistory(w io.Writer, rec Record, cfg *config.Config) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	moveNum, isWhite := startingMove(rec.StartFEN())
	for i, text := range rec.MoveHistory() {
		if cfg.Output.KeepMoveNumbers {
			if isWhite {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}
		if !cfg.Output.KeepClaims {
			text = stripClaim(text)
		}
		ow.Write(text)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	if cfg.Output.KeepResult {
		ow.Write(rec.Result())
	}
	ow.NewLine()
}

// startingMove returns the move number and whether White moves first.
func startingMove(fen string) (uint, bool) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return 1, true
	}
	return board.MoveNumber, board.ToMove == chess.White
}

// stripClaim removes a trailing " ch" or " mate".
func stripClaim(text string) string {
	text = strings.TrimSuffix(text, " ch")
	return strings.TrimSuffix(text, " mate")
}
