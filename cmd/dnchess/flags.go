// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/dnchess-go/internal/config"
)

var (
	// Game options
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard position)")

	// Output options
	outputFile   = flag.String("o", "", "Write game records to this file")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("format", "text", "Game record format: text, json")
	svgFile      = flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	lineLength   = flag.Int("w", 80, "Maximum line length of move histories (0 = no wrapping)")
	squareSize   = flag.Int("squaresize", 45, "Square size of SVG diagrams in pixels")
	blackView    = flag.Bool("black", false, "Draw diagrams from Black's side")
	noNumbers    = flag.Bool("nonumbers", false, "Don't write move numbers")
	noClaims     = flag.Bool("noclaims", false, "Don't write ch and mate suffixes")

	// Performance options
	workers = flag.Int("j", 0, "Number of games replayed in parallel (0 = one per CPU core)")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors, 1=summaries, 2=every move")
	logFile   = flag.String("l", "", "Write diagnostics to log file")

	// Other options
	quiet   = flag.Bool("q", false, "Quiet mode (no prompts or summaries)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// configFromFlags builds the configuration from the command-line flags.
func configFromFlags() (*config.Config, error) {
	b := config.NewConfigBuilder()
	if err := applyOutputFlags(b); err != nil {
		return nil, err
	}
	applyGameFlags(b)

	level := *verbosity
	if *quiet {
		level = 0
	}
	b.WithVerbosity(level).
		WithQuiet(*quiet).
		WithFilenames(*outputFile, *logFile, *svgFile)
	if *workers > 0 {
		b.WithWorkers(*workers)
	}
	return b.Build(), nil
}

// applyOutputFlags configures record and diagram output.
func applyOutputFlags(b *config.ConfigBuilder) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	b.WithOutputFormat(format).
		WithMaxLineLength(uint(max(*lineLength, 0))).
		WithSquareSize(*squareSize).
		WithBlackView(*blackView).
		KeepMoveNumbers(!*noNumbers).
		KeepClaims(!*noClaims)
	return nil
}

// applyGameFlags configures new games.
func applyGameFlags(b *config.ConfigBuilder) {
	if *startFEN != "" {
		b.WithStartFEN(*startFEN)
	}
}
