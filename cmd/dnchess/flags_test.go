package main

import (
	"testing"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/config"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(quiet, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestConfigFromFlagsDefaults(t *testing.T) {
	cfg, err := configFromFlags()
	if err != nil {
		t.Fatalf("configFromFlags() error = %v", err)
	}
	if cfg.Output.Format != config.Text {
		t.Errorf("Format = %v; want text", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d; want 80", cfg.Output.MaxLineLength)
	}
	if !cfg.Output.KeepMoveNumbers || !cfg.Output.KeepClaims {
		t.Error("move numbers and claims should be kept by default")
	}
	if cfg.Game.StartFEN != config.NewGameConfig().StartFEN {
		t.Errorf("StartFEN = %q; want the initial position", cfg.Game.StartFEN)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d; want at least 1", cfg.Workers)
	}
	if cfg.Verbosity != 1 || cfg.Quiet {
		t.Errorf("Verbosity = %d, Quiet = %v; want 1, false", cfg.Verbosity, cfg.Quiet)
	}
	if cfg.OutputFilename != "" || cfg.LogFilename != "" || cfg.SVGFilename != "" {
		t.Errorf("file names = %q, %q, %q; want none", cfg.OutputFilename, cfg.LogFilename, cfg.SVGFilename)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreString(outputFormat, "JSON")()
	defer saveRestoreInt(lineLength, 0)()
	defer saveRestoreInt(squareSize, 60)()
	defer saveRestoreBool(blackView, true)()
	defer saveRestoreBool(noNumbers, true)()
	defer saveRestoreBool(noClaims, true)()

	b := config.NewConfigBuilder()
	if err := applyOutputFlags(b); err != nil {
		t.Fatalf("applyOutputFlags() error = %v", err)
	}
	cfg := b.Build()
	if cfg.Output.Format != config.JSON {
		t.Errorf("Format = %v; want json", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 0 {
		t.Errorf("MaxLineLength = %d; want 0", cfg.Output.MaxLineLength)
	}
	if cfg.Output.SquareSize != 60 {
		t.Errorf("SquareSize = %d; want 60", cfg.Output.SquareSize)
	}
	if cfg.Output.ViewSide() != chess.Black {
		t.Errorf("ViewSide = %v; want Black", cfg.Output.ViewSide())
	}
	if cfg.Output.KeepMoveNumbers || cfg.Output.KeepClaims {
		t.Error("move numbers and claims should be dropped")
	}
}

func TestApplyOutputFlagsNegativeLineLength(t *testing.T) {
	defer saveRestoreInt(lineLength, -5)()

	b := config.NewConfigBuilder()
	if err := applyOutputFlags(b); err != nil {
		t.Fatalf("applyOutputFlags() error = %v", err)
	}
	cfg := b.Build()
	if cfg.Output.MaxLineLength != 0 {
		t.Errorf("MaxLineLength = %d; want 0", cfg.Output.MaxLineLength)
	}
}

func TestConfigFromFlagsBadFormat(t *testing.T) {
	defer saveRestoreString(outputFormat, "pgn")()

	if cfg, err := configFromFlags(); err == nil {
		t.Errorf("configFromFlags() = %+v; should reject an unknown format", cfg)
	}
}

func TestConfigFromFlagsQuiet(t *testing.T) {
	defer saveRestoreBool(quiet, true)()
	defer saveRestoreInt(verbosity, 2)()

	cfg, err := configFromFlags()
	if err != nil {
		t.Fatalf("configFromFlags() error = %v", err)
	}
	if !cfg.Quiet || cfg.Verbosity != 0 {
		t.Errorf("Quiet = %v, Verbosity = %d; want true, 0", cfg.Quiet, cfg.Verbosity)
	}
}

func TestConfigFromFlagsFilesAndWorkers(t *testing.T) {
	defer saveRestoreString(outputFile, "games.txt")()
	defer saveRestoreString(logFile, "dnchess.log")()
	defer saveRestoreString(svgFile, "final.svg")()
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")()

	cfg, err := configFromFlags()
	if err != nil {
		t.Fatalf("configFromFlags() error = %v", err)
	}
	if cfg.OutputFilename != "games.txt" || cfg.LogFilename != "dnchess.log" || cfg.SVGFilename != "final.svg" {
		t.Errorf("file names = %q, %q, %q", cfg.OutputFilename, cfg.LogFilename, cfg.SVGFilename)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d; want 3", cfg.Workers)
	}
	if cfg.Game.StartFEN != "4k3/8/8/8/8/8/8/4K2R w K - 0 1" {
		t.Errorf("StartFEN = %q", cfg.Game.StartFEN)
	}
}
