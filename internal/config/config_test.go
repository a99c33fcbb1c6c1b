package config

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/lgbarn/dnchess-go/internal/chess"
	"github.com/lgbarn/dnchess-go/internal/engine"
	"github.com/lgbarn/dnchess-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if !cfg.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if !cfg.KeepResult {
		t.Error("KeepResult should be true by default")
	}
	if !cfg.KeepClaims {
		t.Error("KeepClaims should be true by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default output config invalid: %v", err)
	}
	if cfg.ViewSide() != chess.White {
		t.Error("diagrams should be drawn from White's side by default")
	}
	cfg.BlackView = true
	if cfg.ViewSide() != chess.Black {
		t.Error("BlackView should draw from Black's side")
	}
}

func TestGameConfig_Defaults(t *testing.T) {
	cfg := NewGameConfig()

	if cfg.StartFEN != engine.InitialFEN {
		t.Errorf("StartFEN = %q, want the initial position", cfg.StartFEN)
	}
	if got := cfg.Tags["Result"]; got != "*" {
		t.Errorf("Result tag = %q, want *", got)
	}
	if len(cfg.Tags) != 7 {
		t.Errorf("len(Tags) = %d, want the seven tag roster", len(cfg.Tags))
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", Text, false},
		{"", Text, false},
		{"JSON", JSON, false},
		{"pgn", Text, true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if err == nil && tt.in != "" {
			if round, _ := ParseOutputFormat(got.String()); round != got {
				t.Errorf("String() of %v does not parse back", got)
			}
		}
	}
}

// TestConfig_Validate verifies configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"no wrapping", func(c *Config) { c.Output.MaxLineLength = 0 }, false},
		{"line too short", func(c *Config) { c.Output.MaxLineLength = 5 }, true},
		{"zero square size", func(c *Config) { c.Output.SquareSize = 0 }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"bad start position", func(c *Config) { c.Game.StartFEN = "8/8/8/8/8/8/8/8 w - - 0 1" }, true},
		{"custom start position", func(c *Config) { c.Game.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)
	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}

	logs := &bytes.Buffer{}
	cfg.SetLogFile(logs)
	if cfg.LogFile != logs {
		t.Error("SetLogFile did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithOutputFormat(JSON).
		WithMaxLineLength(120).
		WithSquareSize(60).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithTag("White", "Morphy").
		WithWorkers(3).
		WithVerbosity(2).
		WithOutput(buf).
		KeepMoveNumbers(false).
		KeepClaims(false).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if cfg.Output.SquareSize != 60 {
		t.Errorf("SquareSize = %d, want 60", cfg.Output.SquareSize)
	}
	if cfg.Game.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.Game.StartFEN)
	}
	if cfg.Game.Tags["White"] != "Morphy" {
		t.Errorf("White tag = %q, want Morphy", cfg.Game.Tags["White"])
	}
	if cfg.Workers != 3 || cfg.Verbosity != 2 {
		t.Errorf("Workers, Verbosity = %d, %d; want 3, 2", cfg.Workers, cfg.Verbosity)
	}
	if cfg.OutputFile != buf {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Output.KeepMoveNumbers || cfg.Output.KeepClaims {
		t.Error("KeepMoveNumbers and KeepClaims should be false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config invalid: %v", err)
	}
}

func TestConfigBuilderDisplayAndFiles(t *testing.T) {
	cfg := NewConfigBuilder().
		WithBlackView(true).
		WithQuiet(true).
		WithFilenames("games.txt", "run.log", "final.svg").
		Build()

	if !cfg.Output.BlackView {
		t.Error("WithBlackView did not set BlackView")
	}
	if !cfg.Quiet {
		t.Error("WithQuiet did not set Quiet")
	}
	if cfg.OutputFilename != "games.txt" || cfg.LogFilename != "run.log" || cfg.SVGFilename != "final.svg" {
		t.Errorf("file names = %q, %q, %q", cfg.OutputFilename, cfg.LogFilename, cfg.SVGFilename)
	}
}

// Builders must not share tag maps.
func TestConfigBuilder_IndependentTags(t *testing.T) {
	a := NewConfigBuilder().WithTag("Event", "A").Build()
	b := NewConfigBuilder().Build()
	if b.Game.Tags["Event"] != "?" {
		t.Errorf("second config sees tag %q from the first", b.Game.Tags["Event"])
	}
	if a.Game.Tags["Event"] != "A" {
		t.Errorf("Event = %q, want A", a.Game.Tags["Event"])
	}
}
