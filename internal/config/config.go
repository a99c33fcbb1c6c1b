// Package config provides configuration for the dnchess CLI and game controller.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/dnchess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Grouped settings
	Output OutputConfig
	Game   GameConfig

	// Verbosity: 0=errors only, 1=summary lines, 2=per-move commentary
	Verbosity int
	Quiet     bool

	// Workers is the number of games replayed in parallel in batch mode.
	Workers int

	// File handling
	OutputFilename string
	LogFilename    string
	SVGFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     *NewOutputConfig(),
		Game:       *NewGameConfig(),
		Verbosity:  1,
		Workers:    runtime.NumCPU(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer games and diagrams are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer log records are written to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every group and the top-level settings.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}
