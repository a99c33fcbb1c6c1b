package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithSquareSize sets the SVG square size.
func (b *ConfigBuilder) WithSquareSize(size int) *ConfigBuilder {
	b.cfg.Output.SquareSize = size
	return b
}

// WithBlackView draws diagrams from Black's side when set.
func (b *ConfigBuilder) WithBlackView(black bool) *ConfigBuilder {
	b.cfg.Output.BlackView = black
	return b
}

// WithStartFEN sets the starting position of new games.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithTag sets a tag copied into new games.
func (b *ConfigBuilder) WithTag(name, value string) *ConfigBuilder {
	if b.cfg.Game.Tags == nil {
		b.cfg.Game.Tags = make(map[string]string)
	}
	b.cfg.Game.Tags[name] = value
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithQuiet suppresses prompts and summary lines.
func (b *ConfigBuilder) WithQuiet(quiet bool) *ConfigBuilder {
	b.cfg.Quiet = quiet
	return b
}

// WithFilenames sets the files opened for game records, the log and the
// final diagram. An empty name keeps the default.
func (b *ConfigBuilder) WithFilenames(output, log, svg string) *ConfigBuilder {
	b.cfg.OutputFilename = output
	b.cfg.LogFilename = log
	b.cfg.SVGFilename = svg
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// KeepMoveNumbers controls whether move numbers are written.
func (b *ConfigBuilder) KeepMoveNumbers(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepMoveNumbers = keep
	return b
}

// KeepClaims controls whether check and mate suffixes are written.
func (b *ConfigBuilder) KeepClaims(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepClaims = keep
	return b
}
