package config

import (
	"io"

	"github.com/lgbarn/chessmoves-go/internal/chess"
)

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

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Format = format
	return b
}

// WithColours sets the colour filter.
func (b *ConfigBuilder) WithColours(filter ColourFilter) *ConfigBuilder {
	b.cfg.Colours = filter
	return b
}

// WithSquare limits reports to the piece on sq.
func (b *ConfigBuilder) WithSquare(sq chess.Square) *ConfigBuilder {
	b.cfg.Square = sq
	b.cfg.HasSquare = true
	return b
}

// WithWorkers sets the batch worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithDuplicateSuppression skips repeated positions in batch input,
// remembering at most capacity positions (0 = unlimited).
func (b *ConfigBuilder) WithDuplicateSuppression(capacity int) *ConfigBuilder {
	b.cfg.SuppressDuplicates = true
	b.cfg.DuplicateCapacity = capacity
	return b
}

// WithMaxFailures stops batch processing after n failed positions.
func (b *ConfigBuilder) WithMaxFailures(n int) *ConfigBuilder {
	b.cfg.MaxFailures = n
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
