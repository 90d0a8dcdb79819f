// Package config provides run configuration for movegen.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// OutputFormat selects how move reports are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Board diagram plus one line per piece
	JSONFormat                     // Indented JSON document
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "text"
}

// ColourFilter restricts which side's pieces are reported.
type ColourFilter int

const (
	BothColours ColourFilter = iota
	WhiteOnly
	BlackOnly
)

// Includes reports whether pieces of colour pass the filter.
func (f ColourFilter) Includes(colour chess.Colour) bool {
	switch f {
	case WhiteOnly:
		return colour == chess.White
	case BlackOnly:
		return colour == chess.Black
	default:
		return true
	}
}

// ParseColourFilter converts "white", "black" or "both" (or their first
// letters) to a filter.
func ParseColourFilter(s string) (ColourFilter, error) {
	switch strings.ToLower(s) {
	case "", "both", "a", "all":
		return BothColours, nil
	case "white", "w":
		return WhiteOnly, nil
	case "black", "b":
		return BlackOnly, nil
	default:
		return BothColours, errors.Wrapf(errors.ErrInvalidConfig, "colour %q", s)
	}
}

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	Format  OutputFormat
	Colours ColourFilter

	// Square, when set, limits the report to the piece on that square.
	Square    chess.Square
	HasSquare bool

	// Workers is the number of goroutines used for batch input.
	Workers int

	// Duplicate position suppression for batch input
	SuppressDuplicates bool
	DuplicateCapacity  int // 0 = unlimited

	// MaxFailures stops batch processing after this many failed
	// positions; 0 processes everything.
	MaxFailures int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Format:     TextFormat,
		Colours:    BothColours,
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d", c.Workers)
	}
	if c.MaxFailures < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max failures %d", c.MaxFailures)
	}
	if c.HasSquare && c.Colours != BothColours {
		return errors.Wrapf(errors.ErrInvalidConfig, "square %v with colour filter %v", c.Square, c.Colours)
	}
	if c.DuplicateCapacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "duplicate capacity %d", c.DuplicateCapacity)
	}
	if c.HasSquare && !c.Square.InBounds() {
		return errors.Wrapf(errors.ErrInvalidConfig, "square %+v", c.Square)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "nil output stream")
	}
	return nil
}
