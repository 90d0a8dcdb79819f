// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"
	"sort"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/game"
)

var (
	// Position selection
	fenString  = flag.String("fen", game.InitialFEN, "Position in FEN (only the piece placement is used)")
	squareFlag = flag.String("square", "", "Report only the piece on this square (e.g. g1)")
	colourFlag = flag.String("colour", "both", "Pieces to report: white, black or both")
	batchFile  = flag.String("batch", "", "File with one FEN per line ('-' for stdin)")
	workers    = flag.Int("workers", runtime.NumCPU(), "Worker goroutines for -batch")
	stopAfter  = flag.Int("stop-after", 0, "Stop -batch after this many failed positions (0 = never)")

	// Duplicate suppression
	suppressDuplicates = flag.Bool("D", false, "Skip positions already seen in -batch input")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions for -D (0 = unlimited)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=summary, 2=per position")
	quiet     = flag.Bool("s", false, "Silent mode, same as -v 0")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// conflictingFlags lists flag pairs that cannot be combined.
var conflictingFlags = [][2]string{
	{"batch", "fen"},
	{"square", "colour"},
}

// checkFlagConflicts rejects combinations of explicitly set flags where
// one would silently override the other.
func checkFlagConflicts(set map[string]bool) error {
	var clashes []string
	for _, pair := range conflictingFlags {
		if set[pair[0]] && set[pair[1]] {
			clashes = append(clashes, "-"+pair[0]+" with -"+pair[1])
		}
	}
	if len(clashes) == 0 {
		return nil
	}
	sort.Strings(clashes)
	return errors.Wrapf(errors.ErrInvalidConfig, "conflicting flags: %s", strings.Join(clashes, ", "))
}

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) error {
	if err := checkFlagConflicts(setFlags()); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}

	if *jsonOutput {
		cfg.Format = config.JSONFormat
	}

	colours, err := config.ParseColourFilter(*colourFlag)
	if err != nil {
		return err
	}
	cfg.Colours = colours

	if *squareFlag != "" {
		sq, err := chess.ParseSquare(*squareFlag)
		if err != nil {
			return err
		}
		cfg.Square = sq
		cfg.HasSquare = true
	}

	cfg.Workers = *workers
	cfg.MaxFailures = *stopAfter
	cfg.SuppressDuplicates = *suppressDuplicates
	cfg.DuplicateCapacity = *duplicateCapacity
	return cfg.Validate()
}
