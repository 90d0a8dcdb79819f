package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/game"
	"github.com/lgbarn/chessmoves-go/internal/hashing"
	"github.com/lgbarn/chessmoves-go/internal/output"
	"github.com/lgbarn/chessmoves-go/internal/worker"
)

// logf writes a diagnostic line when cfg.Verbosity is at least level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level {
		fmt.Fprintf(cfg.LogFile, format+"\n", args...)
	}
}

// processSingle reports on one position.
func processSingle(cfg *config.Config, fen string) error {
	env, err := game.NewEnvironmentFromFEN(fen)
	if err != nil {
		return err
	}
	logf(cfg, 2, "session %s: %d pieces", env.ID(), len(env.Pieces()))

	r, err := output.BuildReport(env, cfg)
	if err != nil {
		return err
	}

	w := output.NewReportWriter(cfg.OutputFile, cfg, false)
	if err := w.WriteReport(r); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	logf(cfg, 1, "%d candidate moves", r.TotalMoves)
	return nil
}

// readFENs returns the non-blank lines of r, skipping '#' comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading batch input")
	}
	return fens, nil
}

// processBatch reports on every FEN read from r using the worker pool.
// Positions that fail are logged and counted; the rest are written in
// input order. With cfg.SuppressDuplicates a position already written is
// skipped, and with cfg.MaxFailures set the run stops early once that many
// positions have failed. The returned count is the number of failed
// positions.
func processBatch(cfg *config.Config, r io.Reader) (int, error) {
	fens, err := readFENs(r)
	if err != nil {
		return 0, err
	}

	pool := worker.NewPool(worker.ReportFunc(cfg),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(2*cfg.Workers))
	logf(cfg, 2, "processing %d positions with %d workers", len(fens), pool.NumWorkers())

	var detector *hashing.DuplicateDetector
	if cfg.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(cfg.DuplicateCapacity)
	}

	w := output.NewReportWriter(cfg.OutputFile, cfg, true)
	failed, total := 0, 0
	results := worker.Run(pool, fens, cfg.MaxFailures)
	for _, res := range results {
		if res.Err != nil {
			failed++
			logf(cfg, 1, "%v", res.Err)
			continue
		}
		if detector != nil && detector.CheckAndAdd(res.Report.Signature) {
			logf(cfg, 2, "position %d: duplicate of an earlier position", res.Index)
			continue
		}
		total += res.Report.TotalMoves
		if err := w.WriteReport(res.Report); err != nil {
			return failed, err
		}
	}
	if err := w.Close(); err != nil {
		return failed, err
	}

	logf(cfg, 1, "%d positions, %d failed, %d candidate moves", len(fens), failed, total)
	if pool.IsStopped() {
		logf(cfg, 1, "stopped after %d failures, %d positions skipped", failed, len(fens)-len(results))
	}
	if detector != nil {
		logf(cfg, 1, "%d duplicates skipped", detector.DuplicateCount())
	}
	return failed, nil
}
