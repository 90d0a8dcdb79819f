package worker

import (
	"sort"

	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/game"
	"github.com/lgbarn/chessmoves-go/internal/output"
)

// ReportFunc returns a ProcessFunc that loads each FEN into a fresh
// environment and builds its report according to cfg.
func ReportFunc(cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		env, err := game.NewEnvironmentFromFEN(item.FEN)
		if err != nil {
			return ProcessResult{Index: item.Index, Err: errors.Wrapf(err, "position %d", item.Index)}
		}
		r, err := output.BuildReport(env, cfg)
		if err != nil {
			return ProcessResult{Index: item.Index, Err: errors.Wrapf(err, "position %d", item.Index)}
		}
		r.Index = item.Index
		return ProcessResult{Index: item.Index, Report: r}
	}
}

// Run starts the pool, submits every FEN, closes the pool and returns the
// results in input order. With maxFailures > 0 the pool is stopped once
// that many items have failed; items not yet started are then skipped and
// have no result.
func Run(p *Pool, fens []string, maxFailures int) []ProcessResult {
	p.Start()
	go func() {
		for i, fen := range fens {
			if p.IsStopped() {
				break
			}
			p.Submit(WorkItem{FEN: fen, Index: i + 1})
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(fens))
	failed := 0
	for r := range p.Results() {
		results = append(results, r)
		if r.Err == nil {
			continue
		}
		failed++
		if maxFailures > 0 && failed >= maxFailures {
			p.Stop()
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
