package dps

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/mapleidle/internal/data"
	"github.com/udisondev/mapleidle/internal/model"
	"github.com/udisondev/mapleidle/internal/stat"
)

// WhatIf evaluates a hypothetical stat change without touching the
// caller's block. mutate receives a deep clone; eval scores it. The
// clone is dropped on every path, including an eval error, so a
// failed evaluation can never leak speculative stats into later
// calculations.
func WhatIf(base *stat.Block, mutate func(*stat.Block), eval func(*stat.Block) (float64, error)) (float64, error) {
	scratch := base.Clone()
	if mutate != nil {
		mutate(scratch)
	}
	return eval(scratch)
}

// Candidate is one hypothetical equipped-artifact set to score.
type Candidate struct {
	Label    string
	Override map[string]struct{}
}

// CandidateResult pairs a candidate with its DPS.
type CandidateResult struct {
	Label string
	DPS   float64
}

// BatchEvaluate scores every candidate build concurrently. Each
// candidate aggregates independently (Aggregate never mutates the
// character), results come back in candidate order, and the first
// error cancels the remaining work.
func BatchEvaluate(ctx context.Context, c *model.Character, mode data.CombatMode, chapter int, candidates []Candidate) ([]CandidateResult, error) {
	results := make([]CandidateResult, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Evaluate(c, mode, chapter, cand.Override)
			if err != nil {
				return err
			}
			results[i] = CandidateResult{Label: cand.Label, DPS: res.Total}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
