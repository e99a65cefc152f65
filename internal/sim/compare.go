package sim

import (
	"context"
	"sync"

	"github.com/san-kum/heatsim/internal/material"
	"github.com/san-kum/heatsim/internal/solver"
)

// Comparison runs the same domain once per material, each with its own
// solver instance, and collects the per-material results.
type Comparison struct {
	kind      Kind
	params    solver.Params
	materials []material.Material
}

func NewComparison(kind Kind, p solver.Params, materials []material.Material) *Comparison {
	if len(materials) == 0 {
		materials = material.All
	}
	return &Comparison{kind: kind, params: p, materials: materials}
}

type ComparisonEntry struct {
	Material material.Material
	Result   *Result
}

func (c *Comparison) Run(ctx context.Context, cfg RunConfig) ([]ComparisonEntry, error) {
	entries := make([]ComparisonEntry, len(c.materials))
	errs := make([]error, len(c.materials))

	var wg sync.WaitGroup
	for i, mat := range c.materials {
		wg.Add(1)
		go func(idx int, mat material.Material) {
			defer wg.Done()

			p := c.params
			p.Material = mat

			session, err := NewSession(c.kind, p)
			if err != nil {
				errs[idx] = err
				return
			}

			runner := NewRunner(session)
			runner.AddMetric(NewSweepCount(session))

			res, err := runner.Run(ctx, cfg)
			entries[idx] = ComparisonEntry{Material: mat, Result: res}
			errs[idx] = err
		}(i, mat)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}
