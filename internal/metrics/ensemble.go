package metrics

import (
	"context"
	"sync"

	"github.com/san-kum/bonsai/internal/bonsai"
)

// Ensemble grows one tree per seed in parallel. Run i uses seed
// SeedStart+i and its own random source and metric set, so results match a
// sequential run seed by seed.
type Ensemble struct {
	Config    bonsai.Config
	Runs      int
	SeedStart int64
	// Metrics builds the metric set for one run. Default is used when nil.
	Metrics func() []Metric
}

func (e *Ensemble) Run(ctx context.Context) ([][]Sample, error) {
	if err := e.Config.Validate(); err != nil {
		return nil, err
	}
	newMetrics := e.Metrics
	if newMetrics == nil {
		newMetrics = Default
	}

	results := make([][]Sample, e.Runs)
	errs := make([]error, e.Runs)

	var wg sync.WaitGroup
	for i := 0; i < e.Runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			tree := bonsai.Grow(e.Config, bonsai.NewRand(e.SeedStart+int64(idx)))
			results[idx] = Collect(tree, newMetrics()...)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
