package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/turingmul/internal/turing"
)

// Pair is one multiplication job.
type Pair struct {
	Multiplier   int
	Multiplicand int
}

// Grid returns every pair with both operands in [0, max].
func Grid(max int) []Pair {
	pairs := make([]Pair, 0, (max+1)*(max+1))
	for a := 0; a <= max; a++ {
		for b := 0; b <= max; b++ {
			pairs = append(pairs, Pair{a, b})
		}
	}
	return pairs
}

// Sweep runs one machine per pair on up to workers goroutines. Each machine
// gets its own runner and fresh metrics from newMetrics (which may be nil).
// Results keep the order of pairs.
func Sweep(ctx context.Context, pairs []Pair, workers int, newMetrics func() []Metric) ([]*Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*Result, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range pairs {
		g.Go(func() error {
			m, err := turing.New(p.Multiplier, p.Multiplicand)
			if err != nil {
				return fmt.Errorf("pair %d x %d: %w", p.Multiplier, p.Multiplicand, err)
			}
			r := New()
			if newMetrics != nil {
				for _, mt := range newMetrics() {
					r.AddMetric(mt)
				}
			}
			res, err := r.Run(ctx, m, Config{})
			if err != nil {
				return fmt.Errorf("pair %d x %d: %w", p.Multiplier, p.Multiplicand, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
