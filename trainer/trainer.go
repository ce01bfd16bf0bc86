// Package trainer runs an evolutionary run R times and aggregates the
// results: sequentially, or concurrently across
// goroutines with deterministic per-run RNG derivation so the two variants
// agree for a fixed parent seed.
package trainer

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgpkit/lgp/evolution"
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
)

// RunFactory builds a fresh population and a fresh evolution.Config for one
// run, given that run's own RNG source. It must not share any mutable state
// with another run's factory output.
type RunFactory[T register.Numeric] func(source *rng.Source) ([]*program.Program[T], evolution.Config[T])

// ProgressUpdate is broadcast on the optional Progress channel after each
// run completes.
type ProgressUpdate[T register.Numeric] struct {
	RunIndex int
	Fraction float64
	Result   *evolution.Result[T]
}

// Trainer runs NewRun NumberOfRuns times, deriving each run's RNG from
// ParentSeed via rng.Derive. Progress, if non-nil, receives a latest-value
// update after every run: a full channel has its stale value dropped rather
// than blocking the run that just finished.
type Trainer[T register.Numeric] struct {
	NumberOfRuns int
	ParentSeed   uint64
	NewRun       RunFactory[T]
	Progress     chan ProgressUpdate[T]
}

// RunSequential executes runs in order, 0..NumberOfRuns-1, returning as soon
// as any run errors.
func (tr *Trainer[T]) RunSequential(ctx context.Context) ([]*evolution.Result[T], error) {
	results := make([]*evolution.Result[T], tr.NumberOfRuns)

	for i := 0; i < tr.NumberOfRuns; i++ {
		source := rng.Derive(tr.ParentSeed, i)
		population, cfg := tr.NewRun(source)

		result, err := evolution.Run(ctx, population, cfg)
		if err != nil {
			return nil, err
		}

		results[i] = result
		tr.broadcast(i, float64(i+1)/float64(tr.NumberOfRuns), result)
	}

	return results, nil
}

// RunParallel launches all NumberOfRuns runs as independent goroutines and
// waits for every one to finish. Each run owns its own RNG (derived the
// same way as RunSequential) and its own population and config, so a fixed
// parent seed yields the same per-run results as the sequential variant
//.
func (tr *Trainer[T]) RunParallel(ctx context.Context) ([]*evolution.Result[T], error) {
	results := make([]*evolution.Result[T], tr.NumberOfRuns)
	errs := make([]error, tr.NumberOfRuns)

	var (
		wg        sync.WaitGroup
		completed int64
	)

	for i := 0; i < tr.NumberOfRuns; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			source := rng.Derive(tr.ParentSeed, i)
			population, cfg := tr.NewRun(source)

			result, err := evolution.Run(ctx, population, cfg)
			if err != nil {
				errs[i] = err

				return
			}

			results[i] = result

			n := atomic.AddInt64(&completed, 1)
			tr.broadcast(i, float64(n)/float64(tr.NumberOfRuns), result)
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

func (tr *Trainer[T]) broadcast(runIndex int, fraction float64, result *evolution.Result[T]) {
	if tr.Progress == nil {
		return
	}

	update := ProgressUpdate[T]{RunIndex: runIndex, Fraction: fraction, Result: result}

	select {
	case tr.Progress <- update:
		return
	default:
	}

	// Channel full: drop the stale pending update and retry once, non-
	// blocking, giving latest-value semantics rather than backpressure on
	// the run that just finished.
	select {
	case <-tr.Progress:
	default:
	}

	select {
	case tr.Progress <- update:
	default:
	}
}

// Best returns the overall best program across every run's result, or nil
// if results is empty.
func Best[T register.Numeric](results []*evolution.Result[T]) *program.Program[T] {
	var best *program.Program[T]

	for _, r := range results {
		if r == nil {
			continue
		}

		if best == nil || r.Best.Fitness < best.Fitness {
			best = r.Best
		}
	}

	return best
}
