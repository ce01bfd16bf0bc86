// Package evolution implements the steady-state generational loop:
// selection, recombination, mutation, evaluation, population merge, and
// per-generation statistics, plus the post-training test phase.
package evolution

import (
	"context"

	"github.com/lgpkit/lgp/fitness"
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/mutation"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/recombination"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/selection"
)

// Config bundles every operator and parameter a run needs. All fields are
// required; RNG must be owned exclusively by this run.
type Config[T register.Numeric] struct {
	TournamentSize    int
	CrossoverRate     float64
	MicroMutationRate float64
	MacroMutationRate float64
	Generations       int
	StoppingCriterion float64

	CrossoverOptions recombination.Options
	Macro            *mutation.Macro[T]
	Micro            *mutation.Micro[T]
	Fitness          *fitness.Pipeline[T]
	Dataset          *fitness.Dataset[T]

	RNG *rng.Source
}

// Result is what a completed (or cancelled) run returns.
type Result[T register.Numeric] struct {
	Best       *program.Program[T]
	Population []*program.Program[T]
	Statistics []Stats
}

// Run executes the steady-state loop over population, which is consumed and
// replaced generation by generation; the caller's slice is not mutated in
// place (a new slice is returned inside Result). Cancellation is cooperative:
// ctx is checked once at the top of each generation, and on
// cancellation Run returns the current best and the statistics gathered so
// far, with a nil error.
func Run[T register.Numeric](ctx context.Context, population []*program.Program[T], cfg Config[T]) (*Result[T], error) {
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}

	if len(population) < 2*cfg.TournamentSize {
		return nil, ErrPopulationTooSmall
	}

	for _, p := range population {
		p.FindEffectiveProgram()

		if _, err := cfg.Fitness.Evaluate(p, cfg.Dataset); err != nil {
			return nil, err
		}
	}

	best := bestOf(population)
	statistics := make([]Stats, 0, cfg.Generations+1)

	for g := 0; g < cfg.Generations; g++ {
		select {
		case <-ctx.Done():
			return &Result[T]{Best: best, Population: population, Statistics: statistics}, nil
		default:
		}

		if best.Fitness <= cfg.StoppingCriterion {
			statistics = append(statistics, computeStats(g, population, best))

			return &Result[T]{Best: best, Population: population, Statistics: statistics}, nil
		}

		remaining := make([]*program.Program[T], len(population))
		copy(remaining, population)

		children := make([]*program.Program[T], 0, len(population))

		// Loop until remaining can no longer supply a tournament (rather than a
		// fixed pair count): BinaryTournament removes 2 individuals per call but
		// requires a pool of at least 2*TournamentSize, so a fixed len(population)/2
		// count always attempts one call too many and discards its pair.
		for len(remaining) >= 2*cfg.TournamentSize {
			winners, rest, err := selection.BinaryTournament(remaining, cfg.TournamentSize, cfg.RNG)
			if err != nil {
				break
			}

			remaining = rest

			mother, father := winners[0], winners[1]

			if cfg.RNG.Chance(cfg.CrossoverRate) {
				// Bounded-retry crossover no-ops on ErrNoValidSegment; that is
				// not a run-level failure.
				_ = recombination.Crossover(mother, father, cfg.CrossoverOptions, cfg.RNG)
			}

			if err := mutateIndividual(mother, &cfg); err != nil {
				return nil, err
			}

			if err := mutateIndividual(father, &cfg); err != nil {
				return nil, err
			}

			children = append(children, mother, father)
		}

		for _, child := range children {
			// Crossover invalidates the effective-instruction cache but does not
			// recompute it; mutation recomputes it before changing the program
			// and invalidates it again afterwards. Recompute unconditionally so
			// evaluation never executes a stale cache.
			child.FindEffectiveProgram()

			if _, err := cfg.Fitness.Evaluate(child, cfg.Dataset); err != nil {
				return nil, err
			}

			if child.Fitness < best.Fitness {
				best = child
			}
		}

		population = append(remaining, children...)

		statistics = append(statistics, computeStats(g, population, best))
	}

	return &Result[T]{Best: best, Population: population, Statistics: statistics}, nil
}

// mutateIndividual applies at most one mutation to ind: micro with
// probability cfg.MicroMutationRate, else macro with probability
// cfg.MacroMutationRate.
func mutateIndividual[T register.Numeric](ind *program.Program[T], cfg *Config[T]) error {
	if cfg.RNG.Chance(cfg.MicroMutationRate) {
		return cfg.Micro.Mutate(ind)
	}

	if cfg.RNG.Chance(cfg.MacroMutationRate) {
		return cfg.Macro.Mutate(ind)
	}

	return nil
}

func bestOf[T register.Numeric](population []*program.Program[T]) *program.Program[T] {
	best := population[0]

	for _, p := range population[1:] {
		if p.Fitness < best.Fitness {
			best = p
		}
	}

	return best
}
