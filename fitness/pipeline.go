package fitness

import (
	"math"

	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

// UndefinedFitness is the sentinel a pipeline clamps any non-finite raw
// fitness value to, so ordering and comparison remain total.
const UndefinedFitness = 1e9

// Function maps a program's outputs and the dataset's targets, one pair
// per case, to a scalar fitness. Lower is better throughout this package.
type Function[T register.Numeric] func(outputs []types.Output[T], targets []types.Target[T]) float64

// Pipeline evaluates a program over a Dataset and caches the resulting
// fitness on the program.
type Pipeline[T register.Numeric] struct {
	Fn Function[T]
}

// Evaluate resets the program's registers, loads each sample's features,
// executes the program, and extracts outputs before handing the
// (outputs, targets) collection to Fn. The result is clamped to
// UndefinedFitness if non-finite and cached on p.Fitness.
func (pl *Pipeline[T]) Evaluate(prog *program.Program[T], ds *Dataset[T]) (float64, error) {
	if len(ds.Samples) == 0 {
		return 0, ErrEmptyDataset
	}

	outputs := make([]types.Output[T], len(ds.Samples))
	targets := make([]types.Target[T], len(ds.Samples))

	for i, sample := range ds.Samples {
		prog.Registers.Reset()

		if err := prog.Registers.WriteSample(sample.Features); err != nil {
			return 0, err
		}

		if err := prog.Execute(); err != nil {
			return 0, err
		}

		values, err := prog.Outputs()
		if err != nil {
			return 0, err
		}

		outputs[i] = types.Multiple(values)
		targets[i] = sample.Target
	}

	raw := pl.Fn(outputs, targets)

	result := raw
	if !isFiniteFloat64(raw) {
		result = UndefinedFitness
	}

	prog.Fitness = result

	return result, nil
}

func isFiniteFloat64(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
