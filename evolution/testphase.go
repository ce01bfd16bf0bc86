package evolution

import (
	"github.com/lgpkit/lgp/fitness"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

// TestPhase runs best over every sample of ds, resetting registers and
// loading features before each execution, and returns the parallel
// (predicted, expected) collections for the caller to score.
func TestPhase[T register.Numeric](best *program.Program[T], ds *fitness.Dataset[T]) ([]types.Output[T], []types.Target[T], error) {
	best.FindEffectiveProgram()

	predicted := make([]types.Output[T], len(ds.Samples))
	expected := make([]types.Target[T], len(ds.Samples))

	for i, sample := range ds.Samples {
		best.Registers.Reset()

		if err := best.Registers.WriteSample(sample.Features); err != nil {
			return nil, nil, err
		}

		if err := best.Execute(); err != nil {
			return nil, nil, err
		}

		values, err := best.Outputs()
		if err != nil {
			return nil, nil, err
		}

		predicted[i] = types.Multiple(values)
		expected[i] = sample.Target
	}

	return predicted, expected, nil
}
