package fitness

import (
	"math"

	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

// NewMAE builds a mean-absolute-error fitness function over single-output
// programs.
func NewMAE[T register.Numeric](ops numeric.Arithmetic[T]) Function[T] {
	return aggregate(ops, func(pred, target float64) float64 {
		return math.Abs(pred - target)
	}, mean)
}

// NewSSE builds a sum-of-squared-errors fitness function.
func NewSSE[T register.Numeric](ops numeric.Arithmetic[T]) Function[T] {
	return aggregate(ops, squaredError, sum)
}

// NewMSE builds a mean-squared-error fitness function.
func NewMSE[T register.Numeric](ops numeric.Arithmetic[T]) Function[T] {
	return aggregate(ops, squaredError, mean)
}

// NewRMSE builds a root-mean-squared-error fitness function.
func NewRMSE[T register.Numeric](ops numeric.Arithmetic[T]) Function[T] {
	mse := NewMSE(ops)

	return func(outputs []types.Output[T], targets []types.Target[T]) float64 {
		return math.Sqrt(mse(outputs, targets))
	}
}

// NewClassificationError builds a fitness function that counts
// discrepancies after mapping each prediction and target through classify.
func NewClassificationError[T register.Numeric](ops numeric.Arithmetic[T], classify func(float64) int) Function[T] {
	return func(outputs []types.Output[T], targets []types.Target[T]) float64 {
		var mismatches float64

		for i := range outputs {
			pred := ops.ToFloat64(outputs[i].Values[0])
			target := ops.ToFloat64(targets[i].Values[0])

			if classify(pred) != classify(target) {
				mismatches++
			}
		}

		return mismatches
	}
}

// NewThresholdClassificationError builds a fitness function that counts
// cases where the prediction and target fall on opposite sides of
// threshold.
func NewThresholdClassificationError[T register.Numeric](ops numeric.Arithmetic[T], threshold float64) Function[T] {
	classify := func(v float64) int {
		if v >= threshold {
			return 1
		}

		return 0
	}

	return NewClassificationError(ops, classify)
}

func squaredError(pred, target float64) float64 {
	d := pred - target

	return d * d
}

func aggregate[T register.Numeric](
	ops numeric.Arithmetic[T],
	perCase func(pred, target float64) float64,
	reduce func([]float64) float64,
) Function[T] {
	return func(outputs []types.Output[T], targets []types.Target[T]) float64 {
		errs := make([]float64, len(outputs))

		for i := range outputs {
			pred := ops.ToFloat64(outputs[i].Values[0])
			target := ops.ToFloat64(targets[i].Values[0])
			errs[i] = perCase(pred, target)
		}

		return reduce(errs)
	}
}

func sum(vs []float64) float64 {
	var total float64
	for _, v := range vs {
		total += v
	}

	return total
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}

	return sum(vs) / float64(len(vs))
}
