// Package metrics computes post-training test-phase scores — Pearson and
// Spearman correlation, MSE/RMSE/MAE — over a trained program's predictions
// against a dataset's expected values.
package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics holds evaluation metrics for a program's test-phase predictions.
type Metrics struct {
	PearsonCorrelation  float64
	SpearmanCorrelation float64
	MSE                 float64
	RMSE                float64
	MAE                 float64
}

// Compute scores predictions against targets, two equal-length series of a
// single-output program's test-phase outputs. It returns nil if the
// lengths mismatch or either is empty.
func Compute(predictions, targets []float64) *Metrics {
	if len(predictions) != len(targets) || len(predictions) == 0 {
		return nil
	}

	mse := meanSquaredError(predictions, targets)

	return &Metrics{
		PearsonCorrelation:  PearsonCorrelation(predictions, targets),
		SpearmanCorrelation: SpearmanCorrelation(predictions, targets),
		MSE:                 mse,
		RMSE:                math.Sqrt(mse),
		MAE:                 meanAbsoluteError(predictions, targets),
	}
}

// PearsonCorrelation computes the Pearson correlation coefficient between x
// and y via gonum's unweighted estimator.
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}

	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return 0
	}

	return stat.Correlation(x, y, nil)
}

// SpearmanCorrelation computes the Spearman rank correlation: the Pearson
// correlation of x and y's ranks, with ties broken by averaging.
func SpearmanCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return math.NaN()
	}

	return PearsonCorrelation(ranks(x), ranks(y))
}

// ranks converts values to their 1-based ranks, averaging ranks across tied
// runs.
func ranks(values []float64) []float64 {
	type indexed struct {
		index int
		value float64
	}

	sorted := make([]indexed, len(values))
	for i, v := range values {
		sorted[i] = indexed{index: i, value: v}
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i].value < sorted[j].value })

	out := make([]float64, len(values))

	i := 0
	for i < len(sorted) {
		j := i
		for j < len(sorted) && sorted[j].value == sorted[i].value {
			j++
		}

		avgRank := float64(i+j-1)/2.0 + 1.0

		for k := i; k < j; k++ {
			out[sorted[k].index] = avgRank
		}

		i = j
	}

	return out
}

func meanSquaredError(predictions, targets []float64) float64 {
	errs := make([]float64, len(predictions))

	for i := range predictions {
		d := predictions[i] - targets[i]
		errs[i] = d * d
	}

	return stat.Mean(errs, nil)
}

func meanAbsoluteError(predictions, targets []float64) float64 {
	errs := make([]float64, len(predictions))

	for i := range predictions {
		errs[i] = math.Abs(predictions[i] - targets[i])
	}

	return stat.Mean(errs, nil)
}
