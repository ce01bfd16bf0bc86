// Package fitness implements the fitness evaluation pipeline: mapping a
// program over a dataset of (features, target) cases to a scalar fitness
// value, plus the built-in fitness functions.
package fitness

import (
	"errors"

	"github.com/lgpkit/lgp/types"
)

// ErrEmptyDataset is returned when a pipeline is asked to evaluate a
// program over zero samples.
var ErrEmptyDataset = errors.New("fitness: dataset has no samples")

// ErrFeatureWidth is returned when a dataset's samples do not share a
// common feature count.
var ErrFeatureWidth = errors.New("fitness: dataset samples do not share a feature count")

// Sample is a single fitness case: a feature vector and its expected
// target.
type Sample[T any] struct {
	Features []T
	Target   types.Target[T]
}

// Dataset is an ordered sequence of samples. All samples must share a
// feature count and target shape.
type Dataset[T any] struct {
	Samples []Sample[T]
}

// NumFeatures returns the feature count of the dataset, or 0 if empty.
func (d *Dataset[T]) NumFeatures() int {
	if len(d.Samples) == 0 {
		return 0
	}

	return len(d.Samples[0].Features)
}

// Validate checks that every sample shares the first sample's feature
// count.
func (d *Dataset[T]) Validate() error {
	if len(d.Samples) == 0 {
		return ErrEmptyDataset
	}

	n := len(d.Samples[0].Features)

	for _, s := range d.Samples[1:] {
		if len(s.Features) != n {
			return ErrFeatureWidth
		}
	}

	return nil
}
