package mutation

import (
	stdrand "math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/register"
)

// NewGaussianConstantMutation builds the default constant-mutation
// function: additive noise drawn from Normal(0, sigma), seeded
// deterministically from source so a fixed run seed reproduces the same
// constant perturbations.
func NewGaussianConstantMutation[T register.Numeric](ops numeric.Arithmetic[T], sigma float64, source *rng.Source) ConstantMutationFunction[T] {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: sigma,
		Src:   stdrand.New(stdrand.NewSource(source.Int64())),
	}

	return func(current T) T {
		noise := dist.Rand()

		return ops.Add(current, ops.FromFloat64(noise))
	}
}
