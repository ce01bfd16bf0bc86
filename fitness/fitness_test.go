package fitness_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgpkit/lgp/fitness"
	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

// identityProgram builds r[1] = r[0] (copy input to output).
func identityProgram(t *testing.T) *program.Program[float64] {
	t.Helper()

	ops := numeric.Float64Ops{}
	pool := []operation.Operation[float64]{
		operation.New("id", types.Unary, func(a []float64) float64 { return a[0] }),
	}

	regs := register.New[float64](1, 1, nil, nil)
	instructions := []instruction.Instruction[float64]{instruction.New[float64](0, 1, []int{0})}

	p, err := program.New[float64](regs, pool, instructions, []int{1}, ops, 1)
	require.NoError(t, err)

	p.FindEffectiveProgram()

	return p
}

func identityDataset() *fitness.Dataset[float64] {
	return &fitness.Dataset[float64]{
		Samples: []fitness.Sample[float64]{
			{Features: []float64{0}, Target: types.SingleTarget(0.0)},
			{Features: []float64{1}, Target: types.SingleTarget(1.0)},
			{Features: []float64{2}, Target: types.SingleTarget(2.0)},
		},
	}
}

func TestPipeline_Evaluate_PerfectIdentityIsZero(t *testing.T) {
	p := identityProgram(t)
	ds := identityDataset()

	pl := &fitness.Pipeline[float64]{Fn: fitness.NewMSE[float64](numeric.Float64Ops{})}

	result, err := pl.Evaluate(p, ds)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result)
	assert.Equal(t, 0.0, p.Fitness)
}

func TestPipeline_Evaluate_EmptyDataset(t *testing.T) {
	p := identityProgram(t)
	pl := &fitness.Pipeline[float64]{Fn: fitness.NewMSE[float64](numeric.Float64Ops{})}

	_, err := pl.Evaluate(p, &fitness.Dataset[float64]{})
	assert.ErrorIs(t, err, fitness.ErrEmptyDataset)
}

func TestPipeline_Evaluate_ClampsNonFiniteFitness(t *testing.T) {
	p := identityProgram(t)
	ds := identityDataset()

	pl := &fitness.Pipeline[float64]{Fn: func([]types.Output[float64], []types.Target[float64]) float64 {
		return math.Inf(1)
	}}

	result, err := pl.Evaluate(p, ds)
	require.NoError(t, err)
	assert.Equal(t, fitness.UndefinedFitness, result)
}

func TestMAE_SSE_RMSE(t *testing.T) {
	ops := numeric.Float64Ops{}
	outputs := []types.Output[float64]{types.Single(1.0), types.Single(3.0)}
	targets := []types.Target[float64]{types.SingleTarget(0.0), types.SingleTarget(0.0)}

	mae := fitness.NewMAE[float64](ops)
	assert.InDelta(t, 2.0, mae(outputs, targets), 1e-9)

	sse := fitness.NewSSE[float64](ops)
	assert.InDelta(t, 10.0, sse(outputs, targets), 1e-9)

	rmse := fitness.NewRMSE[float64](ops)
	assert.InDelta(t, math.Sqrt(5.0), rmse(outputs, targets), 1e-9)
}

func TestClassificationError(t *testing.T) {
	ops := numeric.Float64Ops{}
	classify := func(v float64) int {
		if v >= 0.5 {
			return 1
		}

		return 0
	}

	fn := fitness.NewClassificationError[float64](ops, classify)

	outputs := []types.Output[float64]{types.Single(0.9), types.Single(0.1)}
	targets := []types.Target[float64]{types.SingleTarget(1.0), types.SingleTarget(1.0)}

	assert.Equal(t, 1.0, fn(outputs, targets))
}

func TestThresholdClassificationError(t *testing.T) {
	ops := numeric.Float64Ops{}
	fn := fitness.NewThresholdClassificationError[float64](ops, 0.5)

	outputs := []types.Output[float64]{types.Single(0.9), types.Single(0.1)}
	targets := []types.Target[float64]{types.SingleTarget(1.0), types.SingleTarget(1.0)}

	assert.Equal(t, 1.0, fn(outputs, targets))
}
