package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/types"
)

func TestOperation_ArityChecking(t *testing.T) {
	add := operation.New("+", types.Binary, func(a []float64) float64 { return a[0] + a[1] })

	v, err := add.Apply([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = add.Apply([]float64{1})
	require.ErrorIs(t, err, operation.ErrArity)

	_, err = add.Apply([]float64{1, 2, 3})
	require.ErrorIs(t, err, operation.ErrArity)
}

func TestOperation_BranchFlag(t *testing.T) {
	add := operation.New("+", types.Binary, func(a []float64) float64 { return a[0] + a[1] })
	branch := operation.NewBranch("if(>)", types.Binary, func(a []float64) float64 { return 1 })

	assert.False(t, add.IsBranch())
	assert.True(t, branch.IsBranch())
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := operation.NewRegistry[float64]()
	r.Register("add", operation.New("+", types.Binary, func(a []float64) float64 { return a[0] + a[1] }))

	_, err := r.Get("sub")
	require.ErrorIs(t, err, operation.ErrUnknownOperation)

	_, err = r.Resolve([]string{"add", "sub"})
	require.ErrorIs(t, err, operation.ErrUnknownOperation)

	pool, err := r.Resolve([]string{"add"})
	require.NoError(t, err)
	assert.Len(t, pool, 1)
}

func TestBuiltinRegistry(t *testing.T) {
	r := operation.BuiltinRegistry[float64](numeric.Float64Ops{})

	add, err := r.Get("add")
	require.NoError(t, err)

	v, err := add.Apply([]float64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	branch, err := r.Get("branch_gt")
	require.NoError(t, err)
	assert.True(t, branch.IsBranch())

	v, err = branch.Apply([]float64{3, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}
