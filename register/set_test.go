package register_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

func TestSet_ConstantWriteDiscipline(t *testing.T) {
	s := register.New[float64](1, 1, []float64{42.0}, nil)

	err := s.Set(2, 0.0)
	require.ErrorIs(t, err, register.ErrConstantWrite)

	err = s.Overwrite(2, 0.0)
	require.NoError(t, err)

	v, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestSet_ResetPreservesConstants(t *testing.T) {
	s := register.New[float64](1, 1, []float64{42.0}, nil)

	require.NoError(t, s.Set(0, 5.0))
	require.NoError(t, s.Set(1, 7.0))

	s.Reset()

	v0, _ := s.Get(0)
	v1, _ := s.Get(1)
	v2, _ := s.Get(2)
	assert.Equal(t, 0.0, v0)
	assert.Equal(t, 0.0, v1)
	assert.Equal(t, 42.0, v2)
}

func TestSet_RegisterType(t *testing.T) {
	s := register.New[float64](2, 3, []float64{1, 2}, nil)

	assert.Equal(t, types.Input, s.RegisterType(0))
	assert.Equal(t, types.Input, s.RegisterType(1))
	assert.Equal(t, types.Calculation, s.RegisterType(2))
	assert.Equal(t, types.Calculation, s.RegisterType(4))
	assert.Equal(t, types.Constant, s.RegisterType(5))
	assert.Equal(t, types.Constant, s.RegisterType(6))
	assert.Equal(t, types.Unknown, s.RegisterType(7))
	assert.Equal(t, types.Unknown, s.RegisterType(-1))
}

func TestSet_OutOfBounds(t *testing.T) {
	s := register.New[float64](1, 1, nil, nil)

	_, err := s.Get(5)
	require.ErrorIs(t, err, register.ErrOutOfRange)

	err = s.Set(5, 1.0)
	require.ErrorIs(t, err, register.ErrOutOfRange)
}

func TestSet_WriteSample(t *testing.T) {
	s := register.New[float64](3, 1, nil, nil)

	require.NoError(t, s.WriteSample([]float64{1, 2, 3}))

	v0, _ := s.Get(0)
	v1, _ := s.Get(1)
	v2, _ := s.Get(2)
	assert.Equal(t, []float64{1, 2, 3}, []float64{v0, v1, v2})

	err := s.WriteSample([]float64{1, 2})
	require.ErrorIs(t, err, register.ErrSampleWidth)
}

func TestSet_Clone(t *testing.T) {
	s := register.New[float64](1, 1, []float64{9}, nil)
	require.NoError(t, s.Set(0, 3.0))

	clone := s.Clone()
	require.NoError(t, clone.Set(0, 100.0))

	original, _ := s.Get(0)
	cloned, _ := clone.Get(0)
	assert.Equal(t, 3.0, original)
	assert.Equal(t, 100.0, cloned)
}

func TestSet_CustomDefaultValueProvider(t *testing.T) {
	s := register.New[float64](1, 1, nil, register.ConstValueProvider[float64]{Value: -1})
	s.Reset()

	v, _ := s.Get(0)
	assert.Equal(t, -1.0, v)
}
