package mutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgpkit/lgp/generate"
	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/mutation"
	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

func testPool() []operation.Operation[float64] {
	ops := numeric.Float64Ops{}

	return []operation.Operation[float64]{
		operation.New("+", types.Binary, func(a []float64) float64 { return ops.Add(a[0], a[1]) }),
		operation.New("-", types.Binary, func(a []float64) float64 { return ops.Sub(a[0], a[1]) }),
		operation.New("id", types.Unary, func(a []float64) float64 { return a[0] }),
	}
}

func buildProgram(t *testing.T, length int, constants []float64) *program.Program[float64] {
	t.Helper()

	ops := numeric.Float64Ops{}
	pool := testPool()
	regs := register.New[float64](2, 2, constants, nil)

	instructions := make([]instruction.Instruction[float64], length)
	for i := range instructions {
		// destination 2 matches the output register, so the last instruction
		// in the sequence is always effective.
		instructions[i] = instruction.New[float64](0, 2, []int{0, 1})
	}

	p, err := program.New[float64](regs, pool, instructions, []int{2}, ops, 1)
	require.NoError(t, err)

	return p
}

func TestMacro_LengthStaysWithinBounds(t *testing.T) {
	p := buildProgram(t, 10, nil)
	source := rng.New(1, 1)
	generator := &generate.InstructionGenerator[float64]{Pool: p.Operations, Registers: p.Registers, ConstantsRate: 0, RNG: source}

	m := &mutation.Macro[float64]{
		InsertionRate:    0.5,
		MinProgramLength: 10,
		MaxProgramLength: 10,
		Generator:        generator,
		RNG:              source,
	}

	for i := 0; i < 50; i++ {
		require.NoError(t, m.Mutate(p))
		assert.Equal(t, 10, p.Len())
	}
}

func TestMacro_InsertGrowsLength(t *testing.T) {
	p := buildProgram(t, 5, nil)
	// r2 = r2 + r0 keeps calculation register r2 live at every insertion
	// point; with buildProgram's r2 = r0 + r1 no calculation register is
	// live before the drawn point, and the insertion would be skipped.
	for i := range p.Instructions {
		p.Instructions[i] = instruction.New[float64](0, 2, []int{2, 0})
	}

	source := rng.New(2, 2)
	generator := &generate.InstructionGenerator[float64]{Pool: p.Operations, Registers: p.Registers, ConstantsRate: 0, RNG: source}

	m := &mutation.Macro[float64]{
		InsertionRate:    1.0, // always try insert
		MinProgramLength: 2,
		MaxProgramLength: 20,
		Generator:        generator,
		RNG:              source,
	}

	require.NoError(t, m.Mutate(p))
	assert.Equal(t, 6, p.Len())
}

func TestMicro_RegisterVariant(t *testing.T) {
	p := buildProgram(t, 3, nil)
	p.FindEffectiveProgram()
	source := rng.New(4, 4)
	generator := &generate.InstructionGenerator[float64]{Pool: p.Operations, Registers: p.Registers, ConstantsRate: 0, RNG: source}

	m := &mutation.Micro[float64]{
		RegisterMutationRate: 1.0,
		OperatorMutationRate: 0,
		Generator:            generator,
		RNG:                  source,
	}

	require.NoError(t, m.Mutate(p))
	p.FindEffectiveProgram()
	assert.NotEmpty(t, p.EffectiveIndices())
}

func TestMicro_ConstantVariantAppliesNoiseFunction(t *testing.T) {
	p := buildProgram(t, 1, []float64{10})
	// make the sole instruction reference the constant register directly.
	p.Instructions[0] = instruction.New[float64](0, 2, []int{0, 4})
	source := rng.New(5, 5)
	generator := &generate.InstructionGenerator[float64]{Pool: p.Operations, Registers: p.Registers, ConstantsRate: 0, RNG: source}

	called := false

	m := &mutation.Micro[float64]{
		RegisterMutationRate: 0,
		OperatorMutationRate: 0,
		Generator:            generator,
		ConstantMutationFunction: func(current float64) float64 {
			called = true

			return current + 1
		},
		RNG: source,
	}

	require.NoError(t, m.Mutate(p))
	assert.True(t, called)

	v, err := p.Registers.Get(4)
	require.NoError(t, err)
	assert.Equal(t, 11.0, v)
}

func TestMicro_NoOpOnEmptyEffectiveSet(t *testing.T) {
	p := buildProgram(t, 0, nil)
	source := rng.New(1, 1)
	generator := &generate.InstructionGenerator[float64]{Pool: p.Operations, Registers: p.Registers, ConstantsRate: 0, RNG: source}

	m := &mutation.Micro[float64]{RegisterMutationRate: 1, Generator: generator, RNG: source}

	require.NoError(t, m.Mutate(p))
}
