package program_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

// buildBranchProgram constructs the four-instruction, one-branch scenario:
//
//	I0: r3 = r0 + r1           (effective: feeds I2 through r3)
//	I1: if (r2 > r3)           (effective: guards I2)
//	I2: r3 = r3 * r3           (effective: writes the output register)
//	I3: r4 = sin(r3)           (dead: r4 is never read)
//
// with output register r3.
func buildBranchProgram(t *testing.T) *program.Program[float64] {
	t.Helper()

	ops := numeric.Float64Ops{}
	pool := []operation.Operation[float64]{
		operation.New("+", types.Binary, func(a []float64) float64 { return ops.Add(a[0], a[1]) }),
		operation.NewBranch("if(>)", types.Binary, func(a []float64) float64 {
			if ops.GreaterThan(a[0], a[1]) {
				return 1
			}

			return 0
		}),
		operation.New("*", types.Binary, func(a []float64) float64 { return ops.Mul(a[0], a[1]) }),
		operation.New("sin", types.Unary, func(a []float64) float64 { return a[0] }),
	}

	regs := register.New[float64](3, 2, nil, nil)

	instructions := []instruction.Instruction[float64]{
		instruction.New[float64](0, 3, []int{0, 1}),
		instruction.New[float64](1, 4, []int{2, 3}),
		instruction.New[float64](2, 3, []int{3, 3}),
		instruction.New[float64](3, 4, []int{3}),
	}

	p, err := program.New[float64](regs, pool, instructions, []int{3}, ops, 1)
	require.NoError(t, err)

	return p
}

// buildProgramWithConstants constructs a one-instruction program that reads
// two constant registers (r3 = 2.5, r4 = 4), used to verify constant values
// survive C export.
func buildProgramWithConstants(t *testing.T) *program.Program[float64] {
	t.Helper()

	ops := numeric.Float64Ops{}
	pool := []operation.Operation[float64]{
		operation.New("+", types.Binary, func(a []float64) float64 { return ops.Add(a[0], a[1]) }),
	}

	regs := register.New[float64](2, 1, []float64{2.5, 4}, nil)

	instructions := []instruction.Instruction[float64]{
		instruction.New[float64](0, 2, []int{3, 4}),
	}

	p, err := program.New[float64](regs, pool, instructions, []int{2}, ops, 1)
	require.NoError(t, err)

	return p
}

func TestProgram_New_RejectsEmptyOutputs(t *testing.T) {
	ops := numeric.Float64Ops{}
	regs := register.New[float64](1, 1, nil, nil)

	_, err := program.New[float64](regs, nil, nil, nil, ops, 1)
	assert.ErrorIs(t, err, program.ErrNoOutputs)
}

func TestProgram_New_RejectsOutOfRangeRegister(t *testing.T) {
	ops := numeric.Float64Ops{}
	regs := register.New[float64](1, 1, nil, nil)
	pool := []operation.Operation[float64]{operation.New("id", types.Unary, func(a []float64) float64 { return a[0] })}

	instructions := []instruction.Instruction[float64]{instruction.New[float64](0, 9, []int{0})}

	_, err := program.New[float64](regs, pool, instructions, []int{0}, ops, 1)
	assert.ErrorIs(t, err, program.ErrRegisterIndex)
}

func TestProgram_FindEffectiveProgram_MatchesBranchChord(t *testing.T) {
	p := buildBranchProgram(t)

	p.FindEffectiveProgram()
	effective := p.EffectiveInstructions()

	require.Len(t, effective, 3)
	assert.Equal(t, p.Instructions[0], effective[0])
	assert.Equal(t, p.Instructions[1], effective[1])
	assert.Equal(t, p.Instructions[2], effective[2])
}

func TestProgram_FindEffectiveProgram_IsOrderPreservingSubsequence(t *testing.T) {
	p := buildBranchProgram(t)

	p.FindEffectiveProgram()
	effective := p.EffectiveInstructions()

	lastSeen := -1

	for _, eff := range effective {
		found := -1

		for i, full := range p.Instructions {
			if i <= lastSeen {
				continue
			}

			if full.OpIndex == eff.OpIndex && full.Destination == eff.Destination {
				found = i

				break
			}
		}

		require.NotEqual(t, -1, found)

		lastSeen = found
	}
}

func TestProgram_Execute_BranchTakenWritesOutput(t *testing.T) {
	p := buildBranchProgram(t)

	require.NoError(t, p.Registers.WriteSample([]float64{2, 3, 100}))
	p.FindEffectiveProgram()

	require.NoError(t, p.Execute())

	out, err := p.Outputs()
	require.NoError(t, err)
	assert.Equal(t, []float64{25}, out) // r3 = 2+3 = 5; branch taken (100>5); r3 = 5*5 = 25
}

func TestProgram_Execute_BranchSkippedSkipsGuardedInstruction(t *testing.T) {
	p := buildBranchProgram(t)

	require.NoError(t, p.Registers.WriteSample([]float64{2, 3, -1}))
	p.FindEffectiveProgram()

	require.NoError(t, p.Execute())

	out, err := p.Outputs()
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, out) // r3 = 2+3 = 5; branch skipped (-1 !> 5); I2 does not run
}

func TestProgram_Invalidate(t *testing.T) {
	p := buildBranchProgram(t)

	p.FindEffectiveProgram()
	assert.NotEmpty(t, p.EffectiveInstructions())

	p.Invalidate()
	p.Instructions = append(p.Instructions, instruction.New[float64](3, 4, []int{3}))
	p.FindEffectiveProgram()

	assert.Len(t, p.EffectiveInstructions(), 3)
}

func TestProgram_Clone_IsIndependent(t *testing.T) {
	p := buildBranchProgram(t)
	p.Fitness = 0.5
	p.FindEffectiveProgram()

	clone := p.Clone()
	clone.Fitness = 0.25
	clone.Instructions[0].Operands[0] = 99

	assert.Equal(t, 0.5, p.Fitness)
	assert.Equal(t, 0, p.Instructions[0].Operands[0])
	assert.Equal(t, 99, clone.Instructions[0].Operands[0])
	assert.Equal(t, p.EffectiveInstructions(), clone.EffectiveInstructions())
}

func TestProgram_UnevaluatedFitness_IsWorseThanAnyRealValue(t *testing.T) {
	p := buildBranchProgram(t)
	assert.Equal(t, program.UnevaluatedFitness, p.Fitness)
	assert.Greater(t, p.Fitness, 1e18)
}

func TestProgram_WriteC_MarksDeadInstructionsAsComments(t *testing.T) {
	p := buildBranchProgram(t)
	p.FindEffectiveProgram()

	var sb strings.Builder
	require.NoError(t, p.WriteC(&sb, program.CExportOptions{FunctionName: "gp"}))

	out := sb.String()
	assert.Contains(t, out, "void gp(double r[5]) {")
	assert.Contains(t, out, "r[3] = r[0] + r[1];")
	assert.Contains(t, out, "if (if(>)(r[2], r[3])) {")
	assert.Contains(t, out, "r[3] = r[3] * r[3];")
	assert.Contains(t, out, "// r[4] = sin(r[3]);")
}

func TestProgram_WriteC_WithMain(t *testing.T) {
	p := buildBranchProgram(t)
	p.FindEffectiveProgram()

	var sb strings.Builder
	require.NoError(t, p.WriteC(&sb, program.CExportOptions{FunctionName: "gp", WithMain: true}))

	out := sb.String()
	assert.Contains(t, out, "int main(int argc, char **argv) {")
	assert.Contains(t, out, "gp(r);")
}

func TestProgram_WriteC_WithMain_InitializesConstants(t *testing.T) {
	p := buildProgramWithConstants(t)
	p.FindEffectiveProgram()

	var sb strings.Builder
	require.NoError(t, p.WriteC(&sb, program.CExportOptions{FunctionName: "gp", WithMain: true}))

	out := sb.String()
	assert.Contains(t, out, "double r[5] = {0};")
	assert.Contains(t, out, "r[3] = 2.5;")
	assert.Contains(t, out, "r[4] = 4;")
}

func TestProgram_EffectiveRegistersBefore(t *testing.T) {
	p := buildBranchProgram(t)

	// Before any instruction has run, the only live calculation register is
	// the output register itself, seeded directly from OutputRegisterIndices.
	live := p.EffectiveRegistersBefore(0)
	assert.Contains(t, live, 3)
}
