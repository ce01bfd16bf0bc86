// Package generate produces random instructions and random programs: the
// raw and effective population-seeding generators of the evolutionary
// engine.
package generate

import (
	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/register"
)

// InstructionGenerator produces random instructions against a fixed
// operation pool and register set. ConstantsRate biases operand selection
// toward constant registers; the remaining mass splits evenly between
// input and calculation registers via an internal coin flip.
type InstructionGenerator[T register.Numeric] struct {
	Pool          []operation.Operation[T]
	Registers     *register.Set[T]
	ConstantsRate float64
	RNG           *rng.Source
}

// Random produces an instruction by choosing an operation uniformly from
// the full pool.
func (g *InstructionGenerator[T]) Random() (instruction.Instruction[T], error) {
	indices := make([]int, len(g.Pool))
	for i := range indices {
		indices[i] = i
	}

	return g.RandomFrom(indices)
}

// RandomFrom produces an instruction whose operation is chosen uniformly
// from the given subset of pool indices (used to force a branch
// operation during initialisation).
func (g *InstructionGenerator[T]) RandomFrom(indices []int) (instruction.Instruction[T], error) {
	var zero instruction.Instruction[T]
	if len(indices) == 0 {
		return zero, ErrEmptyPool
	}

	opIndex := indices[g.RNG.IntN(len(indices))]

	return g.WithDestinationAndOp(opIndex)
}

// WithDestinationAndOp builds an instruction for the given operation index
// with a freshly drawn destination and operand list.
func (g *InstructionGenerator[T]) WithDestinationAndOp(opIndex int) (instruction.Instruction[T], error) {
	var zero instruction.Instruction[T]

	dest, err := g.randomDestination()
	if err != nil {
		return zero, err
	}

	arity := g.Pool[opIndex].Arity().Int()
	operands := g.randomOperands(arity)

	return instruction.New[T](opIndex, dest, operands), nil
}

// WithDestination builds a random instruction whose destination is pinned
// to dest, used by the effective program generator and by macro mutation's
// insert step where the destination must come from the live-register set.
func (g *InstructionGenerator[T]) WithDestination(dest int) instruction.Instruction[T] {
	opIndex := g.RNG.IntN(len(g.Pool))
	arity := g.Pool[opIndex].Arity().Int()
	operands := g.randomOperands(arity)

	return instruction.New[T](opIndex, dest, operands)
}

// WithDestinationFrom builds a random instruction with a pinned destination
// whose operation is drawn from the given pool-index subset.
func (g *InstructionGenerator[T]) WithDestinationFrom(dest int, indices []int) instruction.Instruction[T] {
	opIndex := indices[g.RNG.IntN(len(indices))]
	arity := g.Pool[opIndex].Arity().Int()
	operands := g.randomOperands(arity)

	return instruction.New[T](opIndex, dest, operands)
}

func (g *InstructionGenerator[T]) randomOperands(arity int) []int {
	operands := make([]int, arity)
	for i := range operands {
		operands[i] = g.randomOperand()
	}

	return operands
}

// RandomOperand draws a single register index as an operand would be
// chosen, biased by ConstantsRate then split evenly between input and
// calculation registers. Exposed for micro mutation's register and
// operator variants, which need the same operand distribution outside a
// full instruction draw.
func (g *InstructionGenerator[T]) RandomOperand() int {
	return g.randomOperand()
}

func (g *InstructionGenerator[T]) randomOperand() int {
	numInput := g.Registers.NumInput()
	numCalc := g.Registers.NumCalculation()
	numConst := g.Registers.NumConstant()

	if numConst > 0 && g.RNG.Chance(g.ConstantsRate) {
		return numInput + numCalc + g.RNG.IntN(numConst)
	}

	switch {
	case numInput > 0 && numCalc > 0:
		if g.RNG.Bool() {
			return g.RNG.IntN(numInput)
		}

		return numInput + g.RNG.IntN(numCalc)
	case numInput > 0:
		return g.RNG.IntN(numInput)
	default:
		return numInput + g.RNG.IntN(numCalc)
	}
}

func (g *InstructionGenerator[T]) randomDestination() (int, error) {
	writable := g.Registers.NumInput() + g.Registers.NumCalculation()
	if writable == 0 {
		return 0, ErrNoWritableRegisters
	}

	return g.RNG.IntN(writable), nil
}

// BranchIndices returns the pool indices of every branch operation, used
// to force a branch instruction at a given position.
func BranchIndices[T any](pool []operation.Operation[T]) []int {
	indices := make([]int, 0)

	for i, op := range pool {
		if op.IsBranch() {
			indices = append(indices, i)
		}
	}

	return indices
}
