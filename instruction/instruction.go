// Package instruction implements the three-address instruction a Program
// executes: (operation, destination register, operand registers).
package instruction

import (
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/register"
)

// Instruction is a mutable triple of an operation index, a destination
// register index, and an ordered list of operand register indices. The
// operation is referenced by index into a Program's shared operation pool
// rather than by pointer, so instructions never entangle with the
// lifetime of the operation values themselves (Design Note: operations are
// shared immutable values referenced by many instructions).
type Instruction[T any] struct {
	OpIndex     int
	Destination int
	Operands    []int
}

// New constructs an instruction. It does not validate operand count against
// the operation's arity or register indices against any particular register
// bank; callers that build instructions directly (generators, mutation
// operators) are responsible for those invariants.
func New[T any](opIndex, destination int, operands []int) Instruction[T] {
	return Instruction[T]{OpIndex: opIndex, Destination: destination, Operands: operands}
}

// Clone returns an independent copy: mutating the clone's Operands slice
// never affects the original.
func (i Instruction[T]) Clone() Instruction[T] {
	operands := make([]int, len(i.Operands))
	copy(operands, i.Operands)

	return Instruction[T]{OpIndex: i.OpIndex, Destination: i.Destination, Operands: operands}
}

// IsBranch reports whether this instruction's operation is a branch
// operation, given the pool it indexes into.
func (i Instruction[T]) IsBranch(pool []operation.Operation[T]) bool {
	return pool[i.OpIndex].IsBranch()
}

// Execute reads the operand registers, applies the operation, and writes
// the result to the destination register.
func (i Instruction[T]) Execute(pool []operation.Operation[T], regs *register.Set[T]) (T, error) {
	var zero T

	args := make([]T, len(i.Operands))

	for idx, r := range i.Operands {
		v, err := regs.Get(r)
		if err != nil {
			return zero, err
		}

		args[idx] = v
	}

	op := pool[i.OpIndex]

	result, err := op.Apply(args)
	if err != nil {
		return zero, err
	}

	if err := regs.Set(i.Destination, result); err != nil {
		return zero, err
	}

	return result, nil
}
