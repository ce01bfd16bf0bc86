// Package program implements the Program type: an ordered instruction
// sequence plus an owned register set, with branch-aware execution and
// effective-code analysis. A Program is the unit of fitness evaluation and
// the unit operated on by the genetic operators.
package program

import (
	"math"

	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/register"
)

// UnevaluatedFitness is the sentinel a freshly constructed or cloned
// Program's Fitness field carries before any fitness pipeline has run.
// It compares worse than any real fitness value a FitnessFunction produces,
// so a never-evaluated program never wins a tournament by accident.
const UnevaluatedFitness = math.MaxFloat64

// Program owns a register set, an ordered instruction list (the full
// program), an output register index list, and a lazily recomputed
// effective-instruction cache.
type Program[T register.Numeric] struct {
	Registers    *register.Set[T]
	Operations   []operation.Operation[T]
	Instructions []instruction.Instruction[T]

	// OutputRegisterIndices names the registers whose final values are the
	// program's output. Must be non-empty.
	OutputRegisterIndices []int

	// Ops and SentinelTrueValue configure branch interpretation: a branch
	// instruction's destination is compared against SentinelTrueValue via
	// Ops.Equal to decide whether the next instruction executes.
	Ops              numeric.Arithmetic[T]
	SentinelTrueValue T

	// Fitness is mutable and cached by the fitness pipeline.
	Fitness float64

	effective        []instruction.Instruction[T]
	effectiveIndices []int
	effectiveValid   bool
}

// New constructs a program. It fails with ErrNoOutputs if outputs is empty,
// or ErrRegisterIndex if any instruction references a register outside
// regs.
func New[T register.Numeric](
	regs *register.Set[T],
	pool []operation.Operation[T],
	instructions []instruction.Instruction[T],
	outputs []int,
	ops numeric.Arithmetic[T],
	sentinelTrueValue T,
) (*Program[T], error) {
	if len(outputs) == 0 {
		return nil, ErrNoOutputs
	}

	for _, ins := range instructions {
		if !indexInRange(ins.Destination, regs.Len()) {
			return nil, ErrRegisterIndex
		}

		for _, opd := range ins.Operands {
			if !indexInRange(opd, regs.Len()) {
				return nil, ErrRegisterIndex
			}
		}
	}

	return &Program[T]{
		Registers:             regs.Clone(),
		Operations:            pool,
		Instructions:          instructions,
		OutputRegisterIndices: outputs,
		Ops:                   ops,
		SentinelTrueValue:     sentinelTrueValue,
		Fitness:               UnevaluatedFitness,
	}, nil
}

func indexInRange(i, n int) bool {
	return i >= 0 && i < n
}

// Len returns the length of the full instruction list.
func (p *Program[T]) Len() int {
	return len(p.Instructions)
}

// Invalidate marks the effective-instruction cache stale. Any direct
// mutation of p.Instructions must be followed eventually by a call to
// FindEffectiveProgram before EffectiveInstructions is read; callers that
// know they will call FindEffectiveProgram anyway may skip Invalidate.
func (p *Program[T]) Invalidate() {
	p.effectiveValid = false
}

// EffectiveInstructions returns the cached effective program. Callers must
// have called FindEffectiveProgram since the last mutation of Instructions.
func (p *Program[T]) EffectiveInstructions() []instruction.Instruction[T] {
	return p.effective
}

// Execute runs the effective instructions against the owned register set
// with branch-aware semantics: a branch instruction's destination is
// compared against SentinelTrueValue to decide whether the next
// instruction runs; a chain of consecutive skipped branches stays skipped
// until the next non-branch instruction.
func (p *Program[T]) Execute() error {
	taken := true

	for _, ins := range p.effective {
		isBranch := ins.IsBranch(p.Operations)

		if taken {
			result, err := ins.Execute(p.Operations, p.Registers)
			if err != nil {
				return err
			}

			if isBranch {
				taken = p.Ops.Equal(result, p.SentinelTrueValue)
			} else {
				taken = true
			}

			continue
		}

		if isBranch {
			taken = false
		} else {
			taken = true
		}
	}

	return nil
}

// Outputs reads the current values of the output registers.
func (p *Program[T]) Outputs() ([]T, error) {
	out := make([]T, len(p.OutputRegisterIndices))

	for i, idx := range p.OutputRegisterIndices {
		v, err := p.Registers.Get(idx)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}
