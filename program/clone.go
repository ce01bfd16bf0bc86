package program

import "github.com/lgpkit/lgp/instruction"

// Clone deep-copies the instruction list and the register set, shares the
// output index list and operation pool (both immutable from a program's
// point of view), and preserves the current fitness. A valid
// effective-program cache is deep-copied into the clone; an invalidated one
// stays invalid, and FindEffectiveProgram must be called on the clone
// before reading EffectiveInstructions.
func (p *Program[T]) Clone() *Program[T] {
	instructions := make([]instruction.Instruction[T], len(p.Instructions))
	for i, ins := range p.Instructions {
		instructions[i] = ins.Clone()
	}

	clone := &Program[T]{
		Registers:             p.Registers.Clone(),
		Operations:            p.Operations,
		Instructions:          instructions,
		OutputRegisterIndices: p.OutputRegisterIndices,
		Ops:                   p.Ops,
		SentinelTrueValue:     p.SentinelTrueValue,
		Fitness:               p.Fitness,
	}

	if p.effectiveValid {
		effective := make([]instruction.Instruction[T], len(p.effective))
		for i, ins := range p.effective {
			effective[i] = ins.Clone()
		}

		indices := make([]int, len(p.effectiveIndices))
		copy(indices, p.effectiveIndices)

		clone.effective = effective
		clone.effectiveIndices = indices
		clone.effectiveValid = true
	}

	return clone
}
