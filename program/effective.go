package program

import (
	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

// FindEffectiveProgram recomputes EffectiveInstructions by scanning
// Instructions backwards while maintaining a live-register set seeded from
// OutputRegisterIndices. It must be called after any
// direct mutation of Instructions before EffectiveInstructions is read.
func (p *Program[T]) FindEffectiveProgram() {
	marked, _ := backwardLiveAnalysis(p.Instructions, p.Operations, p.Registers, p.OutputRegisterIndices)

	effective := make([]instruction.Instruction[T], 0, len(p.Instructions))
	indices := make([]int, 0, len(p.Instructions))

	for i, m := range marked {
		if m {
			effective = append(effective, p.Instructions[i])
			indices = append(indices, i)
		}
	}

	p.effective = effective
	p.effectiveIndices = indices
	p.effectiveValid = true
}

// EffectiveIndices returns the positions within Instructions that the last
// FindEffectiveProgram call found effective, in order. It is used by macro
// mutation's deletion step, which must remove an effective instruction by
// its position in the full instruction list.
func (p *Program[T]) EffectiveIndices() []int {
	return p.effectiveIndices
}

// EffectiveRegistersBefore returns the calculation-register subset of the
// live-register set that results from running the same backward analysis
// over only Instructions[:p], seeded from OutputRegisterIndices. It is used
// by macro mutation to find valid destinations for an instruction inserted
// at position p.
func (p *Program[T]) EffectiveRegistersBefore(pos int) []int {
	_, live := backwardLiveAnalysis(p.Instructions[:pos], p.Operations, p.Registers, p.OutputRegisterIndices)

	calc := make([]int, 0, len(live))

	for idx := range live {
		if p.Registers.RegisterType(idx) == types.Calculation {
			calc = append(calc, idx)
		}
	}

	return calc
}

// backwardLiveAnalysis implements a single backward live-variable pass:
//
//  1. Scanning instrs from the end, a non-branch instruction I is effective
//     iff its destination is in the live set at that point. When it is,
//     the contiguous run of branch instructions immediately preceding it is
//     also marked effective (the special "branch is effective iff the next
//     effective non-branch instruction is effective" rule), their operands
//     join the live set, and I's destination is removed from the live set
//     only if that run was empty (an unconditional write kills the earlier
//     liveness of the same register; a conditional one does not, since an
//     earlier writer may still be the one that reaches the output).
//  2. I's own operands (non-constant) join the live set regardless.
//  3. A branch instruction encountered directly by the main scan (i.e. not
//     already marked via the look-behind of a later chord) is not
//     effective and is skipped.
//
// It returns a per-index effectiveness marker plus the final live set,
// the latter reused by EffectiveRegistersBefore.
func backwardLiveAnalysis[T register.Numeric](
	instrs []instruction.Instruction[T],
	pool []operation.Operation[T],
	regs *register.Set[T],
	outputs []int,
) ([]bool, map[int]struct{}) {
	marked := make([]bool, len(instrs))
	live := make(map[int]struct{}, len(outputs))

	for _, o := range outputs {
		live[o] = struct{}{}
	}

	addOperands := func(ins instruction.Instruction[T]) {
		for _, opd := range ins.Operands {
			if regs.RegisterType(opd) != types.Constant {
				live[opd] = struct{}{}
			}
		}
	}

	p := len(instrs) - 1
	for p >= 0 {
		ins := instrs[p]

		if ins.IsBranch(pool) {
			// Reached directly (not via look-behind below): not effective.
			p--

			continue
		}

		if _, isLive := live[ins.Destination]; !isLive {
			p--

			continue
		}

		marked[p] = true

		branchCount := 0
		q := p - 1

		for q >= 0 && instrs[q].IsBranch(pool) {
			marked[q] = true
			addOperands(instrs[q])
			branchCount++
			q--
		}

		if branchCount == 0 {
			delete(live, ins.Destination)
		}

		addOperands(ins)

		p = q
	}

	return marked, live
}
