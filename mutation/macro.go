// Package mutation implements macro (structural) and micro (point)
// mutation.
package mutation

import (
	"github.com/lgpkit/lgp/generate"
	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
)

// Macro performs insert/delete structural mutation. InsertionRate and the
// implied deletion rate (1 - InsertionRate) select the mutation type; the
// mutation point is drawn before the effective-set check runs, and is not
// redrawn if that branch is skipped, so a fixed seed's draw sequence stays
// stable regardless of how many mutations turn out to be no-ops.
type Macro[T register.Numeric] struct {
	InsertionRate    float64
	MinProgramLength int
	MaxProgramLength int
	Generator        *generate.InstructionGenerator[T]
	RNG              *rng.Source
}

// Mutate applies one macro mutation to p in place. It is a silent no-op
// when the relevant branch's effective-register/instruction set is empty.
func (m *Macro[T]) Mutate(p *program.Program[T]) error {
	if len(m.Generator.Pool) == 0 {
		return ErrNoOperations
	}

	p.FindEffectiveProgram()

	insert := m.RNG.Chance(m.InsertionRate)

	length := p.Len()
	if length == 0 {
		return nil
	}

	pos := m.RNG.IntN(length)

	if length < m.MaxProgramLength && (insert || length == m.MinProgramLength) {
		m.insertAt(p, pos)

		return nil
	}

	if length > m.MinProgramLength && (!insert || length == m.MaxProgramLength) {
		m.deleteOne(p)

		return nil
	}

	return nil
}

func (m *Macro[T]) insertAt(p *program.Program[T], pos int) {
	live := p.EffectiveRegistersBefore(pos)
	if len(live) == 0 {
		return
	}

	dest := live[m.RNG.IntN(len(live))]
	ins := m.Generator.WithDestination(dest)

	instructions := make([]instruction.Instruction[T], 0, p.Len()+1)
	instructions = append(instructions, p.Instructions[:pos]...)
	instructions = append(instructions, ins)
	instructions = append(instructions, p.Instructions[pos:]...)

	p.Instructions = instructions
	p.Invalidate()
}

func (m *Macro[T]) deleteOne(p *program.Program[T]) {
	indices := p.EffectiveIndices()
	if len(indices) == 0 {
		return
	}

	idx := indices[m.RNG.IntN(len(indices))]

	instructions := make([]instruction.Instruction[T], 0, p.Len()-1)
	instructions = append(instructions, p.Instructions[:idx]...)
	instructions = append(instructions, p.Instructions[idx+1:]...)

	p.Instructions = instructions
	p.Invalidate()
}
