package mutation

import (
	"github.com/lgpkit/lgp/generate"
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

// ConstantMutationFunction perturbs a constant register's current value,
// e.g. additive Gaussian noise.
type ConstantMutationFunction[T register.Numeric] func(current T) T

// Micro performs point mutation of a single effective instruction: a
// register, operator, or constant variant, drawn by
// RegisterMutationRate / OperatorMutationRate, with the remaining
// probability mass going to the constant variant.
type Micro[T register.Numeric] struct {
	RegisterMutationRate    float64
	OperatorMutationRate    float64
	Generator               *generate.InstructionGenerator[T]
	ConstantMutationFunction ConstantMutationFunction[T]
	// MaxConstantSearch bounds the linear search for a constant-referencing
	// effective instruction; 0 searches the entire effective set.
	MaxConstantSearch int
	RNG               *rng.Source
}

// Mutate applies one micro mutation to p in place. It is a silent no-op
// when the effective set is empty, or when the constant variant's bounded
// search finds no constant-referencing instruction.
func (m *Micro[T]) Mutate(p *program.Program[T]) error {
	if len(m.Generator.Pool) == 0 {
		return ErrNoOperations
	}

	p.FindEffectiveProgram()

	indices := p.EffectiveIndices()
	if len(indices) == 0 {
		return nil
	}

	idx := indices[m.RNG.IntN(len(indices))]

	roll := m.RNG.Float64()

	switch {
	case roll < m.RegisterMutationRate:
		m.registerVariant(p, idx)
	case roll < m.RegisterMutationRate+m.OperatorMutationRate:
		m.operatorVariant(p, idx)
	default:
		m.constantVariant(p, indices)
	}

	return nil
}

func (m *Micro[T]) registerVariant(p *program.Program[T], idx int) {
	ins := p.Instructions[idx]
	positions := 1 + len(ins.Operands)
	choice := m.RNG.IntN(positions)

	if choice == 0 {
		live := p.EffectiveRegistersBefore(idx)
		if len(live) == 0 {
			return
		}

		ins.Destination = live[m.RNG.IntN(len(live))]
	} else {
		ins.Operands[choice-1] = m.Generator.RandomOperand()
	}

	p.Instructions[idx] = ins
	p.Invalidate()
}

func (m *Micro[T]) operatorVariant(p *program.Program[T], idx int) {
	pool := m.Generator.Pool
	if len(pool) < 2 {
		return
	}

	ins := p.Instructions[idx]

	newOp := ins.OpIndex
	for newOp == ins.OpIndex {
		newOp = m.RNG.IntN(len(pool))
	}

	newArity := pool[newOp].Arity().Int()
	operands := ins.Operands

	switch {
	case newArity < len(operands):
		operands = operands[:newArity]
	case newArity > len(operands):
		extended := make([]int, newArity)
		copy(extended, operands)

		for i := len(operands); i < newArity; i++ {
			extended[i] = m.Generator.RandomOperand()
		}

		operands = extended
	}

	ins.OpIndex = newOp
	ins.Operands = operands
	p.Instructions[idx] = ins
	p.Invalidate()
}

func (m *Micro[T]) constantVariant(p *program.Program[T], indices []int) {
	budget := m.MaxConstantSearch
	if budget <= 0 || budget > len(indices) {
		budget = len(indices)
	}

	start := m.RNG.IntN(len(indices))

	for i := 0; i < budget; i++ {
		idx := indices[(start+i)%len(indices)]
		ins := p.Instructions[idx]

		for _, opd := range ins.Operands {
			if p.Registers.RegisterType(opd) != types.Constant {
				continue
			}

			current, err := p.Registers.Get(opd)
			if err != nil {
				continue
			}

			_ = p.Registers.Overwrite(opd, m.ConstantMutationFunction(current))

			return
		}
	}
}
