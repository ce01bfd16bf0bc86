package generate

import (
	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/types"
)

// ProgramGenerator produces random programs of uniformly-sampled length,
// optionally seeding branch instructions at a configured rate (spec
// section 4.5, "Program generator (random)").
type ProgramGenerator[T register.Numeric] struct {
	Pool                     []operation.Operation[T]
	InitialMinLen            int
	InitialMaxLen            int
	BranchInitialisationRate float64
	ConstantsRate            float64
	Outputs                  []int
	Ops                      numeric.Arithmetic[T]
	SentinelTrueValue        T
	RNG                      *rng.Source
}

func (g *ProgramGenerator[T]) sampleLength() int {
	if g.InitialMaxLen <= g.InitialMinLen {
		return g.InitialMinLen
	}

	return g.InitialMinLen + g.RNG.IntN(g.InitialMaxLen-g.InitialMinLen+1)
}

// Random builds a program by cloning regsTemplate and emitting a random
// instruction at every position, each independently sampled as a branch
// with probability BranchInitialisationRate when the pool contains one.
func (g *ProgramGenerator[T]) Random(regsTemplate *register.Set[T]) (*program.Program[T], error) {
	regs := regsTemplate.Clone()
	instrGen := &InstructionGenerator[T]{Pool: g.Pool, Registers: regs, ConstantsRate: g.ConstantsRate, RNG: g.RNG}

	branchIndices := BranchIndices(g.Pool)
	nonBranch := nonBranchIndices(g.Pool)
	length := g.sampleLength()
	instructions := make([]instruction.Instruction[T], length)

	for i := 0; i < length; i++ {
		var (
			ins instruction.Instruction[T]
			err error
		)

		switch {
		case len(branchIndices) > 0 && g.RNG.Chance(g.BranchInitialisationRate):
			ins, err = instrGen.RandomFrom(branchIndices)
		case len(nonBranch) > 0:
			ins, err = instrGen.RandomFrom(nonBranch)
		default:
			ins, err = instrGen.Random()
		}

		if err != nil {
			return nil, err
		}

		instructions[i] = ins
	}

	return program.New[T](regs, g.Pool, instructions, g.Outputs, g.Ops, g.SentinelTrueValue)
}

// EffectiveProgramGenerator produces programs that are entirely effective
// at birth, by building backward from the first output register (spec
// section 4.5, "Program generator (effective)").
type EffectiveProgramGenerator[T register.Numeric] struct {
	Pool                     []operation.Operation[T]
	InitialMinLen            int
	InitialMaxLen            int
	BranchInitialisationRate float64
	ConstantsRate            float64
	Outputs                  []int
	Ops                      numeric.Arithmetic[T]
	SentinelTrueValue        T
	RNG                      *rng.Source
}

func (g *EffectiveProgramGenerator[T]) sampleLength() int {
	if g.InitialMaxLen <= g.InitialMinLen {
		return g.InitialMinLen
	}

	return g.InitialMinLen + g.RNG.IntN(g.InitialMaxLen-g.InitialMinLen+1)
}

// Random builds an entirely-effective program of uniformly sampled length.
func (g *EffectiveProgramGenerator[T]) Random(regsTemplate *register.Set[T]) (*program.Program[T], error) {
	regs := regsTemplate.Clone()
	instrGen := &InstructionGenerator[T]{Pool: g.Pool, Registers: regs, ConstantsRate: g.ConstantsRate, RNG: g.RNG}

	branchIndices := BranchIndices(g.Pool)
	nonBranch := nonBranchIndices(g.Pool)
	length := g.sampleLength()
	instructions := make([]instruction.Instruction[T], length)

	live := make(map[int]struct{}, length)
	live[g.Outputs[0]] = struct{}{}

	for i := length - 1; i >= 0; i-- {
		dest := g.pickLive(live)

		// The last position is never a branch: a branch is only effective
		// when an effective non-branch instruction follows it.
		var ins instruction.Instruction[T]
		switch {
		case i < length-1 && len(branchIndices) > 0 && g.RNG.Chance(g.BranchInitialisationRate):
			ins = instrGen.WithDestinationFrom(dest, branchIndices)
		case len(nonBranch) > 0:
			ins = instrGen.WithDestinationFrom(dest, nonBranch)
		default:
			ins = instrGen.WithDestination(dest)
		}

		instructions[i] = ins

		if !ins.IsBranch(g.Pool) {
			delete(live, dest)
		}

		for _, opd := range ins.Operands {
			if regs.RegisterType(opd) == types.Constant {
				continue
			}

			live[opd] = struct{}{}
		}
	}

	return program.New[T](regs, g.Pool, instructions, g.Outputs, g.Ops, g.SentinelTrueValue)
}

// pickLive returns a deterministically-ordered random element of the live
// set; map iteration order in Go is randomised per-process, so the
// candidates are collected into a sorted slice before drawing, keeping the
// generator's output a pure function of the RNG sequence.
func (g *EffectiveProgramGenerator[T]) pickLive(live map[int]struct{}) int {
	candidates := make([]int, 0, len(live))
	for idx := range live {
		candidates = insertSorted(candidates, idx)
	}

	return candidates[g.RNG.IntN(len(candidates))]
}

func nonBranchIndices[T any](pool []operation.Operation[T]) []int {
	indices := make([]int, 0, len(pool))

	for i, op := range pool {
		if !op.IsBranch() {
			indices = append(indices, i)
		}
	}

	return indices
}

func insertSorted(s []int, v int) []int {
	i := 0
	for i < len(s) && s[i] < v {
		i++
	}

	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

