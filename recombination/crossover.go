// Package recombination implements linear two-point segment crossover on
// instruction sequences.
package recombination

import (
	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
)

// Options configures a Crossover call.
type Options struct {
	MaxSegmentLength           int
	MaxCrossoverDistance       int
	MaxSegmentLengthDifference int
	MinProgramLength           int
	MaxProgramLength           int
	MaxRetries                 int
}

// Crossover exchanges a segment of mother's instructions with a segment of
// father's, mutating both in place, via a bounded-retry search for a valid
// segment pair. If no valid segment choice is found within opts.MaxRetries
// attempts, both programs are left unchanged and ErrNoValidSegment is
// returned.
func Crossover[T register.Numeric](a, b *program.Program[T], opts Options, source *rng.Source) error {
	mother, father := a, b
	if len(mother.Instructions) > len(father.Instructions) {
		mother, father = father, mother
	}

	for attempt := 0; attempt < opts.MaxRetries; attempt++ {
		lm := len(mother.Instructions)
		lf := len(father.Instructions)

		if lm == 0 || lf == 0 {
			return ErrNoValidSegment
		}

		i1 := source.IntN(lm)

		lo := max(0, i1-opts.MaxCrossoverDistance)
		hi := min(lf-1, i1+opts.MaxCrossoverDistance)

		if hi < lo {
			continue
		}

		i2 := lo + source.IntN(hi-lo+1)

		maxL1 := min(opts.MaxSegmentLength, lm-i1)
		maxL2 := min(opts.MaxSegmentLength, lf-i2)

		if maxL1 < 1 || maxL2 < 1 {
			continue
		}

		l1 := 1 + source.IntN(maxL1)

		l2Hi := min(maxL2, l1+opts.MaxSegmentLengthDifference)
		if l2Hi < l1 {
			continue
		}

		l2 := l1 + source.IntN(l2Hi-l1+1)

		newMotherLen := lm - l1 + l2
		newFatherLen := lf - l2 + l1

		if newMotherLen < opts.MinProgramLength || newMotherLen > opts.MaxProgramLength {
			continue
		}

		if newFatherLen < opts.MinProgramLength || newFatherLen > opts.MaxProgramLength {
			continue
		}

		swapSegments(mother, father, i1, l1, i2, l2)

		return nil
	}

	return ErrNoValidSegment
}

func swapSegments[T register.Numeric](mother, father *program.Program[T], i1, l1, i2, l2 int) {
	motherSeg := make([]instruction.Instruction[T], l1)
	copy(motherSeg, mother.Instructions[i1:i1+l1])

	fatherSeg := make([]instruction.Instruction[T], l2)
	copy(fatherSeg, father.Instructions[i2:i2+l2])

	newMother := make([]instruction.Instruction[T], 0, len(mother.Instructions)-l1+l2)
	newMother = append(newMother, mother.Instructions[:i1]...)
	newMother = append(newMother, fatherSeg...)
	newMother = append(newMother, mother.Instructions[i1+l1:]...)

	newFather := make([]instruction.Instruction[T], 0, len(father.Instructions)-l2+l1)
	newFather = append(newFather, father.Instructions[:i2]...)
	newFather = append(newFather, motherSeg...)
	newFather = append(newFather, father.Instructions[i2+l2:]...)

	mother.Instructions = newMother
	father.Instructions = newFather
	mother.Invalidate()
	father.Invalidate()
}
