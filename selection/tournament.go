// Package selection implements the tournament selection operators: binary
// tournament and general tournament
// (second bullet).
package selection

import (
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
)

// BinaryTournament performs two independent tournaments of tournamentSize
// individuals drawn without replacement from population; in each, the
// individual with minimum fitness wins and is permanently removed from the
// population so neither tournament can pick the same individual twice. It
// returns clones of the two winners plus the population with both removed.
//
// Requires tournamentSize >= 2 and len(population) >= 2*tournamentSize.
func BinaryTournament[T register.Numeric](
	population []*program.Program[T],
	tournamentSize int,
	source *rng.Source,
) ([]*program.Program[T], []*program.Program[T], error) {
	if tournamentSize < 2 || len(population) < 2*tournamentSize {
		return nil, nil, ErrTournament
	}

	working := make([]*program.Program[T], len(population))
	copy(working, population)

	winners := make([]*program.Program[T], 0, 2)

	for i := 0; i < 2; i++ {
		idx := tournamentWinnerIndex(working, tournamentSize, source)
		winners = append(winners, working[idx].Clone())
		working = removeAt(working, idx)
	}

	return winners, working, nil
}

// GeneralTournament performs 2*numberOfOffspring paired tournament rounds
// (each round identical in shape to BinaryTournament), yielding
// 4*numberOfOffspring winning clones as numberOfOffspring*2 parent pairs.
// removeWinnersFromPopulation controls whether a round's winners are
// eligible to be drawn again by a later round.
//
// Requires 0 < numberOfOffspring < len(population) and tournamentSize >= 2.
func GeneralTournament[T register.Numeric](
	population []*program.Program[T],
	tournamentSize int,
	numberOfOffspring int,
	removeWinnersFromPopulation bool,
	source *rng.Source,
) ([]*program.Program[T], []*program.Program[T], error) {
	if tournamentSize < 2 || numberOfOffspring <= 0 || numberOfOffspring >= len(population) {
		return nil, nil, ErrTournament
	}

	working := make([]*program.Program[T], len(population))
	copy(working, population)

	rounds := 2 * numberOfOffspring
	winners := make([]*program.Program[T], 0, 4*numberOfOffspring)

	for r := 0; r < rounds; r++ {
		if len(working) < 2*tournamentSize {
			return nil, nil, ErrTournament
		}

		idx1 := tournamentWinnerIndex(working, tournamentSize, source)
		w1 := working[idx1]
		working = removeAt(working, idx1)

		idx2 := tournamentWinnerIndex(working, tournamentSize, source)
		w2 := working[idx2]
		working = removeAt(working, idx2)

		winners = append(winners, w1.Clone(), w2.Clone())

		if !removeWinnersFromPopulation {
			working = append(working, w1, w2)
		}
	}

	return winners, working, nil
}

// tournamentWinnerIndex draws tournamentSize distinct indices without
// replacement from pop and returns the index of the minimum-fitness
// individual among them.
func tournamentWinnerIndex[T register.Numeric](pop []*program.Program[T], tournamentSize int, source *rng.Source) int {
	candidates := sampleWithoutReplacement(len(pop), tournamentSize, source)

	best := candidates[0]
	for _, c := range candidates[1:] {
		if pop[c].Fitness < pop[best].Fitness {
			best = c
		}
	}

	return best
}

// sampleWithoutReplacement draws k distinct indices from [0, n) via a
// partial Fisher-Yates shuffle.
func sampleWithoutReplacement(n, k int, source *rng.Source) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + source.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}

func removeAt[T register.Numeric](pop []*program.Program[T], idx int) []*program.Program[T] {
	out := make([]*program.Program[T], 0, len(pop)-1)
	out = append(out, pop[:idx]...)
	out = append(out, pop[idx+1:]...)

	return out
}
