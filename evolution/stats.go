package evolution

import (
	"gonum.org/v1/gonum/stat"

	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
)

// Stats captures a single generation's population summary: best/mean/stddev of fitness, and mean program length both raw and
// effective.
type Stats struct {
	Generation                 int
	BestFitness                float64
	MeanFitness                float64
	FitnessStdDev              float64
	MeanProgramLength          float64
	MeanEffectiveProgramLength float64
}

func computeStats[T register.Numeric](generation int, population []*program.Program[T], best *program.Program[T]) Stats {
	fitnesses := make([]float64, len(population))
	lengths := make([]float64, len(population))
	effectiveLengths := make([]float64, len(population))

	for i, p := range population {
		fitnesses[i] = p.Fitness
		lengths[i] = float64(p.Len())

		p.FindEffectiveProgram()
		effectiveLengths[i] = float64(len(p.EffectiveIndices()))
	}

	return Stats{
		Generation:                 generation,
		BestFitness:                best.Fitness,
		MeanFitness:                stat.Mean(fitnesses, nil),
		FitnessStdDev:              stat.StdDev(fitnesses, nil),
		MeanProgramLength:          stat.Mean(lengths, nil),
		MeanEffectiveProgramLength: stat.Mean(effectiveLengths, nil),
	}
}
