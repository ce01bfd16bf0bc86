package evolution

import "errors"

// ErrEmptyPopulation is returned when a run is started with no individuals.
var ErrEmptyPopulation = errors.New("evolution: population is empty")

// ErrPopulationTooSmall is returned when the configured population is too
// small for the configured tournament size to ever produce offspring.
var ErrPopulationTooSmall = errors.New("evolution: population too small for tournament size")
