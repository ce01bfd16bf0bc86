package recombination

import "errors"

// ErrNoValidSegment is returned when no crossover succeeded within the
// configured retry budget. Callers typically treat this as a no-op rather
// than a hard failure, but it is surfaced so a caller that wants to know
// can.
var ErrNoValidSegment = errors.New("recombination: no valid crossover segment found within retry budget")
