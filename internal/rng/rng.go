// Package rng provides the per-environment seeded random source every
// genetic operator and generator draws from. It is never a process-wide
// global: each evolution run owns one, and the trainer derives one fresh
// instance per run from a parent seed so runs never share mutable state.
package rng

import "math/rand/v2"

// Source wraps a math/rand/v2 PCG generator.
type Source struct {
	r *rand.Rand
}

// New builds a Source seeded with seed1, seed2.
func New(seed1, seed2 uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Derive produces a new, independent Source for run index i of a parent
// seed, so that sequential and distributed (parallel) trainers reach
// identical per-run seeds for identical configuration.
func Derive(parentSeed uint64, run int) *Source {
	return New(parentSeed, uint64(run))
}

// IntN returns a uniform value in [0, n).
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Bool returns a uniform coin flip.
func (s *Source) Bool() bool {
	return s.r.IntN(2) == 0
}

// Chance reports whether a draw succeeds with probability p.
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Rand exposes the underlying *rand.Rand directly.
func (s *Source) Rand() *rand.Rand {
	return s.r
}

// Int64 draws a signed 64-bit value, used to seed external RNG-consuming
// libraries (e.g. gonum's distuv.Normal, which takes a math/rand v1 Source)
// deterministically from this Source.
func (s *Source) Int64() int64 {
	return s.r.Int64()
}
