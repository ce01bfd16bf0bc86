// Package lgp is a prelude of the engine's most commonly used types, so a
// caller can write lgp.Program instead of program.Program, matching the
// teacher's zerfoo.go convention of re-exporting the core vocabulary from the
// module root.
package lgp

import (
	"github.com/lgpkit/lgp/config"
	"github.com/lgpkit/lgp/evolution"
	"github.com/lgpkit/lgp/fitness"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/trainer"
)

type (
	// Program is a register-machine instruction sequence, the unit of
	// fitness evaluation and of every genetic operator.
	Program[T register.Numeric] = program.Program[T]

	// Registers is the fixed-size input/calculation/constant register bank
	// a Program owns.
	Registers[T register.Numeric] = register.Set[T]

	// Dataset is an ordered collection of (features, target) fitness cases.
	Dataset[T register.Numeric] = fitness.Dataset[T]

	// Config is the engine's external configuration record.
	Config = config.Config

	// EvolutionResult is one run's best program, final population, and
	// per-generation statistics.
	EvolutionResult[T register.Numeric] = evolution.Result[T]

	// Trainer runs an evolutionary run multiple times and aggregates the
	// results, sequentially or in parallel.
	Trainer[T register.Numeric] = trainer.Trainer[T]
)

// Default returns the engine's default configuration. Config.Validate
// accepts it once Operations and NumFeatures are set and Constants holds at
// least one entry (or ConstantsRate is set to 0, since it defaults to 0.5).
func Default() Config {
	return config.Default()
}
