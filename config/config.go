// Package config implements the engine's external configuration record
//: defaults, validation, and JSON/YAML loading.
package config

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the engine's external configuration record. Defaults and
// validation rules are documented per-field below.
type Config struct {
	InitialMinimumProgramLength int      `json:"initialMinimumProgramLength" yaml:"initialMinimumProgramLength"`
	InitialMaximumProgramLength int      `json:"initialMaximumProgramLength" yaml:"initialMaximumProgramLength"`
	MinimumProgramLength        int      `json:"minimumProgramLength" yaml:"minimumProgramLength"`
	MaximumProgramLength        int      `json:"maximumProgramLength" yaml:"maximumProgramLength"`
	Operations                  []string `json:"operations" yaml:"operations"`
	ConstantsRate               float64  `json:"constantsRate" yaml:"constantsRate"`
	Constants                   []string `json:"constants" yaml:"constants"`
	NumCalculationRegisters     int      `json:"numCalculationRegisters" yaml:"numCalculationRegisters"`
	PopulationSize              int      `json:"populationSize" yaml:"populationSize"`
	NumFeatures                 int      `json:"numFeatures" yaml:"numFeatures"`
	CrossoverRate               float64  `json:"crossoverRate" yaml:"crossoverRate"`
	MicroMutationRate           float64  `json:"microMutationRate" yaml:"microMutationRate"`
	MacroMutationRate           float64  `json:"macroMutationRate" yaml:"macroMutationRate"`
	Generations                 int      `json:"generations" yaml:"generations"`
	BranchInitialisationRate    float64  `json:"branchInitialisationRate" yaml:"branchInitialisationRate"`
	StoppingCriterion           float64  `json:"stoppingCriterion" yaml:"stoppingCriterion"`
	NumberOfRuns                int      `json:"numberOfRuns" yaml:"numberOfRuns"`
}

// Default returns a Config with every field at its spec-mandated default.
// NumFeatures and Operations are required and left at their zero value;
// Validate rejects a Config that has not set them. Constants is empty by
// default, so the default ConstantsRate of 0.5 is also rejected until at
// least one constant is supplied or ConstantsRate is set to 0.
func Default() Config {
	return Config{
		InitialMinimumProgramLength: 10,
		InitialMaximumProgramLength: 30,
		MinimumProgramLength:        10,
		MaximumProgramLength:        200,
		ConstantsRate:               0.5,
		NumCalculationRegisters:     10,
		PopulationSize:              100,
		CrossoverRate:               0.5,
		MicroMutationRate:           0.5,
		MacroMutationRate:           0.5,
		Generations:                 50,
		BranchInitialisationRate:    0,
		StoppingCriterion:           0,
		NumberOfRuns:                1,
	}
}

// Result is the discriminated Valid | Invalid(reason) outcome of Validate.
type Result struct {
	Valid  bool
	Reason string
}

// Validate checks every field's constraints, returning the first violation
// found.
func (c Config) Validate() Result {
	switch {
	case c.InitialMinimumProgramLength <= 0:
		return invalid("initialMinimumProgramLength must be > 0")
	case c.InitialMaximumProgramLength <= 0:
		return invalid("initialMaximumProgramLength must be > 0")
	case c.MinimumProgramLength <= 0:
		return invalid("minimumProgramLength must be > 0")
	case c.MaximumProgramLength <= 0:
		return invalid("maximumProgramLength must be > 0")
	case len(c.Operations) < 1:
		return invalid("operations must have at least one entry")
	case c.ConstantsRate < 0:
		return invalid("constantsRate must be >= 0")
	case len(c.Constants) == 0 && c.ConstantsRate != 0:
		return invalid("constantsRate must be 0 when constants is empty")
	case c.NumCalculationRegisters < 0:
		return invalid("numCalculationRegisters must be >= 0")
	case c.PopulationSize <= 0:
		return invalid("populationSize must be > 0")
	case c.NumFeatures <= 0:
		return invalid("numFeatures is required and must be > 0")
	case c.CrossoverRate < 0 || c.CrossoverRate > 1:
		return invalid("crossoverRate must be in [0,1]")
	case c.MicroMutationRate < 0 || c.MicroMutationRate > 1:
		return invalid("microMutationRate must be in [0,1]")
	case c.MacroMutationRate < 0 || c.MacroMutationRate > 1:
		return invalid("macroMutationRate must be in [0,1]")
	case c.Generations <= 0:
		return invalid("generations must be > 0")
	case c.BranchInitialisationRate < 0 || c.BranchInitialisationRate > 1:
		return invalid("branchInitialisationRate must be in [0,1]")
	case c.StoppingCriterion < 0:
		return invalid("stoppingCriterion must be >= 0")
	case c.NumberOfRuns < 1:
		return invalid("numberOfRuns must be >= 1")
	default:
		return Result{Valid: true}
	}
}

func invalid(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

// LoadJSON reads and unmarshals a JSON configuration document, starting
// from Default() so unset fields keep their default value.
func LoadJSON(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{Path: path, Err: err}
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, &LoadError{Path: path, Err: err}
	}

	return cfg, nil
}

// LoadYAML reads and unmarshals a YAML configuration document, starting
// from Default() so unset fields keep their default value.
func LoadYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{Path: path, Err: err}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &LoadError{Path: path, Err: err}
	}

	return cfg, nil
}
