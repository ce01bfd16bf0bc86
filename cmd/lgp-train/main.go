// Command lgp-train trains a linear genetic programming population against a
// CSV or Parquet dataset and writes the best program's test-phase metrics.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/lgpkit/lgp/config"
	"github.com/lgpkit/lgp/dataset"
	"github.com/lgpkit/lgp/evolution"
	"github.com/lgpkit/lgp/fitness"
	"github.com/lgpkit/lgp/generate"
	"github.com/lgpkit/lgp/internal/rng"
	"github.com/lgpkit/lgp/metrics"
	"github.com/lgpkit/lgp/mutation"
	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/operation"
	"github.com/lgpkit/lgp/program"
	"github.com/lgpkit/lgp/recombination"
	"github.com/lgpkit/lgp/register"
	"github.com/lgpkit/lgp/trainer"
	"github.com/lgpkit/lgp/types"
)

// CLIConfig holds the flags that select data, engine configuration, and
// output behaviour for one training invocation.
type CLIConfig struct {
	DataPath   string
	ConfigPath string
	ConfigType string // "json" or "yaml"
	OutputDir  string
	RunName    string

	ParentSeed uint64
	Parallel   bool
	Verbose    bool
}

// TrainingResult is the JSON document lgp-train writes to OutputDir.
type TrainingResult struct {
	RunName    string          `json:"run_name"`
	Timestamp  time.Time       `json:"timestamp"`
	Config     config.Config   `json:"config"`
	Duration   time.Duration   `json:"duration"`
	NumberRuns int             `json:"number_of_runs"`
	BestFitness float64        `json:"best_fitness"`
	TestMetrics *metrics.Metrics `json:"test_metrics,omitempty"`
	Statistics []evolution.Stats `json:"statistics"`
	Success    bool            `json:"success"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

func main() {
	cli := parseFlags()

	if cli.Verbose {
		log.Printf("starting lgp-train: data=%s config=%s output=%s", cli.DataPath, cli.ConfigPath, cli.OutputDir)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result := &TrainingResult{RunName: cli.RunName, Timestamp: time.Now()}

	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		saveResult(cli, result)
	}()

	if err := run(ctx, cli, result); err != nil {
		result.ErrorMessage = err.Error()
		log.Printf("training failed: %v", err)
		// os.Exit skips deferred calls, so the failed result is saved here.
		result.Duration = time.Since(start)
		saveResult(cli, result)
		os.Exit(1)
	}

	result.Success = true
	result.Duration = time.Since(start)
	log.Printf("training completed in %v, best fitness %v", result.Duration, result.BestFitness)
}

func parseFlags() *CLIConfig {
	cli := &CLIConfig{}

	flag.StringVar(&cli.DataPath, "data", "", "path to training data (.csv or .parquet, required)")
	flag.StringVar(&cli.ConfigPath, "config", "", "path to engine configuration file (json or yaml); defaults to config.Default()")
	flag.StringVar(&cli.ConfigType, "config-type", "", "config file format: json or yaml (inferred from extension if empty)")
	flag.StringVar(&cli.OutputDir, "output", "./output", "output directory for the training result")
	flag.StringVar(&cli.RunName, "name", "lgp_run", "run name, used in output file names")

	seed := flag.Int64("seed", 42, "parent seed; per-run seeds are derived deterministically from it")
	flag.BoolVar(&cli.Parallel, "parallel", false, "run the configured number of runs concurrently")
	flag.BoolVar(&cli.Verbose, "verbose", false, "verbose logging")

	flag.Parse()

	if cli.DataPath == "" {
		log.Fatal("data path is required (-data)")
	}

	cli.ParentSeed = uint64(*seed)

	return cli
}

func run(ctx context.Context, cli *CLIConfig, result *TrainingResult) error {
	if err := os.MkdirAll(cli.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	result.Config = cfg

	if v := cfg.Validate(); !v.Valid {
		return fmt.Errorf("invalid configuration: %s", v.Reason)
	}

	ds, err := loadDataset(cli.DataPath, cfg.NumFeatures)
	if err != nil {
		return err
	}

	registry := operation.BuiltinRegistry[float64](numeric.Float64Ops{})

	pool, err := registry.Resolve(cfg.Operations)
	if err != nil {
		return fmt.Errorf("resolve operations: %w", err)
	}

	constants, err := parseConstants(cfg.Constants)
	if err != nil {
		return err
	}

	outputs := []int{cfg.NumFeatures}

	newRun := func(source *rng.Source) ([]*program.Program[float64], evolution.Config[float64]) {
		regsTemplate := register.New[float64](cfg.NumFeatures, cfg.NumCalculationRegisters, constants, nil)

		gen := &generate.EffectiveProgramGenerator[float64]{
			Pool:                     pool,
			InitialMinLen:            cfg.InitialMinimumProgramLength,
			InitialMaxLen:            cfg.InitialMaximumProgramLength,
			BranchInitialisationRate: cfg.BranchInitialisationRate,
			ConstantsRate:            cfg.ConstantsRate,
			Outputs:                  outputs,
			Ops:                      numeric.Float64Ops{},
			SentinelTrueValue:        1,
			RNG:                      source,
		}

		population := make([]*program.Program[float64], cfg.PopulationSize)
		for i := range population {
			p, genErr := gen.Random(regsTemplate)
			if genErr != nil {
				log.Fatalf("generate initial program: %v", genErr)
			}

			population[i] = p
		}

		instrGen := &generate.InstructionGenerator[float64]{Pool: pool, Registers: regsTemplate, ConstantsRate: cfg.ConstantsRate, RNG: source}

		runCfg := evolution.Config[float64]{
			TournamentSize:    2,
			CrossoverRate:     cfg.CrossoverRate,
			MicroMutationRate: cfg.MicroMutationRate,
			MacroMutationRate: cfg.MacroMutationRate,
			Generations:       cfg.Generations,
			StoppingCriterion: cfg.StoppingCriterion,
			CrossoverOptions: recombination.Options{
				MaxSegmentLength:           4,
				MaxCrossoverDistance:       8,
				MaxSegmentLengthDifference: 2,
				MinProgramLength:           cfg.MinimumProgramLength,
				MaxProgramLength:           cfg.MaximumProgramLength,
				MaxRetries:                 10,
			},
			Macro: &mutation.Macro[float64]{
				InsertionRate:    0.5,
				MinProgramLength: cfg.MinimumProgramLength,
				MaxProgramLength: cfg.MaximumProgramLength,
				Generator:        instrGen,
				RNG:              source,
			},
			Micro: &mutation.Micro[float64]{
				RegisterMutationRate:     1.0 / 3,
				OperatorMutationRate:     1.0 / 3,
				Generator:                instrGen,
				ConstantMutationFunction: mutation.NewGaussianConstantMutation[float64](numeric.Float64Ops{}, 1.0, source),
				RNG:                      source,
			},
			Fitness: &fitness.Pipeline[float64]{Fn: fitness.NewMSE[float64](numeric.Float64Ops{})},
			Dataset: ds,
			RNG:     source,
		}

		return population, runCfg
	}

	tr := &trainer.Trainer[float64]{
		NumberOfRuns: cfg.NumberOfRuns,
		ParentSeed:   cli.ParentSeed,
		NewRun:       newRun,
	}

	var (
		results []*evolution.Result[float64]
		runErr  error
	)

	if cli.Parallel {
		results, runErr = tr.RunParallel(ctx)
	} else {
		results, runErr = tr.RunSequential(ctx)
	}

	if runErr != nil {
		return fmt.Errorf("training run: %w", runErr)
	}

	best := trainer.Best(results)
	if best == nil {
		return fmt.Errorf("no run produced a result")
	}

	result.NumberRuns = cfg.NumberOfRuns
	result.BestFitness = best.Fitness

	for _, r := range results {
		result.Statistics = append(result.Statistics, r.Statistics...)
	}

	predicted, expected, err := evolution.TestPhase(best, ds)
	if err != nil {
		return fmt.Errorf("test phase: %w", err)
	}

	result.TestMetrics = metrics.Compute(flattenFirstValue(predicted), flattenFirstTarget(expected))

	return nil
}

func loadConfig(cli *CLIConfig) (config.Config, error) {
	if cli.ConfigPath == "" {
		return config.Default(), nil
	}

	format := cli.ConfigType
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(cli.ConfigPath)), ".")
	}

	switch format {
	case "yaml", "yml":
		return config.LoadYAML(cli.ConfigPath)
	default:
		return config.LoadJSON(cli.ConfigPath)
	}
}

func loadDataset(path string, numFeatures int) (*fitness.Dataset[float64], error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return dataset.LoadParquet(path)
	default:
		return dataset.LoadCSV(path, numFeatures)
	}
}

func parseConstants(raw []string) ([]float64, error) {
	constants := make([]float64, len(raw))

	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse constant %q: %w", s, err)
		}

		constants[i] = v
	}

	return constants, nil
}

// flattenFirstValue extracts the first output value of each case, the
// scalar lgp-train scores when the configured program has a single output
// register.
func flattenFirstValue(outputs []types.Output[float64]) []float64 {
	values := make([]float64, len(outputs))
	for i, o := range outputs {
		values[i] = o.Values[0]
	}

	return values
}

func flattenFirstTarget(targets []types.Target[float64]) []float64 {
	values := make([]float64, len(targets))
	for i, t := range targets {
		values[i] = t.Values[0]
	}

	return values
}

func saveResult(cli *CLIConfig, result *TrainingResult) {
	path := filepath.Join(cli.OutputDir, fmt.Sprintf("%s_result.json", cli.RunName))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Printf("marshal training result: %v", err)
		return
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("write training result: %v", err)
		return
	}

	if cli.Verbose {
		log.Printf("training result saved to %s", path)
	}
}
