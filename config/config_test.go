package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgpkit/lgp/config"
)

func TestDefault_NeedsOperationsNumFeaturesAndConstantsToBeValid(t *testing.T) {
	cfg := config.Default()

	result := cfg.Validate()
	assert.False(t, result.Valid)

	cfg.Operations = []string{"+", "-"}
	cfg.NumFeatures = 1
	// The default ConstantsRate of 0.5 is only valid with at least one constant.
	cfg.Constants = []string{"1.0"}

	result = cfg.Validate()
	assert.True(t, result.Valid)
}

func TestValidate_RejectsConstantsRateWithoutConstants(t *testing.T) {
	cfg := config.Default()
	cfg.Operations = []string{"+"}
	cfg.NumFeatures = 1
	cfg.ConstantsRate = 0.5
	cfg.Constants = nil

	result := cfg.Validate()
	assert.False(t, result.Valid)
	assert.Contains(t, result.Reason, "constantsRate")
}

func TestValidate_RejectsOutOfRangeRates(t *testing.T) {
	cfg := config.Default()
	cfg.Operations = []string{"+"}
	cfg.NumFeatures = 1
	cfg.ConstantsRate = 0
	cfg.CrossoverRate = 1.5

	result := cfg.Validate()
	assert.False(t, result.Valid)
}

func TestLoadJSON_OverridesDefaultsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")

	content := `{"numFeatures": 3, "operations": ["+", "-"], "populationSize": 50}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.NumFeatures)
	assert.Equal(t, []string{"+", "-"}, cfg.Operations)
	assert.Equal(t, 50, cfg.PopulationSize)
	assert.Equal(t, 200, cfg.MaximumProgramLength) // default preserved
}

func TestLoadYAML_OverridesDefaultsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")

	content := "numFeatures: 2\noperations:\n  - \"+\"\ngenerations: 25\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadYAML(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.NumFeatures)
	assert.Equal(t, []string{"+"}, cfg.Operations)
	assert.Equal(t, 25, cfg.Generations)
}

func TestLoadJSON_MissingFileReturnsLoadError(t *testing.T) {
	_, err := config.LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var loadErr *config.LoadError
	assert.ErrorAs(t, err, &loadErr)
}
