package dataset

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/lgpkit/lgp/fitness"
	"github.com/lgpkit/lgp/types"
)

// LoadCSV reads a CSV file whose header row's first numFeatures columns are
// features and the rest are targets. It fails with a
// LoadError when the file cannot be opened, is empty, has fewer than two
// rows (header plus at least one data row), or a cell fails to parse as a
// float.
func LoadCSV(path string, numFeatures int) (*fitness.Dataset[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if len(rows) < 2 {
		return nil, &LoadError{Path: path, Err: ErrTooFewRows}
	}

	header := rows[0]
	if numFeatures <= 0 || numFeatures >= len(header) {
		return nil, &LoadError{Path: path, Err: ErrFeatureColumnCount}
	}

	samples := make([]fitness.Sample[float64], 0, len(rows)-1)

	for _, row := range rows[1:] {
		sample, err := parseRow(row, numFeatures)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		samples = append(samples, sample)
	}

	return &fitness.Dataset[float64]{Samples: samples}, nil
}

func parseRow(row []string, numFeatures int) (fitness.Sample[float64], error) {
	var zero fitness.Sample[float64]

	if len(row) <= numFeatures {
		return zero, ErrFeatureColumnCount
	}

	features := make([]float64, numFeatures)

	for i := 0; i < numFeatures; i++ {
		v, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			return zero, err
		}

		features[i] = v
	}

	targets := make([]float64, len(row)-numFeatures)

	for i := numFeatures; i < len(row); i++ {
		v, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			return zero, err
		}

		targets[i-numFeatures] = v
	}

	return fitness.Sample[float64]{Features: features, Target: types.MultipleTarget(targets)}, nil
}
