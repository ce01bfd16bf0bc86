package dataset

import (
	"github.com/parquet-go/parquet-go"

	"github.com/lgpkit/lgp/fitness"
	"github.com/lgpkit/lgp/types"
)

// parquetRow is the on-disk row shape LoadParquet expects: a fixed-width
// feature vector and a fixed-width target vector, both stored as repeated
// float64 columns.
type parquetRow struct {
	Features []float64 `parquet:"features"`
	Targets  []float64 `parquet:"targets"`
}

// LoadParquet reads a Parquet file of parquetRow-shaped records into a
// Dataset. It is an additive loader alongside the CSV format, for datasets
// too large to load comfortably as text.
func LoadParquet(path string) (*fitness.Dataset[float64], error) {
	rows, err := parquet.ReadFile[parquetRow](path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: ErrTooFewRows}
	}

	samples := make([]fitness.Sample[float64], len(rows))

	for i, row := range rows {
		samples[i] = fitness.Sample[float64]{
			Features: row.Features,
			Target:   types.MultipleTarget(row.Targets),
		}
	}

	return &fitness.Dataset[float64]{Samples: samples}, nil
}

// WriteParquet writes ds out as a Parquet file of parquetRow records, the
// inverse of LoadParquet.
func WriteParquet(path string, ds *fitness.Dataset[float64]) error {
	rows := make([]parquetRow, len(ds.Samples))

	for i, s := range ds.Samples {
		rows[i] = parquetRow{Features: s.Features, Targets: s.Target.Values}
	}

	if err := parquet.WriteFile(path, rows); err != nil {
		return &LoadError{Path: path, Err: err}
	}

	return nil
}
