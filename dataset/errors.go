// Package dataset implements the file-format loaders that produce a
// fitness.Dataset: CSV and Parquet (an additive format for
// larger supervised datasets).
package dataset

import "fmt"

// LoadError wraps a parse or I/O failure from a dataset loader.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dataset: failed to load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
