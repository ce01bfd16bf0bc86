package dataset

import "errors"

// ErrTooFewRows is returned when a dataset file has fewer than two rows
// (header plus at least one data row), or zero records for formats without
// a header.
var ErrTooFewRows = errors.New("dataset: file has too few rows")

// ErrFeatureColumnCount is returned when a CSV row does not have enough
// columns to hold numFeatures features plus at least one target.
var ErrFeatureColumnCount = errors.New("dataset: row does not have enough columns for the configured feature count")
