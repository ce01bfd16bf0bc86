package mutation

import "errors"

// ErrNoOperations is returned when a mutation operator is configured with
// an empty operation pool.
var ErrNoOperations = errors.New("mutation: operation pool must be non-empty")
