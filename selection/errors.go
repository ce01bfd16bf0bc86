package selection

import "errors"

// ErrTournament is returned when a tournament cannot be sampled: a
// non-positive tournament size, or a population too small to support the
// requested number of tournaments without replacement.
var ErrTournament = errors.New("selection: invalid tournament parameters")
