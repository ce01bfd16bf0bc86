package generate

import "errors"

// ErrEmptyPool is returned when an instruction or program generator is
// configured with an empty operation pool.
var ErrEmptyPool = errors.New("generate: operation pool must be non-empty")

// ErrNoWritableRegisters is returned when a register set has no input or
// calculation registers to choose a destination from.
var ErrNoWritableRegisters = errors.New("generate: register set has no writable (input or calculation) registers")
