package program

import "errors"

// ErrNoOutputs is returned when a program is constructed with an empty
// output register index list.
var ErrNoOutputs = errors.New("program: outputRegisterIndices must be non-empty")

// ErrRegisterIndex is returned when an instruction references a register
// index outside the program's owned register set.
var ErrRegisterIndex = errors.New("program: instruction references a register outside the owned register set")
