package register

import "errors"

// ErrConstantWrite is returned when the checked write path targets a
// constant register.
var ErrConstantWrite = errors.New("register: cannot write to a constant register")

// ErrOutOfRange is returned when an index falls outside the register bank.
var ErrOutOfRange = errors.New("register: index out of range")

// ErrSampleWidth is returned when a sample's feature vector does not
// contain exactly as many values as there are input registers.
var ErrSampleWidth = errors.New("register: sample feature count does not match input register count")
