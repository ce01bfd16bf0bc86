package register

import "github.com/lgpkit/lgp/types"

// Set is a fixed-size, index-addressable bank of registers partitioned
// into three contiguous half-open ranges: input registers
// [0, numInput), calculation registers [numInput, numInput+numCalculation),
// and constant registers [numInput+numCalculation, total).
//
// A Set is always owned by exactly one Program; it is deep-cloned whenever
// a Program is constructed or cloned so that executing one program never
// perturbs another.
type Set[T Numeric] struct {
	numInput       int
	numCalculation int
	numConstant    int
	values         []T
	defaults       DefaultValueProvider[T]
}

// New builds a register set with numInput input registers and
// numCalculation calculation registers, both initialised via defaults, plus
// one constant register per entry in constants, initialised by copying the
// given values directly into the backing slice.
func New[T Numeric](numInput, numCalculation int, constants []T, defaults DefaultValueProvider[T]) *Set[T] {
	if defaults == nil {
		defaults = ZeroValueProvider[T]{}
	}

	total := numInput + numCalculation + len(constants)
	s := &Set[T]{
		numInput:       numInput,
		numCalculation: numCalculation,
		numConstant:    len(constants),
		values:         make([]T, total),
		defaults:       defaults,
	}

	for i := 0; i < numInput+numCalculation; i++ {
		s.values[i] = defaults.Default()
	}

	copy(s.values[numInput+numCalculation:], constants)

	return s
}

// Len returns the total number of registers in the bank.
func (s *Set[T]) Len() int {
	return len(s.values)
}

// NumInput returns the number of input registers.
func (s *Set[T]) NumInput() int {
	return s.numInput
}

// NumCalculation returns the number of calculation registers.
func (s *Set[T]) NumCalculation() int {
	return s.numCalculation
}

// NumConstant returns the number of constant registers.
func (s *Set[T]) NumConstant() int {
	return s.numConstant
}

// RegisterType classifies the register at index i, or Unknown if i is out
// of range.
func (s *Set[T]) RegisterType(i int) types.RegisterType {
	switch {
	case i < 0 || i >= len(s.values):
		return types.Unknown
	case i < s.numInput:
		return types.Input
	case i < s.numInput+s.numCalculation:
		return types.Calculation
	default:
		return types.Constant
	}
}

// Get reads the value of register i.
func (s *Set[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(s.values) {
		return zero, ErrOutOfRange
	}

	return s.values[i], nil
}

// Set writes v to register i via the checked path: it fails if i names a
// constant register.
func (s *Set[T]) Set(i int, v T) error {
	if i < 0 || i >= len(s.values) {
		return ErrOutOfRange
	}

	if s.RegisterType(i) == types.Constant {
		return ErrConstantWrite
	}

	s.values[i] = v

	return nil
}

// Overwrite writes v to register i unconditionally, bypassing the
// constant-write check. Apply writes through it, and the constant-mutation
// micro operator uses it; New and Clone copy values directly instead.
func (s *Set[T]) Overwrite(i int, v T) error {
	if i < 0 || i >= len(s.values) {
		return ErrOutOfRange
	}

	s.values[i] = v

	return nil
}

// Apply reads register i, applies f, and writes the result back via the
// unchecked overwrite path.
func (s *Set[T]) Apply(i int, f func(T) T) error {
	v, err := s.Get(i)
	if err != nil {
		return err
	}

	return s.Overwrite(i, f(v))
}

// WriteSample loads features into the input registers in order. It fails
// if len(features) does not equal NumInput().
func (s *Set[T]) WriteSample(features []T) error {
	if len(features) != s.numInput {
		return ErrSampleWidth
	}

	copy(s.values[:s.numInput], features)

	return nil
}

// Reset restores every input and calculation register to the value
// returned by the configured DefaultValueProvider. Constant registers are
// untouched.
func (s *Set[T]) Reset() {
	for i := 0; i < s.numInput+s.numCalculation; i++ {
		s.values[i] = s.defaults.Default()
	}
}

// Clone returns an independent deep copy of the register set.
func (s *Set[T]) Clone() *Set[T] {
	values := make([]T, len(s.values))
	copy(values, s.values)

	return &Set[T]{
		numInput:       s.numInput,
		numCalculation: s.numCalculation,
		numConstant:    s.numConstant,
		values:         values,
		defaults:       s.defaults,
	}
}
