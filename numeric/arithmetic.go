// Package numeric provides the arithmetic contract the register bank,
// operation library, and fitness pipeline use to stay agnostic of the
// concrete register value type.
package numeric

// Arithmetic defines the operations the engine needs on a register value
// type T. It lets registers, operations, and fitness functions work the
// same way whether T is float64 (the default), float32, or a reduced
// precision type such as float16.Float16 or float8.Float8.
type Arithmetic[T any] interface {
	// Add returns a + b.
	Add(a, b T) T
	// Sub returns a - b.
	Sub(a, b T) T
	// Mul returns a * b.
	Mul(a, b T) T
	// Div returns a / b, protected against division by zero (returns zero).
	Div(a, b T) T

	// Abs returns the absolute value of x.
	Abs(x T) T
	// Sqrt returns the square root of x.
	Sqrt(x T) T
	// Neg returns -x.
	Neg(x T) T

	// FromFloat64 converts a float64 into T.
	FromFloat64(f float64) T
	// ToFloat64 converts T into a float64, used by fitness functions and
	// statistics which always aggregate in double precision.
	ToFloat64(v T) float64

	// Zero returns the additive identity.
	Zero() T
	// IsZero reports whether v is the additive identity.
	IsZero(v T) bool
	// Equal reports whether a and b compare equal, used to test a branch
	// operation's result against the configured sentinel true value.
	Equal(a, b T) bool
	// GreaterThan reports whether a is greater than b.
	GreaterThan(a, b T) bool
	// IsFinite reports whether v is neither NaN nor +/-Inf.
	IsFinite(v T) bool
}
