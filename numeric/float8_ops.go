package numeric

import (
	"math"

	"github.com/zerfoo/float8"
)

// Float8Ops implements Arithmetic[float8.Float8], the lowest-precision
// register value type, useful for cache-resident populations at the cost
// of evaluation accuracy.
type Float8Ops struct{}

// Add returns a + b.
func (Float8Ops) Add(a, b float8.Float8) float8.Float8 { return float8.Add(a, b) }

// Sub returns a - b.
func (Float8Ops) Sub(a, b float8.Float8) float8.Float8 { return float8.Sub(a, b) }

// Mul returns a * b.
func (Float8Ops) Mul(a, b float8.Float8) float8.Float8 { return float8.Mul(a, b) }

// Div returns a / b, protected against division by zero.
func (Float8Ops) Div(a, b float8.Float8) float8.Float8 {
	if b.IsZero() {
		return float8.ToFloat8(0)
	}

	return float8.Div(a, b)
}

// Abs returns the absolute value of x.
func (Float8Ops) Abs(x float8.Float8) float8.Float8 {
	if x.ToFloat32() < 0 {
		return float8.ToFloat8(-x.ToFloat32())
	}

	return x
}

// Sqrt returns the square root of x.
func (Float8Ops) Sqrt(x float8.Float8) float8.Float8 {
	return float8.ToFloat8(float32(math.Sqrt(float64(x.ToFloat32()))))
}

// Neg returns -x.
func (Float8Ops) Neg(x float8.Float8) float8.Float8 {
	return float8.ToFloat8(-x.ToFloat32())
}

// FromFloat64 converts f to float8.Float8.
func (Float8Ops) FromFloat64(f float64) float8.Float8 { return float8.FromFloat64(f) }

// ToFloat64 converts v to float64.
func (Float8Ops) ToFloat64(v float8.Float8) float64 { return float64(v.ToFloat32()) }

// Zero returns the float8 zero value.
func (Float8Ops) Zero() float8.Float8 { return float8.ToFloat8(0) }

// IsZero reports whether v is zero.
func (Float8Ops) IsZero(v float8.Float8) bool { return v.IsZero() }

// Equal reports whether a and b compare equal.
func (Float8Ops) Equal(a, b float8.Float8) bool { return a.ToFloat32() == b.ToFloat32() }

// GreaterThan reports whether a is greater than b.
func (Float8Ops) GreaterThan(a, b float8.Float8) bool { return a.ToFloat32() > b.ToFloat32() }

// IsFinite reports whether v is neither NaN nor +/-Inf.
func (Float8Ops) IsFinite(v float8.Float8) bool {
	f := float64(v.ToFloat32())

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
