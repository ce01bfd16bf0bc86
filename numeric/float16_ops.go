package numeric

import (
	"math"

	"github.com/zerfoo/float16"
)

// Float16Ops implements Arithmetic[float16.Float16], a reduced-precision
// register value type useful for large populations where register-bank
// memory traffic dominates.
type Float16Ops struct{}

// Add returns a + b.
func (Float16Ops) Add(a, b float16.Float16) float16.Float16 {
	res, _ := float16.AddWithMode(a, b, float16.ModeFastArithmetic, float16.RoundNearestEven)

	return res
}

// Sub returns a - b.
func (Float16Ops) Sub(a, b float16.Float16) float16.Float16 {
	res, _ := float16.SubWithMode(a, b, float16.ModeFastArithmetic, float16.RoundNearestEven)

	return res
}

// Mul returns a * b.
func (Float16Ops) Mul(a, b float16.Float16) float16.Float16 {
	res, _ := float16.MulWithMode(a, b, float16.ModeFastArithmetic, float16.RoundNearestEven)

	return res
}

// Div returns a / b, protected against division by zero.
func (ops Float16Ops) Div(a, b float16.Float16) float16.Float16 {
	if b.IsZero() {
		return float16.FromFloat32(0)
	}

	res, _ := float16.DivWithMode(a, b, float16.ModeFastArithmetic, float16.RoundNearestEven)

	return res
}

// Abs returns the absolute value of x.
func (ops Float16Ops) Abs(x float16.Float16) float16.Float16 {
	return float16.FromFloat32(float32(math.Abs(float64(x.ToFloat32()))))
}

// Sqrt returns the square root of x.
func (ops Float16Ops) Sqrt(x float16.Float16) float16.Float16 {
	return float16.FromFloat32(float32(math.Sqrt(float64(x.ToFloat32()))))
}

// Neg returns -x.
func (ops Float16Ops) Neg(x float16.Float16) float16.Float16 {
	return ops.Sub(float16.FromFloat32(0), x)
}

// FromFloat64 converts f to float16.Float16.
func (Float16Ops) FromFloat64(f float64) float16.Float16 {
	return float16.FromFloat64(f)
}

// ToFloat64 converts v to float64.
func (Float16Ops) ToFloat64(v float16.Float16) float64 {
	return float64(v.ToFloat32())
}

// Zero returns the float16 zero value.
func (Float16Ops) Zero() float16.Float16 { return float16.FromFloat32(0) }

// IsZero reports whether v is zero.
func (Float16Ops) IsZero(v float16.Float16) bool { return v.IsZero() }

// Equal reports whether a and b compare equal.
func (Float16Ops) Equal(a, b float16.Float16) bool { return a.ToFloat32() == b.ToFloat32() }

// GreaterThan reports whether a is greater than b.
func (Float16Ops) GreaterThan(a, b float16.Float16) bool { return a.ToFloat32() > b.ToFloat32() }

// IsFinite reports whether v is neither NaN nor +/-Inf.
func (Float16Ops) IsFinite(v float16.Float16) bool {
	f := float64(v.ToFloat32())

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
