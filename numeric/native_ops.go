package numeric

import "math"

// Float64Ops implements Arithmetic[float64], the default register value
// type.
type Float64Ops struct{}

// Add returns a + b.
func (Float64Ops) Add(a, b float64) float64 { return a + b }

// Sub returns a - b.
func (Float64Ops) Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func (Float64Ops) Mul(a, b float64) float64 { return a * b }

// Div returns a / b, protected against division by zero.
func (Float64Ops) Div(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}

// Abs returns the absolute value of x.
func (Float64Ops) Abs(x float64) float64 { return math.Abs(x) }

// Sqrt returns the square root of x.
func (Float64Ops) Sqrt(x float64) float64 { return math.Sqrt(x) }

// Neg returns -x.
func (Float64Ops) Neg(x float64) float64 { return -x }

// FromFloat64 returns f unchanged.
func (Float64Ops) FromFloat64(f float64) float64 { return f }

// ToFloat64 returns v unchanged.
func (Float64Ops) ToFloat64(v float64) float64 { return v }

// Zero returns 0.
func (Float64Ops) Zero() float64 { return 0 }

// IsZero reports whether v is zero.
func (Float64Ops) IsZero(v float64) bool { return v == 0 }

// Equal reports whether a and b compare equal.
func (Float64Ops) Equal(a, b float64) bool { return a == b }

// GreaterThan reports whether a is greater than b.
func (Float64Ops) GreaterThan(a, b float64) bool { return a > b }

// IsFinite reports whether v is neither NaN nor +/-Inf.
func (Float64Ops) IsFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Float32Ops implements Arithmetic[float32].
type Float32Ops struct{}

// Add returns a + b.
func (Float32Ops) Add(a, b float32) float32 { return a + b }

// Sub returns a - b.
func (Float32Ops) Sub(a, b float32) float32 { return a - b }

// Mul returns a * b.
func (Float32Ops) Mul(a, b float32) float32 { return a * b }

// Div returns a / b, protected against division by zero.
func (Float32Ops) Div(a, b float32) float32 {
	if b == 0 {
		return 0
	}

	return a / b
}

// Abs returns the absolute value of x.
func (Float32Ops) Abs(x float32) float32 { return float32(math.Abs(float64(x))) }

// Sqrt returns the square root of x.
func (Float32Ops) Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Neg returns -x.
func (Float32Ops) Neg(x float32) float32 { return -x }

// FromFloat64 converts f to float32.
func (Float32Ops) FromFloat64(f float64) float32 { return float32(f) }

// ToFloat64 converts v to float64.
func (Float32Ops) ToFloat64(v float32) float64 { return float64(v) }

// Zero returns 0.
func (Float32Ops) Zero() float32 { return 0 }

// IsZero reports whether v is zero.
func (Float32Ops) IsZero(v float32) bool { return v == 0 }

// Equal reports whether a and b compare equal.
func (Float32Ops) Equal(a, b float32) bool { return a == b }

// GreaterThan reports whether a is greater than b.
func (Float32Ops) GreaterThan(a, b float32) bool { return a > b }

// IsFinite reports whether v is neither NaN nor +/-Inf.
func (Float32Ops) IsFinite(v float32) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
