package operation

import (
	"math"

	"github.com/lgpkit/lgp/numeric"
	"github.com/lgpkit/lgp/types"
)

// BuiltinRegistry returns a Registry pre-populated with a common arithmetic
// and branch operator set, so a configuration can reference operations by
// name ("add", "sub", ...) without the caller having to hand-register the
// primitives every time. Callers remain free to register additional
// operations, including ones the core never ships.
func BuiltinRegistry[T any](ops numeric.Arithmetic[T]) *Registry[T] {
	r := NewRegistry[T]()

	r.Register("add", New("+", types.Binary, func(a []T) T { return ops.Add(a[0], a[1]) }))
	r.Register("sub", New("-", types.Binary, func(a []T) T { return ops.Sub(a[0], a[1]) }))
	r.Register("mul", New("*", types.Binary, func(a []T) T { return ops.Mul(a[0], a[1]) }))
	r.Register("div", New("/", types.Binary, func(a []T) T { return ops.Div(a[0], a[1]) }))
	r.Register("neg", New("-", types.Unary, func(a []T) T { return ops.Neg(a[0]) }))
	r.Register("abs", New("abs", types.Unary, func(a []T) T { return ops.Abs(a[0]) }))
	r.Register("sqrt", New("sqrt", types.Unary, func(a []T) T { return ops.Sqrt(ops.Abs(a[0])) }))
	r.Register("identity", New("id", types.Unary, func(a []T) T { return a[0] }))
	r.Register("sin", floatUnary(ops, "sin", math.Sin))
	r.Register("cos", floatUnary(ops, "cos", math.Cos))

	r.Register("branch_gt", NewBranch("if(>)", types.Binary, func(a []T) T {
		if ops.GreaterThan(a[0], a[1]) {
			return ops.FromFloat64(1)
		}

		return ops.FromFloat64(0)
	}))

	return r
}

// floatUnary wraps a plain float64 -> float64 function so it can operate
// on any register numeric type via the Arithmetic conversion hooks.
func floatUnary[T any](ops numeric.Arithmetic[T], symbol string, f func(float64) float64) Operation[T] {
	return New(symbol, types.Unary, func(a []T) T {
		return ops.FromFloat64(f(ops.ToFloat64(a[0])))
	})
}
