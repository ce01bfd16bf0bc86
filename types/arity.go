// Package types contains shared, fundamental types for the lgp framework.
package types

// Arity is an enum for the number of arguments an operation consumes.
type Arity int

const (
	// Nullary operations take no arguments.
	Nullary Arity = iota
	// Unary operations take exactly one argument.
	Unary
	// Binary operations take exactly two arguments.
	Binary
	// Ternary operations take exactly three arguments.
	Ternary
)

// String returns the symbolic name of the arity, or "Nary" for arities
// beyond the named cases.
func (a Arity) String() string {
	switch a {
	case Nullary:
		return "Nullary"
	case Unary:
		return "Unary"
	case Binary:
		return "Binary"
	case Ternary:
		return "Ternary"
	default:
		return "Nary"
	}
}

// Int returns the number of arguments the arity represents.
func (a Arity) Int() int {
	return int(a)
}

// NewArity builds an Arity from an argument count, including counts beyond
// the named Nullary/Unary/Binary/Ternary cases.
func NewArity(n int) Arity {
	return Arity(n)
}
