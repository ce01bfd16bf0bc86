// Package operation implements the operation contract every instruction
// executes against: a pure, fixed-arity function over register values plus
// printable metadata. Operations are shared immutable values referenced by
// many instructions.
package operation

import "github.com/lgpkit/lgp/types"

// Func is a pure function over exactly Arity()-many arguments. It must be
// deterministic and side-effect-free: the engine caches fitness on the
// assumption that re-executing a program yields the same result.
type Func[T any] func(args []T) T

// Operation is an immutable, closed representation of an operator: an
// arity, a calling function, a printable symbol, and a branch flag. Branch
// operations are not a distinct subtype (Design Note: avoid virtual
// hierarchies) — IsBranch is a plain capability flag, and every operation
// shares the same calling convention.
type Operation[T any] struct {
	symbol   string
	arity    types.Arity
	fn       Func[T]
	isBranch bool
}

// New constructs a non-branch operation.
func New[T any](symbol string, arity types.Arity, fn Func[T]) Operation[T] {
	return Operation[T]{symbol: symbol, arity: arity, fn: fn}
}

// NewBranch constructs a branch operation: its result is interpreted as a
// predicate for conditional execution by Program.Execute.
func NewBranch[T any](symbol string, arity types.Arity, fn Func[T]) Operation[T] {
	return Operation[T]{symbol: symbol, arity: arity, fn: fn, isBranch: true}
}

// Arity returns the number of arguments this operation consumes.
func (o Operation[T]) Arity() types.Arity {
	return o.arity
}

// Symbol returns the operation's printable form.
func (o Operation[T]) Symbol() string {
	return o.symbol
}

// IsBranch reports whether this operation's result should be interpreted
// as a predicate for conditional execution.
func (o Operation[T]) IsBranch() bool {
	return o.isBranch
}

// Apply invokes the operation's function. It fails with ErrArity if len(args)
// does not equal Arity().Int().
func (o Operation[T]) Apply(args []T) (T, error) {
	var zero T
	if len(args) != o.arity.Int() {
		return zero, ErrArity
	}

	return o.fn(args), nil
}
