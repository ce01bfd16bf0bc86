package operation

import "errors"

// ErrArity is returned when an operation is invoked with a number of
// arguments that does not match its declared arity.
var ErrArity = errors.New("operation: wrong number of arguments")

// ErrUnknownOperation is returned when an identifier does not name a
// registered operation.
var ErrUnknownOperation = errors.New("operation: unknown identifier")
