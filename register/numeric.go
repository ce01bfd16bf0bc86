// Package register implements the fixed-layout register bank a Program
// executes against: a contiguous input range, a contiguous calculation
// range, and a contiguous read-only constant range.
package register

import (
	"github.com/zerfoo/float16"
	"github.com/zerfoo/float8"
)

// Numeric constrains the set of types a register bank may hold values of.
type Numeric interface {
	~float32 | ~float64 | float8.Float8 | float16.Float16
}
