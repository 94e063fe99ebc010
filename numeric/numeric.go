// Package numeric defines the element-type constraint and scalar-literal
// strategy the graph builder needs. It deliberately does not provide the
// full arithmetic surface (Add/Sub/Mul/Tanh/...) a compute engine would:
// the builder never evaluates a tensor, it only needs to materialize the
// occasional scalar literal (-1 for negation, 1 for the sigmoid, π/2 for
// the cos rewrite) as an Immediate node.
package numeric

import (
	"github.com/zerfoo/float16"
	"github.com/zerfoo/float8"
)

// Numeric constrains the element type a Graph can be instantiated over.
// It mirrors the teacher framework's tensor.Numeric constraint so the same
// reduced-precision types (float8.Float8, float16.Float16) that flow
// through a real execution engine can also flow through the builder.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		float8.Float8 |
		float16.Float16
}

// Scalars constructs literal values of T from a float32, the one
// capability op constructors need to lift a scalar into an Immediate
// node. Implementations are provided for float32, float64, int, int32,
// int64, float16.Float16 and float8.Float8; the other Numeric types
// (int8, int16, uint, uint32, uint64) have none in this package.
type Scalars[T Numeric] interface {
	// FromFloat32 converts f into the element type T.
	FromFloat32(f float32) T
}
