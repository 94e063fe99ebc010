package graph

import (
	gorgoniatensor "gorgonia.org/tensor"

	"github.com/zerfoo/gigagrad/numeric"
)

// TensorData is the opaque buffer payload a Tensor node carries. The core
// never reads or writes through it; it is a handle callers attach at
// AddInput time and retrieve later, backed by a real third-party tensor
// type (gorgonia.org/tensor.Tensor) rather than a hand-rolled buffer, the
// way the pack's itohio-EasyRobot module pulls in gorgonia.org/tensor for
// its own storage layer.
type TensorData = gorgoniatensor.Tensor

// node is the sealed interface every variant of the closed node algebra
// implements. The unexported isNode method mirrors the sealing trick the
// teacher framework uses to close its tensor.Tensor interface via an
// unexported isTensor method: only types declared in this package can
// satisfy node, so the variant set is closed at compile time, matching
// spec.md §3's "Node variants (closed set)".
type node[T numeric.Numeric] interface {
	kind() NodeKind
	shape() []int
	strides() []int
	isNode()
}

// baseNode carries the two fields every variant has: its resolved output
// shape and canonical strides. Every concrete variant embeds it.
type baseNode struct {
	outShape   []int
	outStrides []int
}

func (n *baseNode) shape() []int   { return n.outShape }
func (n *baseNode) strides() []int { return n.outStrides }
func (*baseNode) isNode()          {}

// tensorNode is an externally supplied buffer handle; its shape is given
// at creation (spec.md §3, Tensor).
type tensorNode[T numeric.Numeric] struct {
	baseNode

	data TensorData
}

func (*tensorNode[T]) kind() NodeKind { return KindTensor }

// immediateNode is a scalar literal of the element type; shape is empty
// (spec.md §3, Immediate).
type immediateNode[T numeric.Numeric] struct {
	baseNode

	value T
}

func (*immediateNode[T]) kind() NodeKind { return KindImmediate }

// unaryNode is UnaryOp{kind, x}; shape = shape of x (spec.md §3).
type unaryNode[T numeric.Numeric] struct {
	baseNode

	op UnaryKind
	x  int
}

func (*unaryNode[T]) kind() NodeKind { return KindUnary }

// binaryNode is BinaryOp{kind, x, y}; shape = broadcast(shape(x),
// shape(y)) (spec.md §3).
type binaryNode[T numeric.Numeric] struct {
	baseNode

	op   BinaryKind
	x, y int
}

func (*binaryNode[T]) kind() NodeKind { return KindBinary }

// reduceNode is ReduceOp{kind, x, dims, keepdim}; dims is a sorted,
// normalized axis set (spec.md §3).
type reduceNode[T numeric.Numeric] struct {
	baseNode

	op      ReduceKind
	x       int
	dims    []int
	keepdim bool
}

func (*reduceNode[T]) kind() NodeKind { return KindReduce }

// viewNode is ViewOp{x}: same data as x, a different shape/strides
// (spec.md §3).
type viewNode[T numeric.Numeric] struct {
	baseNode

	x int
}

func (*viewNode[T]) kind() NodeKind { return KindView }

// Static assertions that every concrete variant satisfies the sealed
// interface, mirroring the teacher's compile-time Node[T] assertions.
var (
	_ node[float32] = (*tensorNode[float32])(nil)
	_ node[float32] = (*immediateNode[float32])(nil)
	_ node[float32] = (*unaryNode[float32])(nil)
	_ node[float32] = (*binaryNode[float32])(nil)
	_ node[float32] = (*reduceNode[float32])(nil)
	_ node[float32] = (*viewNode[float32])(nil)
)
