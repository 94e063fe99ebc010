package graph

import "github.com/zerfoo/gigagrad/numeric"

// Handle names a single node within a specific Graph value. Handles are
// comparable and lightweight; two handles are equal iff they come from
// the same Graph and share an index. A Handle from one Graph must never
// be passed to another Graph's methods; the methods do not check which
// Graph a handle belongs to, so such a call is not reported as an error.
type Handle[T numeric.Numeric] struct {
	g   *Graph[T]
	idx int
}

func (h Handle[T]) node() node[T] { return h.g.nodes[h.idx] }

// Kind reports which variant of the closed node algebra h refers to.
func (h Handle[T]) Kind() NodeKind { return h.node().kind() }

// Shape returns h's resolved output shape. Length equals rank; an empty
// shape denotes a scalar (spec.md §5, I1).
func (h Handle[T]) Shape() []int { return h.node().shape() }

// Strides returns h's canonical strides, one per shape dimension, with a
// 0 at every size-1 dimension (spec.md §5, I1/I3).
func (h Handle[T]) Strides() []int { return h.node().strides() }

// OpName renders a short diagnostic name for h's node: the node kind for
// Tensor/Immediate/View, or "kind:OPCODE" for Unary/Binary/Reduce (e.g.
// "BinaryOp:ADD").
func (h Handle[T]) OpName() string {
	switch n := h.node().(type) {
	case *unaryNode[T]:
		return KindUnary.String() + ":" + n.op.String()
	case *binaryNode[T]:
		return KindBinary.String() + ":" + n.op.String()
	case *reduceNode[T]:
		return KindReduce.String() + ":" + n.op.String()
	default:
		return h.Kind().String()
	}
}

// Attributes returns the node's non-shape metadata as a JSON-friendly
// map, mirroring the teacher framework's Node.Attributes()/
// GetNodeMetadata convention for introspection and diagnostics (spec.md
// §6, "graph introspection").
func (h Handle[T]) Attributes() map[string]interface{} {
	attrs := make(map[string]interface{})

	switch n := h.node().(type) {
	case *unaryNode[T]:
		attrs["op"] = n.op.String()
		attrs["x"] = n.x
	case *binaryNode[T]:
		attrs["op"] = n.op.String()
		attrs["x"] = n.x
		attrs["y"] = n.y
	case *reduceNode[T]:
		attrs["op"] = n.op.String()
		attrs["x"] = n.x
		attrs["dims"] = n.dims
		attrs["keepdim"] = n.keepdim
	case *viewNode[T]:
		attrs["x"] = n.x
	case *immediateNode[T]:
		attrs["value"] = n.value
	}

	return attrs
}

// Index returns h's position in the arena. Because the graph is
// append-only and every operand is appended before its consumer, Index
// also doubles as h's position in topological order (spec.md §5, I2).
func (h Handle[T]) Index() int { return h.idx }

// TensorData returns the buffer payload of a Tensor node. It returns
// ErrKind if h does not refer to a Tensor node.
func (h Handle[T]) TensorData() (TensorData, error) {
	n, ok := h.node().(*tensorNode[T])
	if !ok {
		return nil, kindErrorf("TensorData", "handle does not refer to a Tensor node")
	}

	return n.data, nil
}

// SetTensorData attaches data to a Tensor node, e.g. after AddInput was
// called with a nil placeholder. It returns ErrKind if h does not refer
// to a Tensor node.
func (h Handle[T]) SetTensorData(data TensorData) error {
	n, ok := h.node().(*tensorNode[T])
	if !ok {
		return kindErrorf("SetTensorData", "handle does not refer to a Tensor node")
	}

	n.data = data

	return nil
}

// ImmediateValue returns the scalar literal of an Immediate node. It
// returns ErrKind if h does not refer to an Immediate node.
func (h Handle[T]) ImmediateValue() (T, error) {
	n, ok := h.node().(*immediateNode[T])
	if !ok {
		var zero T

		return zero, kindErrorf("ImmediateValue", "handle does not refer to an Immediate node")
	}

	return n.value, nil
}

// UnaryOperand returns the operand of a UnaryOp node.
func (h Handle[T]) UnaryOperand() (Handle[T], error) {
	n, ok := h.node().(*unaryNode[T])
	if !ok {
		return Handle[T]{}, kindErrorf("UnaryOperand", "handle does not refer to a UnaryOp node")
	}

	return Handle[T]{g: h.g, idx: n.x}, nil
}

// BinaryOperands returns the x, y operands of a BinaryOp node.
func (h Handle[T]) BinaryOperands() (Handle[T], Handle[T], error) {
	n, ok := h.node().(*binaryNode[T])
	if !ok {
		return Handle[T]{}, Handle[T]{}, kindErrorf("BinaryOperands", "handle does not refer to a BinaryOp node")
	}

	return Handle[T]{g: h.g, idx: n.x}, Handle[T]{g: h.g, idx: n.y}, nil
}

// ReduceOperand returns the operand of a ReduceOp node.
func (h Handle[T]) ReduceOperand() (Handle[T], error) {
	n, ok := h.node().(*reduceNode[T])
	if !ok {
		return Handle[T]{}, kindErrorf("ReduceOperand", "handle does not refer to a ReduceOp node")
	}

	return Handle[T]{g: h.g, idx: n.x}, nil
}

// ReduceDims returns the normalized, sorted reduction axes and the
// keepdim flag of a ReduceOp node.
func (h Handle[T]) ReduceDims() ([]int, bool, error) {
	n, ok := h.node().(*reduceNode[T])
	if !ok {
		return nil, false, kindErrorf("ReduceDims", "handle does not refer to a ReduceOp node")
	}

	return n.dims, n.keepdim, nil
}

// ViewOperand returns the operand of a ViewOp node.
func (h Handle[T]) ViewOperand() (Handle[T], error) {
	n, ok := h.node().(*viewNode[T])
	if !ok {
		return Handle[T]{}, kindErrorf("ViewOperand", "handle does not refer to a ViewOp node")
	}

	return Handle[T]{g: h.g, idx: n.x}, nil
}
