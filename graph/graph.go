// Package graph builds an append-only, statically-typed computation
// graph over a closed algebra of tensor-expression node kinds: Tensor,
// Immediate, UnaryOp, BinaryOp, ReduceOp and ViewOp (spec.md §3). The
// graph never mutates or removes a node once appended, so a node's index
// in the arena is a stable, comparable handle and doubles as its
// position in topological order: every operand index is strictly less
// than the index of any node that consumes it (spec.md §5, I2).
package graph

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/zerfoo/gigagrad/internal/shapealgebra"
	"github.com/zerfoo/gigagrad/numeric"
)

// Graph is the append-only arena store for a single tensor expression
// over element type T. Construct one with New and grow it exclusively
// through the Add*/Immediate/op-constructor methods; Graph itself never
// allocates a node outside this package.
//
// A Graph has no internal locking: it must have a single writer while it
// is being built, and concurrent read-only traversal is safe only once
// construction has finished.
type Graph[T numeric.Numeric] struct {
	id      uuid.UUID
	scalars numeric.Scalars[T]
	nodes   []node[T]
	inputs  []int
	weights []int
}

// New creates an empty graph for element type T. scalars supplies the
// FromFloat32 conversion the high-level op constructors (e.g. Neg's
// literal -1, Sigmoid's literal 1) need to produce element-typed
// immediates without every caller having to hand-construct T values.
func New[T numeric.Numeric](scalars numeric.Scalars[T]) *Graph[T] {
	return &Graph[T]{
		id:      uuid.New(),
		scalars: scalars,
	}
}

// ID returns a diagnostic identifier for this graph instance. It plays no
// role in Handle equality or node identity; two handles from the same
// Graph value are equal iff their indices are equal.
func (g *Graph[T]) ID() uuid.UUID { return g.id }

// appendNode appends n to the arena and returns a Handle naming its
// index. This is the only place a node[T] is ever added to nodes, which
// is what makes "operand index < consumer index" hold by construction:
// every op constructor resolves and appends its operands before it
// appends itself.
func (g *Graph[T]) appendNode(n node[T]) Handle[T] {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)

	return Handle[T]{g: g, idx: idx}
}

// AddInput declares an external tensor input of the given shape and
// returns its handle (spec.md §6, AddInput). data may be nil; it is
// filled in later via Handle.SetTensorData.
func (g *Graph[T]) AddInput(shape []int, data TensorData) Handle[T] {
	h := g.appendNode(&tensorNode[T]{
		baseNode: baseNode{outShape: shape, outStrides: canonicalStrides(shape)},
		data:     data,
	})
	g.inputs = append(g.inputs, h.idx)

	return h
}

// AddWeight declares a trainable/external parameter tensor of the given
// shape and returns its handle (spec.md §6, AddWeight). Structurally a
// weight is the same Tensor variant as an input and is registered as an
// input like one declared via AddInput; the graph additionally records it
// in the weights list, so every weight is also an input.
func (g *Graph[T]) AddWeight(shape []int, data TensorData) Handle[T] {
	h := g.appendNode(&tensorNode[T]{
		baseNode: baseNode{outShape: shape, outStrides: canonicalStrides(shape)},
		data:     data,
	})
	g.inputs = append(g.inputs, h.idx)
	g.weights = append(g.weights, h.idx)

	return h
}

// Immediate appends a scalar literal of value v (spec.md §6, Immediate).
func (g *Graph[T]) Immediate(v T) Handle[T] {
	return g.appendNode(&immediateNode[T]{
		baseNode: baseNode{outShape: []int{}, outStrides: []int{}},
		value:    v,
	})
}

// immediateFromFloat32 appends a scalar literal converted from a plain
// float32, for use by op constructors that synthesize literals (e.g.
// Sigmoid's additive 1, MatMul's squeeze bookkeeping never needs a real
// value but Neg's multiplicative -1 does).
func (g *Graph[T]) immediateFromFloat32(f float32) Handle[T] {
	return g.Immediate(g.scalars.FromFloat32(f))
}

// Inputs returns the handles of every tensor declared via AddInput or
// AddWeight, in declaration order.
func (g *Graph[T]) Inputs() []Handle[T] {
	return g.handlesFor(g.inputs)
}

// Weights returns the handles of every tensor declared via AddWeight, in
// declaration order.
func (g *Graph[T]) Weights() []Handle[T] {
	return g.handlesFor(g.weights)
}

// Nodes returns a handle for every node in the graph, in arena (and
// therefore topological) order.
func (g *Graph[T]) Nodes() []Handle[T] {
	out := make([]Handle[T], len(g.nodes))
	for i := range g.nodes {
		out[i] = Handle[T]{g: g, idx: i}
	}

	return out
}

func (g *Graph[T]) handlesFor(indices []int) []Handle[T] {
	out := make([]Handle[T], len(indices))
	for i, idx := range indices {
		out[i] = Handle[T]{g: g, idx: idx}
	}

	return out
}

// operandsOf returns the operand indices of node idx, i.e. its incoming
// graph edges.
func (g *Graph[T]) operandsOf(idx int) []int {
	switch n := g.nodes[idx].(type) {
	case *tensorNode[T]:
		return nil
	case *immediateNode[T]:
		return nil
	case *unaryNode[T]:
		return []int{n.x}
	case *binaryNode[T]:
		return []int{n.x, n.y}
	case *reduceNode[T]:
		return []int{n.x}
	case *viewNode[T]:
		return []int{n.x}
	default:
		return nil
	}
}

// TopologicalOrder returns the indices of every node in a valid
// topological order, cross-checked against a gonum directed graph built
// from the same operand edges the arena already encodes by construction
// (spec.md §5, I2). Because Graph never allows a node to reference an
// operand appended after it, arena order is already a topological order;
// this method exists so callers (and tests) have an independent
// verification path that doesn't simply trust the arena invariant.
func (g *Graph[T]) TopologicalOrder() ([]int, error) {
	dg := simple.NewDirectedGraph()

	for i := range g.nodes {
		dg.AddNode(simple.Node(int64(i)))
	}

	for i := range g.nodes {
		for _, operand := range g.operandsOf(i) {
			dg.SetEdge(dg.NewEdge(simple.Node(int64(operand)), simple.Node(int64(i))))
		}
	}

	sorted, err := topo.Sort(dg)
	if err != nil {
		return nil, internalErrorf("TopologicalOrder", err.Error())
	}

	order := make([]int, len(sorted))
	for i, n := range sorted {
		order[i] = int(n.ID())
	}

	return order, nil
}

// canonicalStrides computes row-major strides for shape, with stride 0
// at every size-1 dimension (spec.md §5, I1/I3). Delegating to
// shapealgebra here keeps the arena's bookkeeping and the pure
// shape/stride math in one place.
func canonicalStrides(shape []int) []int {
	return shapealgebra.ComputeStrides(shape)
}
