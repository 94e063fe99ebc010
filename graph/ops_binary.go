package graph

import "github.com/zerfoo/gigagrad/internal/shapealgebra"

// addBinary resolves the broadcast output shape of x and y and appends a
// BinaryOp node (spec.md §4.1, §4.2). Broadcast failures surface as a
// ShapeError naming both operand shapes.
func (g *Graph[T]) addBinary(op BinaryKind, x, y Handle[T]) (Handle[T], error) {
	if shapealgebra.SameShape(x.Shape(), y.Shape()) {
		shape := x.Shape()

		return g.appendNode(&binaryNode[T]{
			baseNode: baseNode{outShape: shape, outStrides: shapealgebra.ComputeStrides(shape)},
			op:       op,
			x:        x.idx,
			y:        y.idx,
		}), nil
	}

	shape, err := shapealgebra.Broadcast(x.Shape(), y.Shape())
	if err != nil {
		return Handle[T]{}, wrapShapeAlgebra(op.String(), [][]int{x.Shape(), y.Shape()}, nil, err)
	}

	return g.appendNode(&binaryNode[T]{
		baseNode: baseNode{outShape: shape, outStrides: shapealgebra.ComputeStrides(shape)},
		op:       op,
		x:        x.idx,
		y:        y.idx,
	}), nil
}

// scalarBinary backs the derived unary combinators (Neg, Cos, Sigmoid)
// that only ever pair an arbitrary operand against a graph-internal
// scalar literal. A scalar (shape []) always broadcasts against any
// shape, so a failure here can only mean an internal bug, never a
// caller mistake — unlike the public binary ops below, which combine two
// caller-supplied shapes and must surface ShapeError instead of panicking
// (spec.md §4.4, §7: ShapeError is a recoverable caller error,
// InternalError is reserved for bugs).
func (g *Graph[T]) scalarBinary(op BinaryKind, a, b Handle[T]) Handle[T] {
	h, err := g.addBinary(op, a, b)
	if err != nil {
		panic(internalErrorf(op.String(), "unexpected broadcast failure against a scalar literal: "+err.Error()))
	}

	return h
}

// Add builds x + y with broadcasting (spec.md §3, §4.2).
func (g *Graph[T]) Add(x, y Handle[T]) (Handle[T], error) { return g.addBinary(Add, x, y) }

// Sub builds x - y with broadcasting (spec.md §3, §4.2).
func (g *Graph[T]) Sub(x, y Handle[T]) (Handle[T], error) { return g.addBinary(Sub, x, y) }

// Mul builds x * y with broadcasting (spec.md §3, §4.2).
func (g *Graph[T]) Mul(x, y Handle[T]) (Handle[T], error) { return g.addBinary(Mul, x, y) }

// Div builds x / y with broadcasting (spec.md §3, §4.2).
func (g *Graph[T]) Div(x, y Handle[T]) (Handle[T], error) { return g.addBinary(Div, x, y) }

// Pow builds x ** y with broadcasting (spec.md §3, §4.2).
func (g *Graph[T]) Pow(x, y Handle[T]) (Handle[T], error) { return g.addBinary(PowOp, x, y) }

// MaxBinary builds elementwise max(x, y) with broadcasting (spec.md §3,
// §4.2). It is the binary sibling of the reduce-max opcode and the
// building block Min, Gt, Lt, Ge and Le all derive from.
func (g *Graph[T]) MaxBinary(x, y Handle[T]) (Handle[T], error) { return g.addBinary(MaxOp, x, y) }

// CmpEq builds a 0/1-valued elementwise equality test with broadcasting
// (spec.md §3, §4.2).
func (g *Graph[T]) CmpEq(x, y Handle[T]) (Handle[T], error) { return g.addBinary(CmpEq, x, y) }

// Min builds elementwise min(x, y) as -max(-x, -y); the node algebra has
// no dedicated min opcode (spec.md §4.3). x and y are caller-supplied, so
// an incompatible pair surfaces as a ShapeError rather than panicking.
func (g *Graph[T]) Min(x, y Handle[T]) (Handle[T], error) {
	maxXY, err := g.MaxBinary(g.Neg(x), g.Neg(y))
	if err != nil {
		return Handle[T]{}, err
	}

	return g.Neg(maxXY), nil
}

// Gt builds x > y as CMP_EQ(MAX(x, y), x) wherever x != y, composed from
// MAX and CMP_EQ exactly as spec.md §4.3 specifies for the comparison
// family outside the minimum opcode set: "x > y is built as
// CMP_EQ(MAX(x, y), x) combined with a strictness correction"; since
// CMP_EQ(MAX(x,y),x) alone is true for x>=y, Gt further requires x!=y.
func (g *Graph[T]) Gt(x, y Handle[T]) (Handle[T], error) {
	ge, err := g.Ge(x, y)
	if err != nil {
		return Handle[T]{}, err
	}

	eq, err := g.CmpEq(x, y)
	if err != nil {
		return Handle[T]{}, err
	}

	geAndEq, err := g.Mul(ge, eq)
	if err != nil {
		return Handle[T]{}, err
	}

	return g.Sub(ge, geAndEq)
}

// Ge builds x >= y as CMP_EQ(MAX(x, y), x) (spec.md §4.3).
func (g *Graph[T]) Ge(x, y Handle[T]) (Handle[T], error) {
	maxXY, err := g.MaxBinary(x, y)
	if err != nil {
		return Handle[T]{}, err
	}

	return g.CmpEq(maxXY, x)
}

// Lt builds x < y as Gt(y, x).
func (g *Graph[T]) Lt(x, y Handle[T]) (Handle[T], error) { return g.Gt(y, x) }

// Le builds x <= y as Ge(y, x).
func (g *Graph[T]) Le(x, y Handle[T]) (Handle[T], error) { return g.Ge(y, x) }
