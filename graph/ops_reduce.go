package graph

import "github.com/zerfoo/gigagrad/internal/shapealgebra"

// addReduce normalizes dims against x's rank, sorts them and fails if any
// axis repeats after normalization (spec.md §4.2: duplicates fail as a
// ShapeError), then appends a ReduceOp node.
func (g *Graph[T]) addReduce(op ReduceKind, x Handle[T], dims []int, keepdim bool) (Handle[T], error) {
	rank := len(x.Shape())

	normalized, err := shapealgebra.NormalizeSortDedup(dims, rank)
	if err != nil {
		return Handle[T]{}, wrapShapeAlgebra(op.String(), [][]int{x.Shape()}, dims, err)
	}

	shape, err := shapealgebra.ReduceShape(x.Shape(), normalized, keepdim)
	if err != nil {
		return Handle[T]{}, wrapShapeAlgebra(op.String(), [][]int{x.Shape()}, dims, err)
	}

	return g.appendNode(&reduceNode[T]{
		baseNode: baseNode{outShape: shape, outStrides: shapealgebra.ComputeStrides(shape)},
		op:       op,
		x:        x.idx,
		dims:     normalized,
		keepdim:  keepdim,
	}), nil
}

// Sum reduces x over every axis, per spec.md §3's "dims=nil reduces all
// axes" convention.
func (g *Graph[T]) Sum(x Handle[T], keepdim bool) (Handle[T], error) {
	return g.addReduce(SumOp, x, nil, keepdim)
}

// SumAxis reduces x over a single axis (negative axes allowed, per
// spec.md §4.1).
func (g *Graph[T]) SumAxis(x Handle[T], axis int, keepdim bool) (Handle[T], error) {
	return g.addReduce(SumOp, x, []int{axis}, keepdim)
}

// SumDims reduces x over an explicit set of axes.
func (g *Graph[T]) SumDims(x Handle[T], dims []int, keepdim bool) (Handle[T], error) {
	return g.addReduce(SumOp, x, dims, keepdim)
}

// ReduceMax reduces x to its maximum over every axis.
func (g *Graph[T]) ReduceMax(x Handle[T], keepdim bool) (Handle[T], error) {
	return g.addReduce(ReduceMaxOp, x, nil, keepdim)
}

// ReduceMaxAxis reduces x to its maximum over a single axis.
func (g *Graph[T]) ReduceMaxAxis(x Handle[T], axis int, keepdim bool) (Handle[T], error) {
	return g.addReduce(ReduceMaxOp, x, []int{axis}, keepdim)
}

// ReduceMaxDims reduces x to its maximum over an explicit set of axes.
func (g *Graph[T]) ReduceMaxDims(x Handle[T], dims []int, keepdim bool) (Handle[T], error) {
	return g.addReduce(ReduceMaxOp, x, dims, keepdim)
}

// ReduceMin reduces x to its minimum over every axis, built as
// -max(-x) since the node algebra has no dedicated min reduction opcode
// (spec.md §4.3).
func (g *Graph[T]) ReduceMin(x Handle[T], keepdim bool) (Handle[T], error) {
	negMax, err := g.ReduceMax(g.Neg(x), keepdim)
	if err != nil {
		return Handle[T]{}, err
	}

	return g.Neg(negMax), nil
}

// ReduceMinAxis reduces x to its minimum over a single axis, built as
// -max(-x) (spec.md §4.3).
func (g *Graph[T]) ReduceMinAxis(x Handle[T], axis int, keepdim bool) (Handle[T], error) {
	negMax, err := g.ReduceMaxAxis(g.Neg(x), axis, keepdim)
	if err != nil {
		return Handle[T]{}, err
	}

	return g.Neg(negMax), nil
}

// ReduceMinDims reduces x to its minimum over an explicit set of axes,
// built as -max(-x) (spec.md §4.3).
func (g *Graph[T]) ReduceMinDims(x Handle[T], dims []int, keepdim bool) (Handle[T], error) {
	negMax, err := g.ReduceMaxDims(g.Neg(x), dims, keepdim)
	if err != nil {
		return Handle[T]{}, err
	}

	return g.Neg(negMax), nil
}
