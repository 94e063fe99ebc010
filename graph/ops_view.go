package graph

import "github.com/zerfoo/gigagrad/internal/shapealgebra"

// Reshape builds a ViewOp reinterpreting x under newShape, which may
// contain at most one -1 placeholder inferred from x's element count
// (spec.md §4.3).
func (g *Graph[T]) Reshape(x Handle[T], newShape []int) (Handle[T], error) {
	n := shapealgebra.Product(x.Shape())

	resolved, err := shapealgebra.ResolveReshape(n, newShape)
	if err != nil {
		return Handle[T]{}, wrapShapeAlgebra("Reshape", [][]int{x.Shape(), newShape}, nil, err)
	}

	return g.appendNode(&viewNode[T]{
		baseNode: baseNode{outShape: resolved, outStrides: shapealgebra.ComputeStrides(resolved)},
		x:        x.idx,
	}), nil
}

// Permute builds a ViewOp that reorders x's axes according to dims,
// where dims[i] names the destination axis of source axis i: the output
// shape satisfies out_shape[dims[i]] == x.Shape()[i] (spec.md §9, Open
// Question resolved in favor of destination-indexed dims, matching the
// "scatter" reading of the mechanical algorithm in spec.md §4.3).
func (g *Graph[T]) Permute(x Handle[T], dims []int) (Handle[T], error) {
	rank := len(x.Shape())

	normalized, err := shapealgebra.ResolvePermute(dims, rank)
	if err != nil {
		return Handle[T]{}, wrapShapeAlgebra("Permute", [][]int{x.Shape()}, dims, err)
	}

	shape := make([]int, rank)
	for src, dst := range normalized {
		shape[dst] = x.Shape()[src]
	}

	return g.appendNode(&viewNode[T]{
		baseNode: baseNode{outShape: shape, outStrides: shapealgebra.ComputeStrides(shape)},
		x:        x.idx,
	}), nil
}

// Transpose builds a ViewOp swapping x's last two axes, the common case
// of Permute used throughout matmul-style expressions (spec.md §4.3).
func (g *Graph[T]) Transpose(x Handle[T]) (Handle[T], error) {
	rank := len(x.Shape())
	if rank < 2 {
		return Handle[T]{}, shapeErrorf("Transpose", "rank must be at least 2", [][]int{x.Shape()}, nil)
	}

	dims := make([]int, rank)
	for i := range dims {
		dims[i] = i
	}

	dims[rank-2], dims[rank-1] = dims[rank-1], dims[rank-2]

	return g.Permute(x, dims)
}
