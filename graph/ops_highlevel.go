package graph

// MatMul builds batched matrix multiplication of x and y, decomposed
// into the broadcast-then-reduce algorithm of spec.md §4.3: x
// ([..., M, K]) and y ([..., K, N]) are promoted to [..., M, K, 1] and
// [..., 1, K, N] respectively, multiplied elementwise under broadcasting
// into [..., M, K, N], and summed over the K axis (second from the end)
// into [..., M, N].
//
// A 1-D operand on either side is first promoted with a synthetic unit
// axis (a row on the x side, a column on the y side) so the decomposition
// above applies uniformly; per spec.md §9's resolved Open Question, when
// x started 1-D the synthetic row axis is squeezed back out of the
// result by default, so a 1-D x 1-D matmul yields shape [1] rather than
// a true scalar [].
func (g *Graph[T]) MatMul(x, y Handle[T]) (Handle[T], error) {
	xShape, yShape := x.Shape(), y.Shape()

	if len(xShape) == 0 || len(yShape) == 0 {
		return Handle[T]{}, shapeErrorf("MatMul", "operands must have rank >= 1", [][]int{xShape, yShape}, nil)
	}

	xPromoted := false

	xm := x
	if len(xShape) == 1 {
		var err error

		xm, err = g.Reshape(x, prepend1(xShape))
		if err != nil {
			return Handle[T]{}, err
		}

		xPromoted = true
		xShape = xm.Shape()
	}

	ym := y
	if len(yShape) == 1 {
		var err error

		ym, err = g.Reshape(y, append1(yShape))
		if err != nil {
			return Handle[T]{}, err
		}

		yShape = ym.Shape()
	}

	xRank, yRank := len(xShape), len(yShape)

	kx := xShape[xRank-1]
	ky := yShape[yRank-2]

	if kx != ky {
		return Handle[T]{}, shapeErrorf("MatMul", "inner dimensions must match", [][]int{x.Shape(), y.Shape()}, nil)
	}

	xExpanded, err := g.Reshape(xm, insertAt(xShape, xRank, 1))
	if err != nil {
		return Handle[T]{}, err
	}

	yExpanded, err := g.Reshape(ym, insertAt(yShape, yRank-2, 1))
	if err != nil {
		return Handle[T]{}, err
	}

	// The inner dimensions already agree (checked above), so a Mul error
	// here comes from leading batch dimensions that do not broadcast; it
	// surfaces as the ShapeError Mul returns.
	product, err := g.Mul(xExpanded, yExpanded)
	if err != nil {
		return Handle[T]{}, err
	}

	summed, err := g.SumAxis(product, len(product.Shape())-2, false)
	if err != nil {
		return Handle[T]{}, err
	}

	if xPromoted {
		out := summed.Shape()
		squeezeIdx := len(out) - 2
		newShape := make([]int, 0, len(out)-1)
		newShape = append(newShape, out[:squeezeIdx]...)
		newShape = append(newShape, out[squeezeIdx+1:]...)

		squeezed, err := g.Reshape(summed, newShape)
		if err != nil {
			return Handle[T]{}, err
		}

		return squeezed, nil
	}

	return summed, nil
}

func prepend1(shape []int) []int {
	out := make([]int, len(shape)+1)
	out[0] = 1
	copy(out[1:], shape)

	return out
}

func append1(shape []int) []int {
	out := make([]int, len(shape)+1)
	copy(out, shape)
	out[len(out)-1] = 1

	return out
}

// insertAt returns a copy of shape with a new dimension of size 1
// inserted at position pos.
func insertAt(shape []int, pos, size int) []int {
	out := make([]int, 0, len(shape)+1)
	out = append(out, shape[:pos]...)
	out = append(out, size)
	out = append(out, shape[pos:]...)

	return out
}
