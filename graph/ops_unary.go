package graph

// addUnary appends a UnaryOp node over x with the given opcode. Shape is
// unchanged from x (spec.md §4.1).
func (g *Graph[T]) addUnary(op UnaryKind, x Handle[T]) Handle[T] {
	return g.appendNode(&unaryNode[T]{
		baseNode: baseNode{outShape: x.Shape(), outStrides: x.Strides()},
		op:       op,
		x:        x.idx,
	})
}

// Exp builds e**x (spec.md §3, §4.1).
func (g *Graph[T]) Exp(x Handle[T]) Handle[T] { return g.addUnary(Exp, x) }

// Log builds the natural logarithm of x (spec.md §3, §4.1).
func (g *Graph[T]) Log(x Handle[T]) Handle[T] { return g.addUnary(Log, x) }

// Sin builds sin(x) (spec.md §3, §4.1).
func (g *Graph[T]) Sin(x Handle[T]) Handle[T] { return g.addUnary(Sin, x) }

// Cos builds cos(x) as sin(x + pi/2), since the node algebra has no
// dedicated cosine opcode (spec.md §4.3, derived-op convention for
// operators outside the minimum set).
func (g *Graph[T]) Cos(x Handle[T]) Handle[T] {
	halfPi := g.immediateFromFloat32(halfPiF32)

	return g.Sin(g.scalarBinary(Add, x, halfPi))
}

// Neg builds -x as (-1) * x (spec.md §4.3).
func (g *Graph[T]) Neg(x Handle[T]) Handle[T] {
	negOne := g.immediateFromFloat32(-1)

	return g.scalarBinary(Mul, x, negOne)
}

// Sigmoid builds 1 / (1 + e**(-x)) (spec.md §4.3, derived logistic
// function).
func (g *Graph[T]) Sigmoid(x Handle[T]) Handle[T] {
	one := g.immediateFromFloat32(1)
	denom := g.scalarBinary(Add, one, g.Exp(g.Neg(x)))

	return g.scalarBinary(Div, one, denom)
}

const halfPiF32 = 1.5707963267948966
