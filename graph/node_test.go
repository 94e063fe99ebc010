package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerfoo/gigagrad/numeric"
)

func TestNodeKindSealed(t *testing.T) {
	g := New[float32](numeric.Float32Scalars{})

	tensorH := g.AddInput([]int{2, 3}, nil)
	immediateH := g.Immediate(1)
	unaryH := g.Exp(tensorH)
	binaryH, err := g.Add(tensorH, tensorH)
	require.NoError(t, err)
	reduceH, err := g.Sum(tensorH, false)
	require.NoError(t, err)
	viewH, err := g.Reshape(tensorH, []int{3, 2})
	require.NoError(t, err)

	assert.Equal(t, KindTensor, tensorH.Kind())
	assert.Equal(t, KindImmediate, immediateH.Kind())
	assert.Equal(t, KindUnary, unaryH.Kind())
	assert.Equal(t, KindBinary, binaryH.Kind())
	assert.Equal(t, KindReduce, reduceH.Kind())
	assert.Equal(t, KindView, viewH.Kind())
}

func TestOperandIndexPrecedesConsumer(t *testing.T) {
	g := New[float32](numeric.Float32Scalars{})

	x := g.AddInput([]int{4}, nil)
	y, err := g.Add(x, x)
	require.NoError(t, err)
	z := g.Exp(y)

	assert.Less(t, x.Index(), y.Index())
	assert.Less(t, y.Index(), z.Index())
}

func TestShapeStridesLengthsMatch(t *testing.T) {
	g := New[float32](numeric.Float32Scalars{})
	h := g.AddInput([]int{2, 1, 3}, nil)

	assert.Len(t, h.Strides(), len(h.Shape()))

	for i, dim := range h.Shape() {
		if dim == 1 {
			assert.Equal(t, 0, h.Strides()[i])
		}
	}
}

func TestVariantAccessorsRejectWrongKind(t *testing.T) {
	g := New[float32](numeric.Float32Scalars{})
	x := g.AddInput([]int{2}, nil)

	_, err := x.ImmediateValue()
	assert.ErrorIs(t, err, ErrKind)

	_, err = x.UnaryOperand()
	assert.ErrorIs(t, err, ErrKind)

	_, _, err = x.BinaryOperands()
	assert.ErrorIs(t, err, ErrKind)
}

func TestAttributesAndOpName(t *testing.T) {
	g := New[float32](numeric.Float32Scalars{})
	x := g.AddInput([]int{2}, nil)
	y, err := g.Add(x, x)
	require.NoError(t, err)

	assert.Equal(t, "BinaryOp:ADD", y.OpName())
	attrs := y.Attributes()
	assert.Equal(t, "ADD", attrs["op"])
}
