package graph

import (
	"errors"
	"fmt"
)

// ErrShape is the sentinel wrapped by every ShapeError-class failure:
// incompatible broadcast, a reshape element-count mismatch, more than one
// inferred reshape dimension, too many reduction dims, an out-of-range
// axis, a duplicate permutation axis, or a matmul inner-dimension
// mismatch (spec.md §7).
var ErrShape = errors.New("shape error")

// ErrKind is the sentinel wrapped when a variant-specific accessor (e.g.
// TensorData) is invoked on a node of the wrong kind.
var ErrKind = errors.New("kind error")

// ErrInternal is the sentinel wrapped for bugs the core cannot recover
// from: a corrupt variant tag or a handle pointing outside its graph.
var ErrInternal = errors.New("internal error")

// Error is the structured payload every core failure carries: which
// sentinel it wraps, which operator raised it, the offending shapes or
// dims, and a human-readable reason. Callers that only need to branch on
// the failure class should use errors.Is(err, graph.ErrShape) (etc.)
// rather than inspecting the fields, per the sentinel-plus-wrap
// convention the retrieval pack uses throughout (lvlath/builder/errors.go).
type Error struct {
	sentinel error
	Op       string
	Reason   string
	Shapes   [][]int
	Dims     []int
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Reason)

	if len(e.Shapes) > 0 {
		msg = fmt.Sprintf("%s (shapes=%v)", msg, e.Shapes)
	}

	if len(e.Dims) > 0 {
		msg = fmt.Sprintf("%s (dims=%v)", msg, e.Dims)
	}

	return msg
}

// Unwrap lets callers use errors.Is(err, graph.ErrShape) and friends.
func (e *Error) Unwrap() error { return e.sentinel }

func shapeErrorf(op, reason string, shapes [][]int, dims []int) error {
	return &Error{sentinel: ErrShape, Op: op, Reason: reason, Shapes: shapes, Dims: dims}
}

func kindErrorf(op, reason string) error {
	return &Error{sentinel: ErrKind, Op: op, Reason: reason}
}

func internalErrorf(op, reason string) error {
	return &Error{sentinel: ErrInternal, Op: op, Reason: reason}
}

// wrapShapeAlgebra lifts a shapealgebra error into a graph.Error tagged
// with the operator name that invoked it and the shapes/dims under
// consideration, so callers see a consistent error shape regardless of
// which internal helper in internal/shapealgebra detected the problem.
func wrapShapeAlgebra(op string, shapes [][]int, dims []int, err error) error {
	if err == nil {
		return nil
	}

	return shapeErrorf(op, err.Error(), shapes, dims)
}
