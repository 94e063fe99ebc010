package numeric

import "github.com/zerfoo/float8"

// Float8Scalars implements Scalars[float8.Float8].
type Float8Scalars struct{}

// FromFloat32 converts f to an 8-bit float via float8.ToFloat8, the same
// conversion the teacher framework uses in its gemm and optimizer paths
// (internal/xblas/gemm.go).
func (Float8Scalars) FromFloat32(f float32) float8.Float8 {
	return float8.ToFloat8(f)
}
