package numeric

import "github.com/zerfoo/float16"

// Float16Scalars implements Scalars[float16.Float16].
type Float16Scalars struct{}

// FromFloat32 converts f to a half-precision float via float16.FromFloat32,
// the same conversion the teacher framework uses when decoding model
// weights (model/tensor_decoder.go).
func (Float16Scalars) FromFloat32(f float32) float16.Float16 {
	return float16.FromFloat32(f)
}
