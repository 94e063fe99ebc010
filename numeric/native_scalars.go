package numeric

// Float32Scalars implements Scalars[float32].
type Float32Scalars struct{}

// FromFloat32 returns f unchanged.
func (Float32Scalars) FromFloat32(f float32) float32 { return f }

// Float64Scalars implements Scalars[float64].
type Float64Scalars struct{}

// FromFloat32 widens f to float64.
func (Float64Scalars) FromFloat32(f float32) float64 { return float64(f) }

// IntScalars implements Scalars[int].
type IntScalars struct{}

// FromFloat32 truncates f to int.
func (IntScalars) FromFloat32(f float32) int { return int(f) }

// Int32Scalars implements Scalars[int32].
type Int32Scalars struct{}

// FromFloat32 truncates f to int32.
func (Int32Scalars) FromFloat32(f float32) int32 { return int32(f) }

// Int64Scalars implements Scalars[int64].
type Int64Scalars struct{}

// FromFloat32 truncates f to int64.
func (Int64Scalars) FromFloat32(f float32) int64 { return int64(f) }
