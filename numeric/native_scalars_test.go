package numeric

import "testing"

func TestNativeScalars(t *testing.T) {
	if got := (Float32Scalars{}).FromFloat32(1.5); got != 1.5 {
		t.Errorf("Float32Scalars: expected 1.5, got %v", got)
	}

	if got := (Float64Scalars{}).FromFloat32(1.5); got != 1.5 {
		t.Errorf("Float64Scalars: expected 1.5, got %v", got)
	}

	if got := (IntScalars{}).FromFloat32(3.9); got != 3 {
		t.Errorf("IntScalars: expected 3, got %v", got)
	}

	if got := (Int32Scalars{}).FromFloat32(-2.5); got != -2 {
		t.Errorf("Int32Scalars: expected -2, got %v", got)
	}

	if got := (Int64Scalars{}).FromFloat32(7); got != 7 {
		t.Errorf("Int64Scalars: expected 7, got %v", got)
	}
}
