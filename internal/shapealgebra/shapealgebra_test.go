package shapealgebra

import (
	"reflect"
	"testing"
)

func TestNormalizeAxis(t *testing.T) {
	t.Run("PositiveInRange", func(t *testing.T) {
		got, err := NormalizeAxis(1, 3)
		if err != nil || got != 1 {
			t.Fatalf("NormalizeAxis(1,3) = %d, %v", got, err)
		}
	})

	t.Run("Negative", func(t *testing.T) {
		got, err := NormalizeAxis(-1, 3)
		if err != nil || got != 2 {
			t.Fatalf("NormalizeAxis(-1,3) = %d, %v", got, err)
		}
	})

	t.Run("ZeroRank", func(t *testing.T) {
		if _, err := NormalizeAxis(0, 0); err == nil {
			t.Fatal("expected error for rank 0")
		}
	})
}

func TestBroadcast(t *testing.T) {
	cases := []struct {
		name    string
		a, b    []int
		want    []int
		wantErr bool
	}{
		{"size-1 dim expands", []int{3, 1, 5}, []int{4, 5}, []int{3, 4, 5}, false},
		{"equal shapes", []int{2, 3}, []int{2, 3}, []int{2, 3}, false},
		{"leading dims pass through", []int{8, 1, 4}, []int{4}, []int{8, 1, 4}, false},
		{"incompatible", []int{3, 4}, []int{3, 5}, nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Broadcast(c.a, c.b)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v, %v", c.a, c.b)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Broadcast(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}

			reverse, err := Broadcast(c.b, c.a)
			if err != nil {
				t.Fatalf("unexpected error on reversed args: %v", err)
			}

			if !reflect.DeepEqual(reverse, got) {
				t.Errorf("Broadcast not symmetric: %v vs %v", reverse, got)
			}
		})
	}
}

func TestComputeStrides(t *testing.T) {
	cases := []struct {
		shape, want []int
	}{
		{[]int{3, 4, 5}, []int{20, 5, 1}},
		{[]int{1, 1, 1}, []int{0, 0, 0}},
		{[]int{6, 4}, []int{4, 1}},
		{[]int{}, []int{}},
	}

	for _, c := range cases {
		got := ComputeStrides(c.shape)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ComputeStrides(%v) = %v, want %v", c.shape, got, c.want)
		}

		for i, s := range c.shape {
			if s == 1 && got[i] != 0 {
				t.Errorf("expected stride 0 for size-1 dim at %d in %v", i, c.shape)
			}
		}
	}
}

func TestReduceShape(t *testing.T) {
	t.Run("AllDimsKeepdim", func(t *testing.T) {
		got, err := ReduceShape([]int{2, 3, 4}, nil, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(got, []int{1, 1, 1}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("AllDimsNoKeepdim", func(t *testing.T) {
		got, err := ReduceShape([]int{2, 3, 4}, nil, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(got, []int{}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("SingleAxis", func(t *testing.T) {
		got, err := ReduceShape([]int{2, 3, 4}, []int{1}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(got, []int{2, 4}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("SingleAxisKeepdim", func(t *testing.T) {
		got, err := ReduceShape([]int{2, 3, 4}, []int{1}, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(got, []int{2, 1, 4}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		if _, err := ReduceShape([]int{2, 3}, []int{5}, false); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("TooManyDims", func(t *testing.T) {
		if _, err := ReduceShape([]int{2, 3}, []int{0, 1, 0}, false); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestResolveReshape(t *testing.T) {
	t.Run("ExactMatch", func(t *testing.T) {
		got, err := ResolveReshape(24, []int{2, 3, 4})
		if err != nil || !reflect.DeepEqual(got, []int{2, 3, 4}) {
			t.Fatalf("got %v, %v", got, err)
		}
	})

	t.Run("InferredDim", func(t *testing.T) {
		got, err := ResolveReshape(24, []int{6, -1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(got, []int{6, 4}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("Mismatch", func(t *testing.T) {
		if _, err := ResolveReshape(6, []int{4}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("TwoInferredDims", func(t *testing.T) {
		if _, err := ResolveReshape(24, []int{-1, -1}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("IndivisibleInferredDim", func(t *testing.T) {
		if _, err := ResolveReshape(10, []int{3, -1}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestResolvePermute(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		got, err := ResolvePermute([]int{2, 0, 1}, 3)
		if err != nil || !reflect.DeepEqual(got, []int{2, 0, 1}) {
			t.Fatalf("got %v, %v", got, err)
		}
	})

	t.Run("NegativeAxis", func(t *testing.T) {
		got, err := ResolvePermute([]int{-1, 0}, 2)
		if err != nil || !reflect.DeepEqual(got, []int{1, 0}) {
			t.Fatalf("got %v, %v", got, err)
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		if _, err := ResolvePermute([]int{0, 0, 2}, 3); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("WrongArity", func(t *testing.T) {
		if _, err := ResolvePermute([]int{0, 1}, 3); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestNormalizeSortDedup(t *testing.T) {
	t.Run("SortsUnsortedInput", func(t *testing.T) {
		got, err := NormalizeSortDedup([]int{2, 0, 1}, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(got, []int{0, 1, 2}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("DuplicateAfterNormalization", func(t *testing.T) {
		if _, err := NormalizeSortDedup([]int{-1, 2}, 3); err == nil {
			t.Fatal("expected duplicate-axis error")
		}
	})

	t.Run("DistinctAxes", func(t *testing.T) {
		got, err := NormalizeSortDedup([]int{2, 0}, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(got, []int{0, 2}) {
			t.Errorf("got %v", got)
		}
	})
}
