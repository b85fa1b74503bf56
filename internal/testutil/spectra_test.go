package testutil

import "testing"

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestArangeAndOnes(t *testing.T) {
	x := Arange(4)
	o := Ones(4)
	for i := range 4 {
		if x[i] != float64(i) {
			t.Fatalf("Arange[%d] = %v", i, x[i])
		}
		if o[i] != 1 {
			t.Fatalf("Ones[%d] = %v", i, o[i])
		}
	}
}

func TestTraceProfile(t *testing.T) {
	img := Trace(8, 20)
	r, c := img.Dims()
	if r != 8 || c != 20 {
		t.Fatalf("dims = (%d, %d), want (8, 20)", r, c)
	}
	// Edge column sits at u = -1 where the profile vanishes.
	if img.At(0, 0) != 0 {
		t.Fatalf("edge = %v, want 0", img.At(0, 0))
	}
	if img.At(0, 10) <= img.At(0, 2) {
		t.Fatal("expected profile to peak at the centre")
	}
}

func TestMatrix(t *testing.T) {
	m := Matrix([][]float64{{1, 2}, {3, 4}})
	if m.At(1, 0) != 3 {
		t.Fatalf("At(1, 0) = %v, want 3", m.At(1, 0))
	}
}
