package core

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestOnes(t *testing.T) {
	m := Ones(2, 3)
	r, c := m.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("dims = (%d, %d), want (2, 3)", r, c)
	}
	for i := range r {
		for j := range c {
			if m.At(i, j) != 1 {
				t.Fatalf("At(%d, %d) = %v, want 1", i, j, m.At(i, j))
			}
		}
	}
}

func TestSameShape(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	if !SameShape(a, Ones(2, 3)) {
		t.Fatal("expected identical shapes")
	}
	if SameShape(a, Ones(3, 2)) {
		t.Fatal("expected transposed shape to differ")
	}
}

func TestSameLen(t *testing.T) {
	if !SameLen([]float64{1, 2}, []float64{3, 4}, []float64{5, 6}) {
		t.Fatal("expected equal lengths")
	}
	if SameLen([]float64{1, 2}, []float64{3}) {
		t.Fatal("expected length mismatch")
	}
	if !SameLen(nil) {
		t.Fatal("single vector always matches")
	}
}
