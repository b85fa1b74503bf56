package testutil

import "testing"

func TestRequireSliceHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-12}, 1e-9)
	RequireSliceEqual(t, []float64{0.1, -3}, []float64{0.1, -3})
}
