package interp

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-spectro/spectro/core"
)

// Mask values understood by Repair.
const (
	Bad  = 0.0
	Good = 1.0
)

// Repair replaces row[j] for every j with mask[j] == Bad by the value of a
// piecewise-linear interpolant through the (j, row[j]) pairs with
// mask[j] == Good. Bad pixels before the first or after the last good pixel
// are linearly extrapolated from the two nearest good pixels. Samples with
// any other mask value are neither anchors nor repaired.
//
// row is modified in place; bad, if non-nil, is set to true at every repaired
// position and must have len(row). Repair returns the number of repaired
// pixels. A row without bad pixels is left untouched, whatever its good
// pixel count.
func Repair(row, mask []float64, bad []bool) (int, error) {
	if len(mask) != len(row) || (bad != nil && len(bad) != len(row)) {
		return 0, fmt.Errorf("%w: row (%d), mask (%d) and flags (%d) must have the same length",
			core.ErrShapeMismatch, len(row), len(mask), len(bad))
	}

	var xs, ys []float64
	nbad := 0
	for j, m := range mask {
		switch m {
		case Good:
			xs = append(xs, float64(j))
			ys = append(ys, row[j])
		case Bad:
			nbad++
		}
	}

	if nbad == 0 {
		return 0, nil
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: %d bad pixels but only %d good pixels, need at least 2",
			core.ErrInterpolation, nbad, len(xs))
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return 0, fmt.Errorf("%w: %v", core.ErrInterpolation, err)
	}

	for j, m := range mask {
		if m != Bad {
			continue
		}
		row[j] = predict(&pl, xs, ys, float64(j))
		if bad != nil {
			bad[j] = true
		}
	}

	return nbad, nil
}

// predict evaluates pl inside [xs[0], xs[last]] and continues the end
// segments as straight lines outside it.
func predict(pl *interp.PiecewiseLinear, xs, ys []float64, x float64) float64 {
	n := len(xs)
	switch {
	case x < xs[0]:
		return ys[0] + (x-xs[0])*(ys[1]-ys[0])/(xs[1]-xs[0])
	case x > xs[n-1]:
		return ys[n-1] + (x-xs[n-1])*(ys[n-1]-ys[n-2])/(xs[n-1]-xs[n-2])
	default:
		return pl.Predict(x)
	}
}
