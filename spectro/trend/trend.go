package trend

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectro/spectro/core"
	"github.com/cwbudde/algo-spectro/spectro/poly"
)

// DefaultDegree is the polynomial degree used when callers have no better choice.
const DefaultDegree = 2

// MinWeight is the floor applied to the fit weights variance/spec^2.
const MinWeight = 1e-8

// Fit fits a degree-deg polynomial to data/spec against xvals, weighting
// each sample by variance/spec^2 clipped to [MinWeight, max]. All samples
// take part in the fit.
//
// est holds the polynomial evaluated at xvals wherever variance != 0 and the
// raw ratio data/spec elsewhere. coeff runs from the highest power down.
// deg must satisfy 0 <= deg < len(xvals)-1.
func Fit(xvals, data, variance, spec []float64, deg int) (est, coeff []float64, err error) {
	if err := validateLengths(xvals, data, variance, spec); err != nil {
		return nil, nil, err
	}
	nx := len(xvals)
	if deg < 0 || deg >= nx-1 {
		return nil, nil, fmt.Errorf("%w: %d, must be 0 <= deg < nx-1 = %d",
			core.ErrInvalidDegree, deg, nx-1)
	}

	est = core.Ratio(nil, data, spec)

	weights := make([]float64, nx)
	vecmath.MulBlock(weights, spec, spec)
	for i := range weights {
		weights[i] = variance[i] / weights[i]
	}
	core.ClipInPlace(weights, MinWeight, floats.Max(weights))

	coeff, err = poly.Fit(xvals, est, weights, deg)
	if err != nil {
		return nil, nil, err
	}

	for i, v := range variance {
		if v != 0 {
			est[i] = poly.Eval(coeff, xvals[i])
		}
	}

	return est, coeff, nil
}

// Evaluate evaluates coeff at every xvals[i], substituting data[i]/spec[i]
// wherever variance[i] == 0. The length of coeff is unconstrained.
func Evaluate(xvals, coeff, data, variance, spec []float64) ([]float64, error) {
	if err := validateLengths(xvals, data, variance, spec); err != nil {
		return nil, err
	}

	fiteval := poly.EvalInto(nil, coeff, xvals)
	for i, v := range variance {
		if v == 0 {
			fiteval[i] = data[i] / spec[i]
		}
	}

	return fiteval, nil
}

func validateLengths(xvals, data, variance, spec []float64) error {
	if !core.SameLen(xvals, data, variance, spec) {
		return fmt.Errorf("%w: the length of data (%d), variance (%d), spec (%d) and/or xvals (%d) are incompatible",
			core.ErrShapeMismatch, len(data), len(variance), len(spec), len(xvals))
	}
	return nil
}
