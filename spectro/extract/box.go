package extract

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectro/spectro/core"
	"github.com/cwbudde/algo-spectro/spectro/interp"
)

// Box sums data over the columns [x1, x2) of every row and returns the
// extracted spectrum and its variance, one value per row.
//
//	stdspec[i] = sum_j data[i,j] * mask[i,j]
//	stdvar[i]  = sum_j variance[i,j] * mask[i,j]
//
// With interpolation enabled, bad pixels in the window are first replaced by
// a linear interpolant through the good pixels of the same row (see
// [interp.Repair]) and then counted with full weight in stdspec. They stay
// excluded from stdvar. Inputs are never modified.
//
// Bounds must satisfy 0 <= x1 < x2 <= nx; variance and mask, when given,
// must match the shape of data.
func Box(data mat.Matrix, x1, x2 int, opts ...Option) (stdspec, stdvar []float64, err error) {
	cfg := applyOptions(opts)
	nwave, nx := data.Dims()

	if x1 < 0 || x2 <= x1 || nx < x2 {
		return nil, nil, fmt.Errorf("%w: x1, x2 = (%d, %d), the values must satisfy 0 <= x1 < x2 <= nx (=%d)",
			core.ErrInvalidBounds, x1, x2, nx)
	}
	if cfg.variance == nil {
		cfg.variance = core.Ones(nwave, nx)
	}
	if cfg.mask == nil {
		cfg.mask = core.Ones(nwave, nx)
	}
	if !core.SameShape(cfg.variance, data) {
		vr, vc := cfg.variance.Dims()
		return nil, nil, fmt.Errorf("%w: data image (%d, %d) and variance image (%d, %d)",
			core.ErrShapeMismatch, nwave, nx, vr, vc)
	}
	if !core.SameShape(cfg.mask, data) {
		mr, mc := cfg.mask.Dims()
		return nil, nil, fmt.Errorf("%w: data image (%d, %d) and mask image (%d, %d)",
			core.ErrShapeMismatch, nwave, nx, mr, mc)
	}

	r := newRowBuffers(nx, x2-x1)
	stdspec = make([]float64, nwave)
	stdvar = make([]float64, nwave)

	for i := range nwave {
		dataWin, varWin, maskWin := r.load(i, x1, x2, data, cfg.variance, cfg.mask)

		copy(r.gate, maskWin)
		if cfg.interp {
			for j := range r.repaired {
				r.repaired[j] = false
			}
			if _, err := interp.Repair(dataWin, maskWin, r.repaired); err != nil {
				return nil, nil, fmt.Errorf("row %d: %w", i, err)
			}
			for j, fixed := range r.repaired {
				if fixed {
					r.gate[j] = 1
				}
			}
		}

		vecmath.MulBlock(r.prod, dataWin, r.gate)
		stdspec[i] = floats.Sum(r.prod)

		vecmath.MulBlock(r.prod, varWin, maskWin)
		stdvar[i] = floats.Sum(r.prod)
	}

	return stdspec, stdvar, nil
}

// rowBuffers holds owned copies of one image row so interpolation never
// writes into caller memory.
type rowBuffers struct {
	data, variance, mask []float64
	gate, prod           []float64
	repaired             []bool
}

func newRowBuffers(nx, width int) *rowBuffers {
	return &rowBuffers{
		data:     make([]float64, nx),
		variance: make([]float64, nx),
		mask:     make([]float64, nx),
		gate:     make([]float64, width),
		prod:     make([]float64, width),
		repaired: make([]bool, width),
	}
}

func (r *rowBuffers) load(i, x1, x2 int, data, variance, mask mat.Matrix) (d, v, m []float64) {
	mat.Row(r.data, i, data)
	mat.Row(r.variance, i, variance)
	mat.Row(r.mask, i, mask)
	return r.data[x1:x2], r.variance[x1:x2], r.mask[x1:x2]
}
