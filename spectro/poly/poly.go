package poly

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectro/spectro/core"
)

// Fit returns the degree-deg polynomial that minimises
// sum((w[i]*(p(x[i]) - y[i]))^2). A nil w fits with unit weights.
//
// Each Vandermonde row and target is multiplied by its weight and the
// columns are scaled to unit norm. The scaled system is solved through its
// SVD, dropping singular values below len(x)*eps relative to the largest, so
// a rank-deficient system yields the minimum-norm least-squares solution.
func Fit(x, y, w []float64, deg int) ([]float64, error) {
	n := len(x)
	if len(y) != n || (w != nil && len(w) != n) {
		return nil, fmt.Errorf("%w: x (%d), y (%d) and w (%d) must have the same length",
			core.ErrShapeMismatch, n, len(y), len(w))
	}
	if deg < 0 || n < deg+1 {
		return nil, fmt.Errorf("%w: degree %d needs at least %d points, got %d",
			core.ErrInvalidDegree, deg, deg+1, n)
	}

	cols := deg + 1
	lhs := vandermonde(x, deg)
	rhs := make([]float64, n)
	copy(rhs, y)

	if w != nil {
		for i := range n {
			row := lhs.RawRowView(i)
			for j := range row {
				row[j] *= w[i]
			}
			rhs[i] *= w[i]
		}
	}

	scale := make([]float64, cols)
	for j := range cols {
		scale[j] = mat.Norm(lhs.ColView(j), 2)
		if scale[j] == 0 {
			scale[j] = 1
		}
	}
	for i := range n {
		row := lhs.RawRowView(i)
		for j := range row {
			row[j] /= scale[j]
		}
	}

	var svd mat.SVD
	if !svd.Factorize(lhs, mat.SVDThin) {
		return nil, fmt.Errorf("poly: SVD of the %dx%d design matrix did not converge", n, cols)
	}

	// An all-zero design matrix has rank 0 and the zero polynomial as its
	// minimum-norm solution.
	sol := mat.NewVecDense(cols, nil)
	if rank := svd.Rank(float64(n) * eps); rank > 0 {
		svd.SolveVecTo(sol, mat.NewVecDense(n, rhs), rank)
	}

	coeff := make([]float64, cols)
	for j := range coeff {
		coeff[j] = sol.AtVec(j) / scale[j]
	}

	return coeff, nil
}

// Eval evaluates the polynomial at x with Horner's scheme. An empty
// coefficient slice evaluates to 0.
func Eval(coeff []float64, x float64) float64 {
	y := 0.0
	for _, c := range coeff {
		y = y*x + c
	}

	return y
}

// EvalInto evaluates the polynomial at every xs[i] into dst and returns it.
// dst is reallocated when its capacity is too small.
func EvalInto(dst, coeff, xs []float64) []float64 {
	dst = core.EnsureLen(dst, len(xs))
	for i, x := range xs {
		dst[i] = Eval(coeff, x)
	}

	return dst
}

// eps is the float64 machine epsilon.
const eps = 0x1p-52

// vandermonde builds the len(x) x (deg+1) matrix with columns x^deg ... x^0.
func vandermonde(x []float64, deg int) *mat.Dense {
	v := mat.NewDense(len(x), deg+1, nil)
	for i, xi := range x {
		for j, p := deg, 1.0; j >= 0; j, p = j-1, p*xi {
			v.Set(i, j, p)
		}
	}

	return v
}
