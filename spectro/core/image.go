package core

import "gonum.org/v1/gonum/mat"

// Ones returns a rows x cols matrix filled with 1.
func Ones(rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	Fill(data, 1)
	return mat.NewDense(rows, cols, data)
}

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b mat.Matrix) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}

// SameLen reports whether all vectors have the length of the first one.
func SameLen(first []float64, rest ...[]float64) bool {
	for _, v := range rest {
		if len(v) != len(first) {
			return false
		}
	}
	return true
}
