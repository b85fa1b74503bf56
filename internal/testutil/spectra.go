package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Arange returns 0, 1, ..., n-1 as float64.
func Arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Trace builds an nwave x nx image of a spectrum trace centred on the
// spatial axis: a parabolic spatial profile times a sinusoidal spectrum with
// a constant bump, as produced by a slit spectrograph.
func Trace(nwave, nx int) *mat.Dense {
	img := mat.NewDense(nwave, nx, nil)
	for i := range nwave {
		flux := math.Sin(float64(i)/float64(nwave)*math.Pi*6) + 10
		for j := range nx {
			u := float64(j)/float64(nx)*2 - 1
			img.Set(i, j, (1-u*u)*0.75*flux)
		}
	}
	return img
}

// Matrix builds a dense matrix from row slices.
func Matrix(rows [][]float64) *mat.Dense {
	m := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m
}
