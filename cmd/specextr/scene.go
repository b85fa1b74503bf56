package main

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// scene is a synthetic long-slit exposure: a trace with a parabolic spatial
// profile, a sinusoidal spectrum, photon-like noise and hot pixels.
type scene struct {
	data     *mat.Dense
	variance *mat.Dense
	mask     *mat.Dense
}

const (
	sceneGain = 10.0
	sceneBump = 10.0
)

func newScene(nwave, nx, nbad int, seed int64) *scene {
	rng := rand.New(rand.NewSource(seed))
	s := &scene{
		data:     mat.NewDense(nwave, nx, nil),
		variance: mat.NewDense(nwave, nx, nil),
		mask:     mat.NewDense(nwave, nx, nil),
	}

	peak := 0.0
	for i := range nwave {
		flux := math.Sin(float64(i)/float64(nwave)*math.Pi*6) + sceneBump
		for j := range nx {
			u := float64(j)/float64(nx)*2 - 1
			base := (1 - u*u) * 0.75 * flux
			v := math.Max(base/sceneGain, 0)
			s.data.Set(i, j, base+math.Sqrt(v)*rng.NormFloat64())
			s.variance.Set(i, j, v)
			s.mask.Set(i, j, 1)
			peak = math.Max(peak, base)
		}
	}

	for range nbad {
		i, j := rng.Intn(nwave), rng.Intn(nx)
		s.data.Set(i, j, rng.Float64()*2*peak)
		s.mask.Set(i, j, 0)
	}

	return s
}

// column returns the data, variance and mask of spatial column col. Masked
// pixels get zero variance so the trend fit keeps their raw ratio.
func (s *scene) column(col int) (data, variance []float64) {
	data = mat.Col(nil, col, s.data)
	variance = mat.Col(nil, col, s.variance)
	mask := mat.Col(nil, col, s.mask)
	for i, m := range mask {
		if m == 0 {
			variance[i] = 0
		}
	}
	return data, variance
}
