package trend_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectro/trend"
)

func ExampleFit() {
	xvals := []float64{0, 1, 2, 3, 4}
	spec := []float64{1, 1, 1, 1, 1}
	data := []float64{0, 1, 50, 9, 16}
	variance := []float64{1, 1, 0, 1, 1}

	est, coeff, err := trend.Fit(xvals, data, variance, spec, 2)
	if err != nil {
		panic(err)
	}

	fmt.Printf("coefficients: %d\n", len(coeff))
	fmt.Printf("zero-variance sample keeps raw ratio: %.1f\n", est[2])

	// Output:
	// coefficients: 3
	// zero-variance sample keeps raw ratio: 50.0
}
