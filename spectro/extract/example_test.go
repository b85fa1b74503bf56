package extract_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectro/spectro/extract"
)

func ExampleBox() {
	img := mat.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})

	spec, variance, err := extract.Box(img, 1, 3)
	if err != nil {
		panic(err)
	}

	fmt.Println(spec, variance)

	// Output:
	// [5 13] [2 2]
}

func ExampleWithInterpolation() {
	img := mat.NewDense(1, 5, []float64{1, 2, -50, 4, 5})
	mask := mat.NewDense(1, 5, []float64{1, 1, 0, 1, 1})

	spec, variance, err := extract.Box(img, 0, 5,
		extract.WithMask(mask),
		extract.WithInterpolation(true),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(spec, variance)

	// Output:
	// [15] [4]
}
