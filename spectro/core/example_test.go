package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectro/core"
)

func ExampleRatio() {
	est := core.Ratio(nil, []float64{0, 1, 4}, []float64{1, 1, 2})
	core.ClipInPlace(est, 1e-8, 1.5)
	fmt.Println(est)

	// Output:
	// [1e-08 1 1.5]
}
