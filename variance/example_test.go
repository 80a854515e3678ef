package variance_test

import (
	"fmt"

	"github.com/cwbudde/algo-ar/variance"
)

func ExampleValue() {
	burg, _ := variance.Value(variance.Burg, variance.MeanSubtracted, 100, 10)
	lsf, _ := variance.Value(variance.LSF, variance.MeanSubtracted, 100, 10)
	yw, _ := variance.Value(variance.YuleWalker, variance.MeanRetained, 100, 0)

	fmt.Printf("%.10f %.10f %.10f\n", burg, lsf, yw)

	// Output:
	// 0.0109890110 0.0121951220 0.0000000000
}

func ExampleIterator() {
	for i, v := range variance.Iterator(variance.Burg, variance.MeanSubtracted, 4) {
		fmt.Printf("i=%d v=%.4f\n", i, v)
	}

	// Output:
	// i=0 v=0.2500
	// i=1 v=0.2500
	// i=2 v=0.3333
	// i=3 v=0.5000
	// i=4 v=1.0000
}
