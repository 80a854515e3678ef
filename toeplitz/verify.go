package toeplitz

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Verify reports the maximum absolute residual of L*s - d, where L is
// the dense Toeplitz matrix implied by a and r. It backs the
// re-substitution testable property of spec.md §8: multiplying L by
// the Zohar-returned s should reproduce d to within O(n)*eps*||d||.
func Verify(a, r, d, s []float64) (float64, error) {
	n := len(a)
	if n < 1 {
		return 0, ErrSingularSystem
	}
	if len(r) != n || len(d) != n+1 || len(s) != n+1 {
		return 0, ErrLengthMismatch
	}

	size := n + 1
	data := make([]float64, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			switch {
			case i == j:
				data[i*size+j] = 1
			case j > i:
				data[i*size+j] = a[j-i-1]
			default:
				data[i*size+j] = r[i-j-1]
			}
		}
	}

	l := mat.NewDense(size, size, data)
	sVec := mat.NewVecDense(size, s)

	var product mat.VecDense
	product.MulVec(l, sVec)

	var maxResidual float64
	for i := 0; i < size; i++ {
		if diff := math.Abs(product.AtVec(i) - d[i]); diff > maxResidual {
			maxResidual = diff
		}
	}

	return maxResidual, nil
}
