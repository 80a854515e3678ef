package core

// PairwiseSum returns the sum of xs computed by divide-and-conquer
// pairwise summation: O(log N) error growth under floating point, and
// exact under an exact field such as RationalField. See spec.md §4.1.
//
// The auxiliary buffer b is allocated at length N; the first pass
// folds adjacent pairs into it (integer division of the index by 2
// routes x[2j] and x[2j+1] into the same slot), then repeated halving
// folds b[2j] and b[2j+1] together until a single value remains.
func PairwiseSum[V any](xs []V, f Field[V]) V {
	return PairwiseSumUsing(xs, make([]V, len(xs)), f)
}

// PairwiseSumUsing is PairwiseSum with a caller-supplied auxiliary
// buffer of length len(xs). Callers that already own a same-sized
// scratch vector (burg's backward-residual buffer, initially a copy
// of the forward residuals, is exactly such a vector before the
// recursion starts using it) can pass it here instead of letting
// PairwiseSum allocate its own, per spec.md §4.1's remark that reusing
// the aux buffer as the later b vector is a legitimate implementation
// choice. aux is overwritten.
func PairwiseSumUsing[V any](xs []V, aux []V, f Field[V]) V {
	n := len(xs)
	if n == 0 {
		return f.Zero
	}

	b := aux[:n]
	for i := range b {
		b[i] = f.Zero
	}
	for i, x := range xs {
		b[i/2] = f.Add(b[i/2], x)
	}

	for t := largestPowerOfTwoAtMost(n); t > 1; {
		t /= 2
		for j := 0; j < t; j++ {
			b[j] = f.Add(b[2*j], b[2*j+1])
		}
	}

	return b[0]
}

// PairwiseMean returns PairwiseSum(xs, f) / len(xs). The mean of an
// empty sequence is undefined; callers must not rely on its value
// (see spec.md §4.1).
func PairwiseMean[V any](xs []V, f Field[V]) V {
	n := len(xs)
	if n == 0 {
		return f.Zero
	}

	sum := PairwiseSum(xs, f)

	count := f.Zero
	for i := 0; i < n; i++ {
		count = f.Add(count, f.One)
	}

	return f.Div(sum, count)
}

func largestPowerOfTwoAtMost(n int) int {
	t := 1
	for t*2 <= n {
		t *= 2
	}
	return t
}
