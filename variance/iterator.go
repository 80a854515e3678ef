package variance

import "iter"

// Iterator returns a finite forward sequence of variance values for
// i = 0..N under the given method and mean-handling policy. It
// replaces the mutable-cursor-with-sentinel shape of [Generator]
// with a range-over-func sequence, so a caller that only wants to
// range over the values once has nothing to construct or reset:
//
//	for i, v := range variance.Iterator(variance.Burg, variance.MeanSubtracted, 100) {
//		...
//	}
//
// Iterator panics if N < 1; use [Value] directly to surface that
// error instead of panicking.
func Iterator(method Method, mean MeanHandling, n int) iter.Seq2[int, float64] {
	if n < 1 {
		panic(ErrInvalidSampleCount)
	}
	return func(yield func(int, float64) bool) {
		for i := 0; i <= n; i++ {
			v, _ := Value(method, mean, n, i)
			if !yield(i, v) {
				return
			}
		}
	}
}
