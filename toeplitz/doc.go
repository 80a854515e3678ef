// Package toeplitz solves general (non-symmetric) Toeplitz linear
// systems L·s = d using the Zohar-Trench bordering recursion.
//
// L is the (n+1)x(n+1) Toeplitz matrix with first row (1, a) and first
// column (1, r). The recursion grows the solution one row at a time,
// carrying three working vectors (s, the partial solution; g, a
// backward-prediction auxiliary; ehat, a forward-prediction auxiliary)
// and a scalar lambda that every step divides by. A lambda of zero (a
// singular leading submatrix) is not detected: the division yields
// Inf or NaN values in the returned solution.
//
// The forward auxiliary ehat cannot be updated in place: its next
// value at index j+1 depends on both its own current value at j and
// g's current value at j, while g is updated in the same sweep from
// ehat's current (not yet updated) value. Solve keeps two buffers for
// ehat and swaps between them each step; SolveInPlace additionally
// reuses the destination buffer itself as the growing solution vector
// s, since s[i] is only read as original input at step i and is
// overwritten with the solved value immediately after.
//
//	s, err := toeplitz.Solve(a, r, d)
//	resid, err := toeplitz.Verify(a, r, d, s) // ||L*s - d||, see spec.md §8
package toeplitz
