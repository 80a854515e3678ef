package toeplitz

import "github.com/cwbudde/algo-vecmath"

// Solve returns the solution s to L*s = d, where L is the (n+1)x(n+1)
// Toeplitz matrix with first row (1, a) and first column (1, r), so
// L[i][j] is a[j-i-1] above the diagonal and r[i-j-1] below it. len(a) must equal len(r) and equal len(d)-1. Each call
// allocates its own working buffers; callers solving many systems
// back to back should use SolveReuse with a reused Workspace instead.
func Solve(a, r, d []float64) ([]float64, error) {
	return SolveReuse(new(Workspace), a, r, d)
}

// SolveInPlace solves L*s = d exactly as Solve does, but overwrites d
// with the solution instead of allocating a fresh vector.
func SolveInPlace(a, r, d []float64) error {
	return SolveInPlaceReuse(new(Workspace), a, r, d)
}

// SolveSymmetric solves the symmetric case where the same vector backs
// both the first row and first column of L (L is then a classical
// symmetric Toeplitz matrix).
func SolveSymmetric(a, d []float64) ([]float64, error) {
	return Solve(a, a, d)
}

// SolveSymmetricInPlace is the in-place counterpart of SolveSymmetric.
func SolveSymmetricInPlace(a, d []float64) error {
	return SolveInPlace(a, a, d)
}

// solveInto runs the Zohar-Trench recursion, using s both as the
// source of the d vector on entry and as the destination for the
// solution. s[i] is read as the original d[i] at the start of step i
// and is not overwritten until the end of that same step, so s may
// safely alias the caller's d buffer. ws's buffers are grown to the
// current n and then reused step to step within the call; ehat and
// nextE are ping-ponged between ws's two buffers each step rather
// than allocated fresh, since step i must read the previous step's
// ehat while writing this step's.
func solveInto(ws *Workspace, a, r, s []float64) error {
	n := len(a)
	if n < 1 {
		return ErrSingularSystem
	}
	if len(r) != n || len(s) != n+1 {
		return ErrLengthMismatch
	}

	ws.grow(n)
	prod := ws.prod

	ehat := ws.ehat[:1]
	ehat[0] = -a[0]
	g := ws.g[:1]
	g[0] = -r[0]
	lambda := 1 - a[0]*r[0]

	for i := 1; i < n; i++ {
		rhat := ws.rhat[:i]
		reverseInto(rhat, r[:i])

		vecmath.MulBlock(prod[:i], s[:i], rhat)
		negTheta := -s[i] + sequentialSum(prod[:i])

		vecmath.MulBlock(prod[:i], ehat, a[:i])
		negEta := a[i] + sequentialSum(prod[:i])

		vecmath.MulBlock(prod[:i], g, rhat)
		negGamma := r[i] + sequentialSum(prod[:i])

		thetaOverLambda := -negTheta / lambda
		etaOverLambda := -negEta / lambda
		gammaOverLambda := -negGamma / lambda

		nextE := ws.nextE[:i+1]
		nextE[0] = etaOverLambda
		for j := 0; j < i; j++ {
			nextE[j+1] = ehat[j] + etaOverLambda*g[j]
			s[j] += thetaOverLambda * ehat[j]
			g[j] += gammaOverLambda * ehat[j]
		}
		s[i] = thetaOverLambda
		g = ws.g[:i+1]
		g[i] = gammaOverLambda

		ws.ehat, ws.nextE = ws.nextE, ws.ehat
		ehat = nextE
		lambda -= negEta * negGamma / lambda
	}

	rhat := ws.rhat[:n]
	reverseInto(rhat, r[:n])
	vecmath.MulBlock(prod[:n], s[:n], rhat)
	negTheta := -s[n] + sequentialSum(prod[:n])
	thetaOverLambda := -negTheta / lambda

	for j := 0; j < n; j++ {
		s[j] += thetaOverLambda * ehat[j]
	}
	s[n] = thetaOverLambda

	return nil
}

func reverseInto(dst, x []float64) {
	for i, v := range x {
		dst[len(x)-1-i] = v
	}
}

// sequentialSum accumulates terms left-to-right rather than with
// pairwise summation: the Zohar recursion's inner products feed
// directly into the next step's lambda update, so a fixed accumulation
// order matches the reference recursion term for term (see SPEC_FULL.md).
func sequentialSum(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum
}
