package burg

import (
	"github.com/cwbudde/algo-ar/core"
	"github.com/cwbudde/algo-vecmath"
)

// Workspace holds Calculate's working buffers so repeated calls over
// series of the same or smaller length can reuse allocations instead
// of allocating fresh buffers on every call, the way dsp/buffer.Pool
// lets the teacher's real-time callers avoid per-block GC pressure.
// A Workspace must not be shared across concurrent calls.
type Workspace struct {
	f, b, prod, a []float64
}

// CalculateInto is Calculate but drives the recursion through ws's
// buffers, growing them (via core.EnsureLen) only when n exceeds their
// current capacity.
func CalculateInto(ws *Workspace, x []float64, opts ...Option) Result {
	cfg := ApplyOptions(opts...)

	n := len(x)
	field := core.Float64Field()

	result := Result{Consumed: n}
	if n == 0 {
		return result
	}

	result.Mean = core.PairwiseMean(x, field)

	p := min(cfg.MaxOrder+1, n) - 1
	if p < 0 {
		p = 0
	}
	result.MaxOrder = p
	if p == 0 {
		return result
	}

	ws.f = core.EnsureLen(ws.f, n)
	ws.b = core.EnsureLen(ws.b, n)
	ws.prod = core.EnsureLen(ws.prod, n)
	f, b, prod := ws.f, ws.b, ws.prod

	for i, v := range x {
		if cfg.SubtractMean {
			f[i] = v - result.Mean
		} else {
			f[i] = v
		}
	}
	copy(b, f)

	vecmath.MulBlock(prod, f, f)
	sigma2e := core.PairwiseSum(prod, field)
	d := -f[0]*f[0] - f[n-1]*f[n-1] + 2*sigma2e
	sigma2e /= float64(n)

	// ws.a's reused capacity may hold stale coefficients from a
	// previous, higher-order call; the sweep below relies on a[k]
	// being exactly 0 the first time step k touches it, so a freshly
	// grown buffer (already zero) is not enough once it is reused.
	ws.a = core.EnsureLen(ws.a, p+1)
	core.Zero(ws.a)
	a := ws.a
	a[0] = 1
	gain := 1.0

	autocor := make([]float64, p+1) // autocor[0] unused, matching lag-0 = 1 implicit

	for k := 1; k <= p; k++ {
		m := n - k
		vecmath.MulBlock(prod[:m], f[k:n], b[:m])
		mu := (2.0 / d) * core.PairwiseSum(prod[:m], field)

		// A reflection coefficient must lie in [-1, 1]; roundoff near
		// a singular fit can push it fractionally outside that range,
		// which would make 1-mu*mu (and 1-a[k]*a[k] below) negative.
		mu = core.Clamp(mu, -1, 1)

		for i := 0; i <= k/2; i++ {
			ai, aki := a[i], a[k-i]
			a[i] = ai - mu*aki
			a[k-i] = aki - mu*ai
		}

		sigma2e *= 1 - mu*mu
		gain /= 1 - a[k]*a[k]

		var dot float64
		for j := 1; j < k; j++ {
			dot += a[j] * autocor[k-j]
		}
		autocor[k] = -(a[k] + dot)

		if cfg.Hierarchy || k == p {
			coeffs := make([]float64, k)
			copy(coeffs, a[1:k+1])
			result.Coefficients = append(result.Coefficients, coeffs)
			result.SigmaSquared = append(result.SigmaSquared, sigma2e)
			result.Gain = append(result.Gain, gain)
		}

		if k < p {
			for j := 0; j < m; j++ {
				oldF, oldB := f[j+k], b[j]
				f[j+k] = oldF - mu*oldB
				b[j] = oldB - mu*oldF
			}
			d = (1-mu*mu)*d - f[k]*f[k] - b[n-k-1]*b[n-k-1]
		}
	}

	result.Autocorrelation = append([]float64(nil), autocor[1:p+1]...)

	return result
}
