package toeplitz

import "github.com/cwbudde/algo-ar/core"

// Workspace holds the Zohar-Trench recursion's working buffers so
// repeated solves of same-or-smaller-order systems can reuse
// allocations instead of allocating fresh slices on every call, the
// way dsp/buffer.Pool lets the teacher's real-time callers avoid
// per-block GC pressure. A Workspace must not be shared across
// concurrent calls.
type Workspace struct {
	prod, rhat, ehat, nextE, g []float64
}

// SolveReuse is Solve but drives the recursion through ws's buffers.
func SolveReuse(ws *Workspace, a, r, d []float64) ([]float64, error) {
	s := append([]float64(nil), d...)
	if err := solveInto(ws, a, r, s); err != nil {
		return nil, err
	}
	return s, nil
}

// SolveInPlaceReuse is SolveInPlace but drives the recursion through
// ws's buffers.
func SolveInPlaceReuse(ws *Workspace, a, r, d []float64) error {
	return solveInto(ws, a, r, d)
}

// SolveSymmetricReuse is SolveSymmetric but drives the recursion
// through ws's buffers.
func SolveSymmetricReuse(ws *Workspace, a, d []float64) ([]float64, error) {
	return SolveReuse(ws, a, a, d)
}

// SolveSymmetricInPlaceReuse is SolveSymmetricInPlace but drives the
// recursion through ws's buffers.
func SolveSymmetricInPlaceReuse(ws *Workspace, a, d []float64) error {
	return SolveInPlaceReuse(ws, a, a, d)
}

func (ws *Workspace) grow(n int) {
	ws.prod = core.EnsureLen(ws.prod, n)
	ws.rhat = core.EnsureLen(ws.rhat, n)
	ws.ehat = core.EnsureLen(ws.ehat, n)
	ws.nextE = core.EnsureLen(ws.nextE, n)
	ws.g = core.EnsureLen(ws.g, n)
}
