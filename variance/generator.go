package variance

// Generator is a stateful cursor over the order axis of a fixed
// sample count N, grounded on the accumulate-then-read shape of
// StreamingStats: construct once per (N, method, mean), then call
// Next repeatedly to walk i = 0, 1, ..., N.
type Generator struct {
	method Method
	mean   MeanHandling
	n      int
	next   int
}

// NewGenerator creates a Generator for N samples under the given
// method and mean-handling policy. It returns ErrInvalidSampleCount
// if N < 1.
func NewGenerator(method Method, mean MeanHandling, n int) (*Generator, error) {
	if n < 1 {
		return nil, ErrInvalidSampleCount
	}
	return &Generator{method: method, mean: mean, n: n}, nil
}

// Next returns the variance value for the next order and advances
// the cursor. ok is false once every order in [0, N] has been
// produced.
func (g *Generator) Next() (value float64, i int, ok bool) {
	if g.next > g.n {
		return 0, 0, false
	}
	i = g.next
	g.next++
	value, _ = Value(g.method, g.mean, g.n, i)
	return value, i, true
}

// Reset rewinds the cursor to i = 0.
func (g *Generator) Reset() {
	g.next = 0
}

// Remaining reports how many orders have not yet been produced.
func (g *Generator) Remaining() int {
	if g.next > g.n {
		return 0
	}
	return g.n - g.next + 1
}
