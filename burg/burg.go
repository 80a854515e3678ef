package burg

// Result holds the output of a Calculate call.
type Result struct {
	// Mean is the sample mean of the input, always computed regardless
	// of SubtractMean. Undefined (zero) when the input is empty.
	Mean float64

	// MaxOrder is the effective maximum order, clamped by the sample
	// count: 0 <= MaxOrder <= max(0, N-1).
	MaxOrder int

	// Coefficients holds one slice per emitted order. In hierarchy mode
	// it has length MaxOrder, with Coefficients[k-1] holding the k
	// signed AR coefficients a1..ak of the AR(k) model. Outside
	// hierarchy mode it has length 1 (or 0 if MaxOrder is 0), holding
	// only the final AR(MaxOrder) coefficients.
	Coefficients [][]float64

	// SigmaSquared holds the innovation variance for each emitted
	// order, in the same order as Coefficients.
	SigmaSquared []float64

	// Gain holds the prediction gain for each emitted order, in the
	// same order as Coefficients.
	Gain []float64

	// Autocorrelation holds the lag-1..lag-MaxOrder autocorrelations of
	// the final model, always fully populated (length MaxOrder)
	// regardless of hierarchy mode.
	Autocorrelation []float64

	// Consumed is the number of input values consumed, always equal to
	// len(x).
	Consumed int
}

// Calculate fits an AR model of order up to Options.MaxOrder to x using
// Burg's method. See the package doc comment and spec.md §4.2 for the
// recursion. Each call allocates its own working buffers; callers
// fitting many series back to back should use CalculateInto with a
// reused Workspace instead.
func Calculate(x []float64, opts ...Option) Result {
	return CalculateInto(new(Workspace), x, opts...)
}
