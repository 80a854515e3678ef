// Package testutil provides deterministic signal generation and
// tolerance-comparison helpers shared by this module's test suites.
package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// DeterministicNoise generates Gaussian white noise with a fixed seed
// for reproducibility, using gonum's distuv.Normal rather than a
// hand-rolled rand.Float64 transform.
func DeterministicNoise(seed int64, stddev float64, length int) []float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: stddev,
		Src:   rand.New(rand.NewSource(seed)),
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// AR1Process generates a length-n realization of the AR(1) process
// x_n = phi*x_{n-1} + eps_n, where eps is Gaussian white noise with the
// given innovation standard deviation. The process is seeded with a
// single draw from eps so the sequence is reproducible from seed alone.
func AR1Process(phi, innovationStdDev float64, length int, seed int64) []float64 {
	eps := DeterministicNoise(seed, innovationStdDev, length)

	out := make([]float64, length)
	out[0] = eps[0]
	for i := 1; i < length; i++ {
		out[i] = phi*out[i-1] + eps[i]
	}
	return out
}
