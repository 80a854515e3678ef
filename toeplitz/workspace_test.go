package toeplitz

import (
	"testing"

	"github.com/cwbudde/algo-ar/internal/testutil"
)

func TestSolveReuseMatchesSolve(t *testing.T) {
	a := []float64{0.4, -0.1, 0.2}
	r := []float64{0.3, 0.05, -0.15}
	d := []float64{1, 2, -1, 0.5}

	want, err := Solve(a, r, d)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	ws := new(Workspace)
	got, err := SolveReuse(ws, a, r, d)
	if err != nil {
		t.Fatalf("SolveReuse: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

// TestSolveReuseAcrossGrowingAndShrinkingSystems exercises a single
// Workspace across calls of increasing and then decreasing order,
// the scenario core.EnsureLen's capacity-reuse path exists for.
func TestSolveReuseAcrossGrowingAndShrinkingSystems(t *testing.T) {
	ws := new(Workspace)

	systems := []struct {
		a, r, d []float64
	}{
		{[]float64{0.1}, []float64{0.1}, []float64{1, 1}},
		{[]float64{0.2, -0.3, 0.1, 0.05, -0.02}, []float64{-0.1, 0.25, -0.05, 0.02, 0.01}, []float64{1, 0.5, -0.3, 0.2, -0.1, 0.4}},
		{[]float64{0.4, -0.1, 0.2}, []float64{0.3, 0.05, -0.15}, []float64{1, 2, -1, 0.5}},
	}

	for idx, sys := range systems {
		want, err := Solve(sys.a, sys.r, sys.d)
		if err != nil {
			t.Fatalf("system %d: Solve: %v", idx, err)
		}

		got, err := SolveReuse(ws, sys.a, sys.r, sys.d)
		if err != nil {
			t.Fatalf("system %d: SolveReuse: %v", idx, err)
		}

		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestSolveInPlaceReuseMatchesSolveInPlace(t *testing.T) {
	a := []float64{0.4, -0.1, 0.2}
	r := []float64{0.3, 0.05, -0.15}
	d := []float64{1, 2, -1, 0.5}

	want := append([]float64(nil), d...)
	if err := SolveInPlace(a, r, want); err != nil {
		t.Fatalf("SolveInPlace: %v", err)
	}

	got := append([]float64(nil), d...)
	ws := new(Workspace)
	if err := SolveInPlaceReuse(ws, a, r, got); err != nil {
		t.Fatalf("SolveInPlaceReuse: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestSolveSymmetricReuseMatchesSolveSymmetric(t *testing.T) {
	a := []float64{0.5, 0.25}
	d := []float64{1, 0, 0}

	want, err := SolveSymmetric(a, d)
	if err != nil {
		t.Fatalf("SolveSymmetric: %v", err)
	}

	ws := new(Workspace)
	got, err := SolveSymmetricReuse(ws, a, d)
	if err != nil {
		t.Fatalf("SolveSymmetricReuse: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}
