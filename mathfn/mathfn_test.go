// SPDX-License-Identifier: MIT

package mathfn_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/rfset/mathfn"
	"github.com/stretchr/testify/assert"
)

// approx compares float slices within an absolute margin of 1e-12.
var approx = cmpopts.EquateApprox(0, 1e-12)

func TestDBRoundTrip(t *testing.T) {
	assert.InDelta(t, 0.0, mathfn.MagnitudeToDB(1), 1e-15)
	assert.InDelta(t, 40.0, mathfn.MagnitudeToDB(100), 1e-12)
	assert.InDelta(t, -20.0, mathfn.MagnitudeToDB(0.1), 1e-12)
	assert.InDelta(t, 100.0, mathfn.DBToMagnitude(40), 1e-9)
	assert.True(t, math.IsInf(mathfn.MagnitudeToDB(0), -1))
	assert.True(t, math.IsNaN(mathfn.MagnitudeToDB(-1)))
}

func TestProjections(t *testing.T) {
	x := []complex128{3 + 4i, -1, 1i}

	if d := cmp.Diff([]float64{5, 1, 1}, mathfn.Abs(x), approx); d != "" {
		t.Fatalf("Abs mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{3, -1, 0}, mathfn.Real(x), approx); d != "" {
		t.Fatalf("Real mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{4, 0, 1}, mathfn.Imag(x), approx); d != "" {
		t.Fatalf("Imag mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{math.Atan2(4, 3), math.Pi, math.Pi / 2}, mathfn.AngleRad(x), approx); d != "" {
		t.Fatalf("AngleRad mismatch (-want +got):\n%s", d)
	}
	assert.InDelta(t, 90.0, mathfn.AngleDeg(x)[2], 1e-12)
}

func TestUnwrap(t *testing.T) {
	// A phase ramp of -0.9π per step wraps every other sample.
	step := -0.9 * math.Pi
	want := make([]float64, 6)
	wrapped := make([]float64, 6)
	for i := range want {
		want[i] = float64(i) * step
		wrapped[i] = math.Atan2(math.Sin(want[i]), math.Cos(want[i]))
	}

	if d := cmp.Diff(want, mathfn.Unwrap(wrapped), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Fatalf("Unwrap mismatch (-want +got):\n%s", d)
	}
	assert.Empty(t, mathfn.Unwrap(nil))
}

func TestUnwrap_NoJumpUnchanged(t *testing.T) {
	in := []float64{0, 0.5, 1, 1.5}
	assert.Equal(t, in, mathfn.Unwrap(in))
}

func TestReplaceNonFiniteWithMin(t *testing.T) {
	in := []float64{math.NaN(), 3, -2, math.NaN(), math.Inf(-1), math.Inf(1)}
	got := mathfn.ReplaceNonFiniteWithMin(in)

	assert.Equal(t, []float64{-2, 3, -2, -2, -2, -2}, got)
	assert.True(t, math.IsNaN(in[0]), "input must not be mutated")

	allNaN := mathfn.ReplaceNonFiniteWithMin([]float64{math.NaN()})
	assert.True(t, math.IsNaN(allNaN[0]))
}

func TestReplaceNonFiniteWithMin_Fallback(t *testing.T) {
	lower := []float64{math.NaN(), math.Inf(-1)}
	mean := []float64{-20, math.Inf(-1)}
	upper := []float64{-8, -9}

	got := mathfn.ReplaceNonFiniteWithMin(lower, mean, upper)
	assert.Equal(t, []float64{-20, -20}, got)

	own := mathfn.ReplaceNonFiniteWithMin([]float64{math.NaN(), -3}, mean)
	assert.Equal(t, []float64{-3, -3}, own, "x's own minimum wins over the fallback")

	none := mathfn.ReplaceNonFiniteWithMin([]float64{math.NaN()}, []float64{math.Inf(1)})
	assert.True(t, math.IsNaN(none[0]))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, mathfn.IsFinite(0))
	assert.False(t, mathfn.IsFinite(math.NaN()))
	assert.False(t, mathfn.IsFinite(math.Inf(-1)))
}

func TestStride(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	assert.Equal(t, []float64{0, 3, 6}, mathfn.Stride(x, 3))
	assert.Equal(t, x, mathfn.Stride(x, 0))
}

func TestAddSub(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{0.5, 4}
	assert.Equal(t, []float64{1.5, 6}, mathfn.Add(a, b))
	assert.Equal(t, []float64{0.5, -2}, mathfn.Sub(a, b))
	assert.Equal(t, []float64{1, 2}, a)
}
