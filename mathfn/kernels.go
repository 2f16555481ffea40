// SPDX-License-Identifier: MIT

package mathfn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Unwrap removes 2π discontinuities from a sequence of phases (radians).
// Implementation:
//   - Stage 1: copy p[0] unchanged.
//   - Stage 2: for each step d = p[i]-p[i-1] with |d| >= π, map d into [-π, π)
//     and accumulate the correction (mapped - d) into every following point.
//
// Behavior highlights:
//   - The discontinuity threshold is π. A step of exactly +π is kept as +π
//     (not folded to -π).
//
// Inputs:
//   - p: phases in radians (use DegToRad first for degrees).
//
// Returns:
//   - []float64: unwrapped copy, same length as p.
//
// Complexity:
//   - Time O(n), Space O(n).
func Unwrap(p []float64) []float64 {
	out := make([]float64, len(p))
	if len(p) == 0 {
		return out
	}
	out[0] = p[0]

	var correction float64
	for i := 1; i < len(p); i++ {
		d := p[i] - p[i-1]
		dm := math.Mod(d+math.Pi, 2*math.Pi)
		if dm < 0 {
			dm += 2 * math.Pi // floor-mod semantics
		}
		dm -= math.Pi
		if dm == -math.Pi && d > 0 {
			dm = math.Pi
		}
		if math.Abs(d) >= math.Pi {
			correction += dm - d
		}
		out[i] = p[i] + correction
	}

	return out
}

// ReplaceNonFiniteWithMin copies x replacing every NaN and ±Inf by the
// minimum finite value of x.
// Behavior highlights:
//   - Used as the guard after transforming a lower uncertainty bound, where
//     log10 of a negative value yields NaN and log10(0) yields -Inf.
//   - When x has no finite value the minimum is taken over the finite values
//     of fallback instead (e.g. the transformed mean and upper bound).
//   - If neither x nor fallback has a finite value, x is returned as an
//     unchanged copy.
//
// Complexity: Time O(n + len(fallback...)), Space O(n).
func ReplaceNonFiniteWithMin(x []float64, fallback ...[]float64) []float64 {
	out := append([]float64(nil), x...)

	lo, ok := finiteMin(x)
	if !ok {
		var pool []float64
		for _, f := range fallback {
			pool = append(pool, f...)
		}
		lo, ok = finiteMin(pool)
	}
	if !ok {
		return out
	}

	for i, v := range out {
		if !IsFinite(v) {
			out[i] = lo
		}
	}
	return out
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteMin returns the minimum finite value of x and whether one exists.
func finiteMin(x []float64) (float64, bool) {
	finite := make([]float64, 0, len(x))
	for _, v := range x {
		if IsFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, false
	}
	return floats.Min(finite), true
}

// Stride returns every n-th element of x starting at index 0.
// n <= 1 returns a copy of x.
func Stride(x []float64, n int) []float64 {
	if n <= 1 {
		return append([]float64(nil), x...)
	}
	out := make([]float64, 0, (len(x)+n-1)/n)
	for i := 0; i < len(x); i += n {
		out = append(out, x[i])
	}
	return out
}

// Add returns a[i]+b[i]. Panics on length mismatch (programmer error).
func Add(a, b []float64) []float64 {
	out := append([]float64(nil), a...)
	floats.Add(out, b)
	return out
}

// Sub returns a[i]-b[i]. Panics on length mismatch (programmer error).
func Sub(a, b []float64) []float64 {
	out := append([]float64(nil), a...)
	floats.Sub(out, b)
	return out
}
