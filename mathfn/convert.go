// SPDX-License-Identifier: MIT

package mathfn

import (
	"math"
	"math/cmplx"
)

// Scalar conversions. Each one is a pure func(float64) float64 so it can be
// passed directly as a post-processing transform.

// MagnitudeToDB converts a linear magnitude into decibels: 20·log10(x).
func MagnitudeToDB(x float64) float64 { return 20 * math.Log10(x) }

// DBToMagnitude converts decibels into a linear magnitude: 10^(x/20).
func DBToMagnitude(x float64) float64 { return math.Pow(10, x/20) }

// RadToDeg converts radians to degrees.
func RadToDeg(x float64) float64 { return x * 180 / math.Pi }

// DegToRad converts degrees to radians.
func DegToRad(x float64) float64 { return x * math.Pi / 180 }

// ---------- complex → real projections ----------

// project applies fn to every element of x.
// Time: O(n). Space: O(n). Deterministic flat loop.
func project(x []complex128, fn func(complex128) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = fn(v)
	}
	return out
}

// Abs returns |x[i]| for every element.
func Abs(x []complex128) []float64 { return project(x, cmplx.Abs) }

// Real returns real(x[i]) for every element.
func Real(x []complex128) []float64 {
	return project(x, func(v complex128) float64 { return real(v) })
}

// Imag returns imag(x[i]) for every element.
func Imag(x []complex128) []float64 {
	return project(x, func(v complex128) float64 { return imag(v) })
}

// AngleRad returns the phase of x[i] in radians, in (-π, π].
func AngleRad(x []complex128) []float64 { return project(x, cmplx.Phase) }

// AngleDeg returns the phase of x[i] in degrees, in (-180, 180].
func AngleDeg(x []complex128) []float64 {
	return project(x, func(v complex128) float64 { return RadToDeg(cmplx.Phase(v)) })
}

// Apply returns fn(x[i]) for every element.
func Apply(x []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = fn(v)
	}
	return out
}

// ToComplex lifts a real slice into complex128 with zero imaginary parts.
func ToComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}
