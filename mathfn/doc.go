// SPDX-License-Identifier: MIT

// Package mathfn provides the element-wise numeric kernels used to derive
// scalar views from complex s-parameters.
//
// Purpose:
//   - Unit conversions: MagnitudeToDB / DBToMagnitude, RadToDeg / DegToRad.
//   - Complex → real projections over slices: Abs, Real, Imag, AngleRad, AngleDeg.
//   - Phase unwrapping along an axis (Unwrap) with a π discontinuity threshold.
//   - Sanitizing post-processed bounds (ReplaceNonFiniteWithMin) and sub-sampling (Stride).
//
// Determinism & Performance:
//   - Every kernel is a single flat pass (i = 0..n-1) and allocates only its output.
//   - Inputs are never mutated.
//
// AI-Hints:
//   - MagnitudeToDB(0) is -Inf and MagnitudeToDB(x<0) is NaN; pair it with
//     ReplaceNonFiniteWithMin when transforming lower uncertainty bounds.
package mathfn
