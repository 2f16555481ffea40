// SPDX-License-Identifier: MIT

package frequency

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// EqualityTolerance is the absolute tolerance (Hz) used by Equal.
// Two axes whose points all differ by no more than this value are the same axis.
const EqualityTolerance = 1e-4

// Frequency is an immutable frequency axis.
//   - points hold the sample frequencies in Hz, strictly increasing.
//   - unit is the display unit used by Scaled and axis labels.
type Frequency struct {
	points []float64 // Hz, strictly increasing, len >= 1
	unit   Unit      // display unit
}

// New builds a linearly spaced axis of npoints between start and stop (both in unit).
// Implementation:
//   - Stage 1: validate npoints > 0, finite bounds, stop >= start.
//   - Stage 2: fill points with floats.Span (inclusive of both ends).
//
// Behavior highlights:
//   - npoints == 1 requires start == stop and yields a single-point axis.
//
// Errors:
//   - ErrEmpty (npoints <= 0), ErrNonFinite, ErrNotIncreasing.
//
// Complexity:
//   - Time O(npoints), Space O(npoints).
func New(start, stop float64, npoints int, unit Unit) (*Frequency, error) {
	if npoints <= 0 {
		return nil, fmt.Errorf("New: %w", ErrEmpty)
	}
	if !isFinite(start) || !isFinite(stop) {
		return nil, fmt.Errorf("New: %w", ErrNonFinite)
	}
	if stop < start || (npoints > 1 && stop == start) || (npoints == 1 && stop != start) {
		return nil, fmt.Errorf("New(%g, %g, %d): %w", start, stop, npoints, ErrNotIncreasing)
	}

	mult := unit.Multiplier()
	points := make([]float64, npoints)
	if npoints == 1 {
		points[0] = start * mult
	} else {
		floats.Span(points, start*mult, stop*mult)
	}

	return &Frequency{points: points, unit: unit}, nil
}

// FromPoints wraps explicit sample points given in Hz.
// The slice is copied; later mutation by the caller has no effect.
// Errors: ErrEmpty, ErrNonFinite, ErrNotIncreasing.
func FromPoints(pointsHz []float64, unit Unit) (*Frequency, error) {
	if len(pointsHz) == 0 {
		return nil, fmt.Errorf("FromPoints: %w", ErrEmpty)
	}
	for i, p := range pointsHz {
		if !isFinite(p) {
			return nil, fmt.Errorf("FromPoints: point %d: %w", i, ErrNonFinite)
		}
		if i > 0 && p <= pointsHz[i-1] {
			return nil, fmt.Errorf("FromPoints: point %d: %w", i, ErrNotIncreasing)
		}
	}

	return &Frequency{points: append([]float64(nil), pointsHz...), unit: unit}, nil
}

// Len returns the number of sample points.
func (f *Frequency) Len() int { return len(f.points) }

// Unit returns the display unit.
func (f *Frequency) Unit() Unit { return f.unit }

// Points returns a copy of the sample points in Hz.
func (f *Frequency) Points() []float64 {
	return append([]float64(nil), f.points...)
}

// Scaled returns the sample points expressed in the display unit.
func (f *Frequency) Scaled() []float64 {
	out := f.Points()
	m := f.unit.Multiplier()
	for i := range out {
		out[i] /= m // division keeps round values exact (3e9/1e9 == 3)
	}
	return out
}

// Start returns the first point in Hz.
func (f *Frequency) Start() float64 { return f.points[0] }

// Stop returns the last point in Hz.
func (f *Frequency) Stop() float64 { return f.points[len(f.points)-1] }

// Center returns the midpoint of the band in Hz.
func (f *Frequency) Center() float64 { return (f.Start() + f.Stop()) / 2 }

// Contains reports whether hz lies inside [Start, Stop].
func (f *Frequency) Contains(hz float64) bool {
	return hz >= f.Start() && hz <= f.Stop()
}

// WithUnit returns a copy of f displayed in unit u. Points are unchanged.
func (f *Frequency) WithUnit(u Unit) *Frequency {
	return &Frequency{points: f.Points(), unit: u}
}

// Equal reports whether f and other describe the same sample points.
// The display unit is ignored; points are compared within EqualityTolerance.
// A nil operand is only equal to another nil.
// Complexity: O(n).
func (f *Frequency) Equal(other *Frequency) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.points) != len(other.points) {
		return false
	}

	return floats.EqualFunc(f.points, other.points, func(a, b float64) bool {
		return scalar.EqualWithinAbs(a, b, EqualityTolerance)
	})
}

// String implements fmt.Stringer, e.g. "1-10 GHz, 10 pts".
func (f *Frequency) String() string {
	m := f.unit.Multiplier()
	return fmt.Sprintf("%g-%g %s, %d pts", f.Start()/m, f.Stop()/m, f.unit, f.Len())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
