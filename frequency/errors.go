// SPDX-License-Identifier: MIT
// Package frequency: sentinel error set.
// All constructors return these sentinels (optionally wrapped with call-site
// context via %w); tests match them with errors.Is.

package frequency

import "errors"

var (
	// ErrEmpty is returned when an axis would contain no points.
	ErrEmpty = errors.New("frequency: no points")

	// ErrNotIncreasing is returned when points are not strictly increasing,
	// or a sweep has stop < start.
	ErrNotIncreasing = errors.New("frequency: points must be strictly increasing")

	// ErrNonFinite is returned when a point (or start/stop) is NaN or ±Inf.
	ErrNonFinite = errors.New("frequency: NaN or Inf point")

	// ErrUnknownUnit is returned by ParseUnit for unrecognized unit names.
	ErrUnknownUnit = errors.New("frequency: unknown unit")
)
