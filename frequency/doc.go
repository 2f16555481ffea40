// SPDX-License-Identifier: MIT

// Package frequency describes the frequency axis shared by s-parameter data.
//
// A Frequency is an immutable, strictly increasing list of sample points
// stored in Hz together with a display Unit used for scaling plot axes and
// for Touchstone headers.
//
// What is provided:
//   - New builds a linear sweep (start, stop, npoints) in a given unit.
//   - FromPoints wraps explicit points (Hz) after validation.
//   - Equal compares two axes sample-by-sample within EqualityTolerance.
//   - Scaled returns the points expressed in the display unit.
//
// Two networks can only be combined or aggregated when their axes are Equal;
// the networkset package relies on this comparison for its validation.
//
//	f, _ := frequency.New(1, 10, 10, frequency.GHz)
//	fmt.Println(f.Len(), f.Scaled()[0]) // 10 1
package frequency
