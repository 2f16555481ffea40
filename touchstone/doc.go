// SPDX-License-Identifier: MIT

// Package touchstone reads and writes Touchstone v1 (.sNp) s-parameter files.
//
// Supported subset:
//   - '!' comments anywhere on a line; blank lines.
//   - One option line "# <unit> S <RI|MA|DB> R <z0>"; missing fields take the
//     Touchstone defaults (GHZ, MA, 50 Ω). Only S parameters are accepted.
//   - Data records that wrap across lines (ports > 2).
//   - The 2-port column order S11 S21 S12 S22; row-major order otherwise.
//
// Write always emits Hz / RI, which loses nothing.
//
//	d, err := touchstone.Parse(f, 2)
//	...
//	err = touchstone.Write(w, d)
package touchstone
