// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math/cmplx"
)

// zeroPivot is the magnitude below which a pivot is treated as zero.
const zeroPivot = 0.0

// invert returns the inverse of the n×n row-major complex matrix a.
// Blueprint:
//
//	Stage 1 (Decompose): P·A = L·U via Doolittle with partial pivoting.
//	Stage 2 (Execute): for each identity column eᵢ, solve L·y = P·eᵢ then U·x = y.
//	Stage 3 (Finalize): write x into column i of the result.
//
// Errors: ErrSingular on a zero pivot.
// Complexity: O(n³) time, O(n²) memory.
func invert(a []complex128, n int) ([]complex128, error) {
	lu := append([]complex128(nil), a...)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 1: in-place LU, L below the diagonal (unit diagonal implied).
	for col := 0; col < n; col++ {
		p := col
		for r := col + 1; r < n; r++ {
			if cmplx.Abs(lu[r*n+col]) > cmplx.Abs(lu[p*n+col]) {
				p = r
			}
		}
		if cmplx.Abs(lu[p*n+col]) == zeroPivot {
			return nil, fmt.Errorf("invert: zero pivot at %d: %w", col, ErrSingular)
		}
		if p != col {
			for c := 0; c < n; c++ {
				lu[p*n+c], lu[col*n+c] = lu[col*n+c], lu[p*n+c]
			}
			perm[p], perm[col] = perm[col], perm[p]
		}
		for r := col + 1; r < n; r++ {
			lu[r*n+col] /= lu[col*n+col]
			for c := col + 1; c < n; c++ {
				lu[r*n+c] -= lu[r*n+col] * lu[col*n+c]
			}
		}
	}

	// Stage 2-3: column-by-column substitution.
	inv := make([]complex128, n*n)
	y := make([]complex128, n)
	x := make([]complex128, n)
	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			var sum complex128
			for k := 0; k < i; k++ {
				sum += lu[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		for i := n - 1; i >= 0; i-- {
			var sum complex128
			for k := i + 1; k < n; k++ {
				sum += lu[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / lu[i*n+i]
		}
		for i := 0; i < n; i++ {
			inv[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// matmul returns the product of two n×n row-major complex matrices.
func matmul(a, b []complex128, n int) []complex128 {
	out := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a[i*n+k]
			for j := 0; j < n; j++ {
				out[i*n+j] += aik * b[k*n+j]
			}
		}
	}
	return out
}

// s2t converts a 2-port scattering matrix [s11 s12; s21 s22] into cascading
// T-parameters. Errors: ErrSingular when s21 == 0.
func s2t(s []complex128) ([]complex128, error) {
	s11, s12, s21, s22 := s[0], s[1], s[2], s[3]
	if s21 == 0 {
		return nil, fmt.Errorf("s2t: s21 == 0: %w", ErrSingular)
	}
	det := s11*s22 - s12*s21
	return []complex128{
		-det / s21, s11 / s21,
		-s22 / s21, 1 / s21,
	}, nil
}

// t2s is the inverse of s2t. Errors: ErrSingular when t22 == 0.
func t2s(t []complex128) ([]complex128, error) {
	t11, t12, t21, t22 := t[0], t[1], t[2], t[3]
	if t22 == 0 {
		return nil, fmt.Errorf("t2s: t22 == 0: %w", ErrSingular)
	}
	return []complex128{
		t12 / t22, (t11*t22 - t12*t21) / t22,
		1 / t22, -t21 / t22,
	}, nil
}
