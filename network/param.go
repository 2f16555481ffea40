// SPDX-License-Identifier: MIT

// Package network - Param storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold F matrices of N×N complex values in one flat buffer with the
//     explicit index formula k*N*N + i*N + j.
//   - Keep the public surface safe: At/Set/Port return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewParam: O(F·N²) zero-init; At/Set: O(1); Port: O(F); Clone: O(F·N²).

package network

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxPort = "Port"
)

// paramErrorf wraps an error with a uniform Param context and indices.
func paramErrorf(method string, k, i, j int, err error) error {
	return fmt.Errorf("Param.%s(%d,%d,%d): %w", method, k, i, j, err)
}

// Param is a row-major complex tensor of shape freqs×ports×ports.
//   - f is the number of frequency samples, n the number of ports.
//   - data holds f*n*n values (offset = k*n*n + i*n + j).
type Param struct {
	f, n int
	data []complex128
}

var _ fmt.Stringer = (*Param)(nil)

// NewParam returns a zero tensor of shape freqs×ports×ports.
// Errors: ErrShape when freqs <= 0 or ports <= 0.
func NewParam(freqs, ports int) (*Param, error) {
	if freqs <= 0 || ports <= 0 {
		return nil, fmt.Errorf("NewParam(%d,%d): %w", freqs, ports, ErrShape)
	}
	return &Param{f: freqs, n: ports, data: make([]complex128, freqs*ports*ports)}, nil
}

// ParamFromData wraps a copy of a flat row-major buffer.
// Errors: ErrShape when len(data) != freqs*ports*ports or a dimension is not positive.
func ParamFromData(freqs, ports int, data []complex128) (*Param, error) {
	if freqs <= 0 || ports <= 0 || len(data) != freqs*ports*ports {
		return nil, fmt.Errorf("ParamFromData(%d,%d,len=%d): %w", freqs, ports, len(data), ErrShape)
	}
	return &Param{f: freqs, n: ports, data: append([]complex128(nil), data...)}, nil
}

// ParamFromMatrices builds a Param from nested [freq][row][col] values.
// Every matrix must be square with the same size.
// Errors: ErrShape for empty or ragged input.
func ParamFromMatrices(values [][][]complex128) (*Param, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("ParamFromMatrices: %w", ErrShape)
	}
	n := len(values[0])
	p, err := NewParam(len(values), n)
	if err != nil {
		return nil, err
	}
	for k, m := range values {
		if len(m) != n {
			return nil, fmt.Errorf("ParamFromMatrices: freq %d has %d rows: %w", k, len(m), ErrShape)
		}
		for i, row := range m {
			if len(row) != n {
				return nil, fmt.Errorf("ParamFromMatrices: freq %d row %d has %d cols: %w", k, i, len(row), ErrShape)
			}
			copy(p.data[k*n*n+i*n:], row)
		}
	}
	return p, nil
}

// Freqs returns the number of frequency samples.
func (p *Param) Freqs() int { return p.f }

// Ports returns the number of ports (matrix size).
func (p *Param) Ports() int { return p.n }

// indexOf computes the flat offset for (k, i, j) or returns ErrPortIndex.
func (p *Param) indexOf(method string, k, i, j int) (int, error) {
	if k < 0 || k >= p.f || i < 0 || i >= p.n || j < 0 || j >= p.n {
		return 0, paramErrorf(method, k, i, j, ErrPortIndex)
	}
	return k*p.n*p.n + i*p.n + j, nil
}

// At returns the value at frequency index k, row i, column j.
func (p *Param) At(k, i, j int) (complex128, error) {
	idx, err := p.indexOf(ctxAt, k, i, j)
	if err != nil {
		return 0, err
	}
	return p.data[idx], nil
}

// Set stores v at frequency index k, row i, column j.
func (p *Param) Set(k, i, j int, v complex128) error {
	idx, err := p.indexOf(ctxSet, k, i, j)
	if err != nil {
		return err
	}
	p.data[idx] = v
	return nil
}

// Port returns the trace of element (i, j) across all frequencies.
// Errors: ErrPortIndex when i or j is outside [0, Ports()).
// Complexity: O(F).
func (p *Param) Port(i, j int) ([]complex128, error) {
	if _, err := p.indexOf(ctxPort, 0, i, j); err != nil {
		return nil, err
	}
	out := make([]complex128, p.f)
	stride := p.n * p.n
	for k := 0; k < p.f; k++ {
		out[k] = p.data[k*stride+i*p.n+j]
	}
	return out, nil
}

// Matrix returns a copy of the N×N matrix (row-major) at frequency index k.
func (p *Param) Matrix(k int) ([]complex128, error) {
	if _, err := p.indexOf(ctxAt, k, 0, 0); err != nil {
		return nil, err
	}
	stride := p.n * p.n
	return append([]complex128(nil), p.data[k*stride:(k+1)*stride]...), nil
}

// Data returns a copy of the flat row-major buffer.
func (p *Param) Data() []complex128 {
	return append([]complex128(nil), p.data...)
}

// SameShape reports whether p and q have identical dimensions.
func (p *Param) SameShape(q *Param) bool {
	return p != nil && q != nil && p.f == q.f && p.n == q.n
}

// Clone returns a deep copy.
func (p *Param) Clone() *Param {
	return &Param{f: p.f, n: p.n, data: append([]complex128(nil), p.data...)}
}

// Map returns a new Param with fn applied to every element.
// Complexity: O(F·N²), one flat pass.
func (p *Param) Map(fn func(complex128) complex128) *Param {
	out := &Param{f: p.f, n: p.n, data: make([]complex128, len(p.data))}
	for idx, v := range p.data {
		out.data[idx] = fn(v)
	}
	return out
}

// String implements fmt.Stringer; one line per frequency sample.
func (p *Param) String() string {
	var b strings.Builder
	stride := p.n * p.n
	for k := 0; k < p.f; k++ {
		b.WriteString("[")
		for idx := 0; idx < stride; idx++ {
			if idx > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", p.data[k*stride+idx])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
