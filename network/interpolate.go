// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/rfset/frequency"
)

// Interpolate resamples n onto freq.
// Implementation:
//   - Stage 1: reject targets outside [Start, Stop] (EqualityTolerance slack).
//   - Stage 2: for every (i, j) trace fit interp.PiecewiseLinear on the real
//     part and on the imaginary part, then predict at each target.
//
// Behavior highlights:
//   - Interpolating at the existing points reproduces the data.
//   - A single-point network can only be "interpolated" onto its own point.
//
// Errors: ErrOutOfBand.
// Complexity: O(N²·(F + F'·log F)).
func (n *Network) Interpolate(freq *frequency.Frequency) (*Network, error) {
	if freq == nil {
		return nil, fmt.Errorf("Interpolate: nil frequency: %w", ErrShape)
	}
	src := n.freq.Points()
	dst := freq.Points()
	lo := src[0] - frequency.EqualityTolerance
	hi := src[len(src)-1] + frequency.EqualityTolerance
	for _, x := range dst {
		if x < lo || x > hi {
			return nil, fmt.Errorf("Interpolate: %g Hz not in [%g, %g]: %w", x, src[0], src[len(src)-1], ErrOutOfBand)
		}
	}

	ports := n.NumPorts()
	out, err := NewParam(len(dst), ports)
	if err != nil {
		return nil, err
	}
	stride := ports * ports

	if len(src) == 1 {
		for k := range dst {
			copy(out.data[k*stride:(k+1)*stride], n.s.data)
		}
		return &Network{name: n.name, freq: freq, s: out, z0: n.z0}, nil
	}

	re := make([]float64, len(src))
	im := make([]float64, len(src))
	for i := 0; i < ports; i++ {
		for j := 0; j < ports; j++ {
			for k := range src {
				v := n.s.data[k*stride+i*ports+j]
				re[k], im[k] = real(v), imag(v)
			}
			var plRe, plIm interp.PiecewiseLinear
			if err := plRe.Fit(src, re); err != nil {
				return nil, fmt.Errorf("Interpolate: %w", err)
			}
			if err := plIm.Fit(src, im); err != nil {
				return nil, fmt.Errorf("Interpolate: %w", err)
			}
			for k, x := range dst {
				x = clamp(x, src[0], src[len(src)-1])
				out.data[k*stride+i*ports+j] = complex(plRe.Predict(x), plIm.Predict(x))
			}
		}
	}

	return &Network{name: n.name, freq: freq, s: out, z0: n.z0}, nil
}

// clamp pulls x into [lo, hi]; used to absorb the tolerance slack at band edges.
func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}
