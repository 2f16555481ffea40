// SPDX-License-Identifier: MIT

package network_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/network"
	"github.com/stretchr/testify/require"
)

// mustFreq builds a 1..3 GHz axis with npoints samples (1 GHz alone for npoints == 1).
func mustFreq(t testing.TB, npoints int) *frequency.Frequency {
	t.Helper()
	stop := 3.0
	if npoints == 1 {
		stop = 1
	}
	f, err := frequency.New(1, stop, npoints, frequency.GHz)
	require.NoError(t, err)
	return f
}

// mustNetwork builds a network whose matrix at sample k is gen(k).
func mustNetwork(t testing.TB, name string, freq *frequency.Frequency, ports int, gen func(k int) []complex128) *network.Network {
	t.Helper()
	data := make([]complex128, 0, freq.Len()*ports*ports)
	for k := 0; k < freq.Len(); k++ {
		m := gen(k)
		require.Len(t, m, ports*ports)
		data = append(data, m...)
	}
	p, err := network.ParamFromData(freq.Len(), ports, data)
	require.NoError(t, err)
	n, err := network.New(freq, p, network.WithName(name))
	require.NoError(t, err)
	return n
}

// fixture2 is a lossy, slightly mismatched 2-port with frequency-dependent phase.
func fixture2(t testing.TB, freq *frequency.Frequency) *network.Network {
	return mustNetwork(t, "fixture", freq, 2, func(k int) []complex128 {
		tr := cmplx.Rect(0.9, -0.3*float64(k+1))
		return []complex128{0.1, tr, tr, complex(0.05, 0.02)}
	})
}

// dut2 is an asymmetric 2-port.
func dut2(t testing.TB, freq *frequency.Frequency) *network.Network {
	return mustNetwork(t, "dut", freq, 2, func(k int) []complex128 {
		return []complex128{complex(0.2, 0.1*float64(k)), 0.6, 0.7, -0.1}
	})
}

// requireParamNear compares two tensors element-wise within tol.
func requireParamNear(t testing.TB, want, got *network.Param, tol float64) {
	t.Helper()
	require.True(t, want.SameShape(got), "shape mismatch")
	w, g := want.Data(), got.Data()
	for i := range w {
		require.InDelta(t, real(w[i]), real(g[i]), tol, "real part at %d", i)
		require.InDelta(t, imag(w[i]), imag(g[i]), tol, "imag part at %d", i)
	}
}
