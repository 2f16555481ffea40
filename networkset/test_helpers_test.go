// SPDX-License-Identifier: MIT

package networkset_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/network"
	"github.com/katalvlaran/rfset/networkset"
)

// axis builds a 1..stop GHz axis with npoints samples.
func axis(t testing.TB, stop float64, npoints int) *frequency.Frequency {
	t.Helper()
	f, err := frequency.New(1, stop, npoints, frequency.GHz)
	require.NoError(t, err)
	return f
}

// netOf builds a network whose matrix at sample k is gen(k).
func netOf(t testing.TB, name string, freq *frequency.Frequency, ports int, gen func(k int) []complex128) *network.Network {
	t.Helper()
	data := make([]complex128, 0, freq.Len()*ports*ports)
	for k := 0; k < freq.Len(); k++ {
		data = append(data, gen(k)...)
	}
	p, err := network.ParamFromData(freq.Len(), ports, data)
	require.NoError(t, err)
	n, err := network.New(freq, p, network.WithName(name))
	require.NoError(t, err)
	return n
}

// constOnePort is a 1-port with the same reflection at every frequency.
func constOnePort(t testing.TB, name string, freq *frequency.Frequency, v complex128) *network.Network {
	return netOf(t, name, freq, 1, func(int) []complex128 { return []complex128{v} })
}

// twoPort is a frequency-dependent 2-port parameterised by a.
func twoPort(t testing.TB, name string, freq *frequency.Frequency, a float64) *network.Network {
	return netOf(t, name, freq, 2, func(k int) []complex128 {
		f := float64(k + 1)
		return []complex128{
			complex(0.1*a, 0.01*f), complex(0.8, -0.1*a*f),
			complex(0.8, -0.1*a*f), complex(-0.05*a, 0.02),
		}
	})
}

// quietLogger returns a logger that records entries instead of printing them.
func quietLogger() (*logrus.Logger, *logtest.Hook) {
	return logtest.NewNullLogger()
}

// mustSet builds a set or fails the test.
func mustSet(t testing.TB, members []*network.Network, opts ...networkset.Option) *networkset.NetworkSet {
	t.Helper()
	ns, err := networkset.New(members, opts...)
	require.NoError(t, err)
	return ns
}

// trace returns the real parts of element (m, n) of n's s-parameters.
func trace(t testing.TB, n *network.Network, m, k int) []float64 {
	t.Helper()
	vals, err := n.S().Port(m, k)
	require.NoError(t, err)
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = real(v)
	}
	return out
}
