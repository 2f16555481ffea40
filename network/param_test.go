// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/katalvlaran/rfset/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewParamInvalidShape ensures non-positive dimensions are rejected.
func TestNewParamInvalidShape(t *testing.T) {
	_, err := network.NewParam(0, 2)
	require.ErrorIs(t, err, network.ErrShape)
	_, err = network.NewParam(3, 0)
	require.ErrorIs(t, err, network.ErrShape)
	_, err = network.ParamFromData(2, 2, make([]complex128, 7))
	require.ErrorIs(t, err, network.ErrShape)
}

// TestParamAtSetPort covers the index formula and the per-element trace.
func TestParamAtSetPort(t *testing.T) {
	p, err := network.NewParam(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Freqs())
	assert.Equal(t, 2, p.Ports())

	for k := 0; k < 3; k++ {
		require.NoError(t, p.Set(k, 1, 0, complex(float64(k), 1)))
	}
	v, err := p.At(2, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(2, 1), v)

	trace, err := p.Port(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []complex128{complex(0, 1), complex(1, 1), complex(2, 1)}, trace)

	// Row-major flat offset k*n*n + i*n + j.
	assert.Equal(t, complex(1, 1), p.Data()[1*4+1*2+0])

	_, err = p.At(3, 0, 0)
	require.ErrorIs(t, err, network.ErrPortIndex)
	require.ErrorIs(t, p.Set(0, 2, 0, 1), network.ErrPortIndex)
	_, err = p.Port(0, -1)
	require.ErrorIs(t, err, network.ErrPortIndex)
}

// TestParamCloneIsDeep ensures Clone, Data and Matrix return independent copies.
func TestParamCloneIsDeep(t *testing.T) {
	p, err := network.ParamFromMatrices([][][]complex128{{{1, 2}, {3, 4}}})
	require.NoError(t, err)

	c := p.Clone()
	require.NoError(t, c.Set(0, 0, 0, 9))
	v, _ := p.At(0, 0, 0)
	assert.Equal(t, complex128(1), v)

	d := p.Data()
	d[0] = 42
	m, err := p.Matrix(0)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 2, 3, 4}, m)
}

// TestParamFromMatricesRagged ensures non-square input is rejected.
func TestParamFromMatricesRagged(t *testing.T) {
	_, err := network.ParamFromMatrices([][][]complex128{{{1, 2}, {3}}})
	require.ErrorIs(t, err, network.ErrShape)
	_, err = network.ParamFromMatrices(nil)
	require.ErrorIs(t, err, network.ErrShape)
}
