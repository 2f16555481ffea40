// SPDX-License-Identifier: MIT

package networkset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/katalvlaran/rfset/network"
	"github.com/katalvlaran/rfset/networkset"
)

func TestSignatureData_DistanceFromMean(t *testing.T) {
	freq := axis(t, 3, 3)
	ns := mustSet(t, []*network.Network{
		constOnePort(t, "a", freq, complex(1, 0)),
		constOnePort(t, "b", freq, complex(3, 0)),
		constOnePort(t, "c", freq, complex(2, 3)),
	})

	rows, err := ns.SignatureData(0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// mean = 2+1i: distances |−1−1i|, |1−1i|, |2i|
	assert.Empty(t, cmp.Diff([]float64{1.4142135623730951, 1.4142135623730951, 1.4142135623730951}, rows[0], approx))
	assert.Empty(t, cmp.Diff([]float64{1.4142135623730951, 1.4142135623730951, 1.4142135623730951}, rows[1], approx))
	assert.Empty(t, cmp.Diff([]float64{2, 2, 2}, rows[2], approx))

	_, err = ns.SignatureData(1, 0)
	require.ErrorIs(t, err, network.ErrPortIndex)
}

func TestPlotSignature_DefaultScale(t *testing.T) {
	freq := axis(t, 3, 3)
	ns := mustSet(t, []*network.Network{
		constOnePort(t, "a", freq, 1),
		constOnePort(t, "b", freq, 3),
	})

	p := plot.New()
	vmax, err := ns.PlotSignature(p, networkset.SignatureOptions{})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, vmax, 1e-12) // 3 × mean(|±1|)
	assert.Equal(t, "Network #", p.Y.Label.Text)

	vmax, err = ns.PlotSignature(plot.New(), networkset.SignatureOptions{VMax: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.5, vmax)

	same := mustSet(t, []*network.Network{constOnePort(t, "a", freq, 1), constOnePort(t, "b", freq, 1)})
	vmax, err = same.PlotSignature(plot.New(), networkset.SignatureOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, vmax)
}

func TestSignatureScale(t *testing.T) {
	assert.InDelta(t, 6.0, networkset.SignatureScale([][]float64{{1, 3}, {2, 2}}), 1e-12)
	assert.Zero(t, networkset.SignatureScale(nil))
	assert.Zero(t, networkset.SignatureScale([][]float64{{}, {}}))
}
