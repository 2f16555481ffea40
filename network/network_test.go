// SPDX-License-Identifier: MIT

package network_test

import (
	"bytes"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestNew_ValidatesShapeAndOptions(t *testing.T) {
	freq := mustFreq(t, 3)
	p, err := network.NewParam(2, 2)
	require.NoError(t, err)
	_, err = network.New(freq, p)
	require.ErrorIs(t, err, network.ErrShape)
	_, err = network.New(nil, p)
	require.ErrorIs(t, err, network.ErrShape)

	p, err = network.NewParam(3, 2)
	require.NoError(t, err)
	n, err := network.New(freq, p, network.WithName("a"), network.WithZ0(75))
	require.NoError(t, err)
	assert.Equal(t, "a", n.Name())
	assert.Equal(t, 75.0, n.Z0())
	assert.Equal(t, 2, n.NumPorts())
	assert.True(t, n.Frequency().Equal(freq))

	n, err = network.New(freq, p)
	require.NoError(t, err)
	assert.Equal(t, network.DefaultZ0, n.Z0())

	assert.Panics(t, func() { network.WithZ0(0) })
	assert.Panics(t, func() { network.WithZ0(math.Inf(1)) })
}

func TestSetSAndCopy(t *testing.T) {
	freq := mustFreq(t, 3)
	n := dut2(t, freq)

	c := n.Copy()
	c.Rename("copy")
	s := c.S()
	require.NoError(t, s.Set(0, 0, 0, 5))
	require.NoError(t, c.SetS(s))

	v, _ := n.S().At(0, 0, 0)
	assert.Equal(t, complex(0.2, 0), v, "original untouched")
	assert.Equal(t, "dut", n.Name())
	assert.Equal(t, "copy", c.Name())

	bad, _ := network.NewParam(3, 1)
	require.ErrorIs(t, c.SetS(bad), network.ErrShape)
}

func TestAttribute_NamesRoundTrip(t *testing.T) {
	attrs := network.Attributes()
	require.Len(t, attrs, 12)
	for _, a := range attrs {
		got, err := network.ParseAttribute(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	assert.Equal(t, "s_mag", network.SMag.String())
	assert.Equal(t, "s_arcl_unwrap", network.SArclUnwrap.String())
	assert.Equal(t, "Magnitude (dB)", network.SDB.Label())

	_, err := network.ParseAttribute("s_volume")
	require.ErrorIs(t, err, network.ErrUnknownAttribute)
	_, err = mustFreqNetwork(t).View(network.Attribute(99))
	require.ErrorIs(t, err, network.ErrUnknownAttribute)
}

func mustFreqNetwork(t *testing.T) *network.Network {
	return dut2(t, mustFreq(t, 3))
}

func TestView_ScalarAttributes(t *testing.T) {
	freq := mustFreq(t, 1)
	n := mustNetwork(t, "one", freq, 1, func(int) []complex128 {
		return []complex128{cmplx.Rect(2, math.Pi/2)}
	})

	cases := []struct {
		attr network.Attribute
		want float64
	}{
		{network.SRe, 0},
		{network.SIm, 2},
		{network.SMag, 2},
		{network.SDB, 20 * math.Log10(2)},
		{network.SDeg, 90},
		{network.SRad, math.Pi / 2},
		{network.SArcl, math.Pi},
	}
	for _, tc := range cases {
		t.Run(tc.attr.String(), func(t *testing.T) {
			v, err := n.View(tc.attr)
			require.NoError(t, err)
			got, _ := v.At(0, 0, 0)
			assert.InDelta(t, tc.want, real(got), 1e-12)
			assert.Equal(t, 0.0, imag(got))
		})
	}
}

func TestView_UnwrapAlongFrequency(t *testing.T) {
	freq := mustFreq(t, 3)
	degs := []float64{170, 190, 210}
	n := mustNetwork(t, "phase", freq, 1, func(k int) []complex128 {
		return []complex128{cmplx.Rect(2, degs[k]*math.Pi/180)}
	})

	wrapped, err := n.View(network.SDeg)
	require.NoError(t, err)
	unwrapped, err := n.View(network.SDegUnwrap)
	require.NoError(t, err)
	arcl, err := n.View(network.SArclUnwrap)
	require.NoError(t, err)

	w, _ := wrapped.Port(0, 0)
	u, _ := unwrapped.Port(0, 0)
	a, _ := arcl.Port(0, 0)
	for k, d := range degs {
		assert.InDelta(t, d, real(u[k]), 1e-9)
		assert.InDelta(t, 2*d*math.Pi/180, real(a[k]), 1e-9)
	}
	assert.InDelta(t, -170.0, real(w[1]), 1e-9)
}

func TestView_PassivityOfThruIsIdentity(t *testing.T) {
	freq := mustFreq(t, 2)
	thru := mustNetwork(t, "thru", freq, 2, func(int) []complex128 { return []complex128{0, 1, 1, 0} })
	p, err := thru.View(network.Passivity)
	require.NoError(t, err)
	m, _ := p.Matrix(1)
	assert.Equal(t, []complex128{1, 0, 0, 1}, m)
}

func TestElementWiseOperators(t *testing.T) {
	freq := mustFreq(t, 3)
	a := dut2(t, freq)
	b := fixture2(t, freq)

	sum, err := a.Add(b)
	require.NoError(t, err)
	diff, err := sum.Sub(b)
	require.NoError(t, err)
	requireParamNear(t, a.S(), diff.S(), 1e-12)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	quot, err := prod.Div(b)
	require.NoError(t, err)
	requireParamNear(t, a.S(), quot.S(), 1e-12)
	assert.Equal(t, "dut", quot.Name())

	other := dut2(t, mustFreq(t, 4))
	_, err = a.Add(other)
	require.ErrorIs(t, err, network.ErrFrequencyMismatch)

	one := mustNetwork(t, "one", freq, 1, func(int) []complex128 { return []complex128{1} })
	_, err = a.Mul(one)
	require.ErrorIs(t, err, network.ErrPortMismatch)
	_, err = a.Sub(nil)
	require.ErrorIs(t, err, network.ErrNilNetwork)
}

func TestCascadeWithInverseIsThru(t *testing.T) {
	freq := mustFreq(t, 3)
	f := fixture2(t, freq)
	inv, err := f.Inv()
	require.NoError(t, err)

	thru, err := f.Cascade(inv)
	require.NoError(t, err)
	for k := 0; k < freq.Len(); k++ {
		m, _ := thru.S().Matrix(k)
		assert.InDelta(t, 0, cmplx.Abs(m[0]), 1e-12)
		assert.InDelta(t, 0, cmplx.Abs(m[1]-1), 1e-12)
		assert.InDelta(t, 0, cmplx.Abs(m[2]-1), 1e-12)
		assert.InDelta(t, 0, cmplx.Abs(m[3]), 1e-12)
	}
}

func TestCascade_MatchedAttenuatorsMultiply(t *testing.T) {
	freq := mustFreq(t, 2)
	att := mustNetwork(t, "att", freq, 2, func(int) []complex128 { return []complex128{0, 0.5, 0.5, 0} })
	got, err := att.Cascade(att)
	require.NoError(t, err)
	requireParamNear(t, mustNetwork(t, "", freq, 2, func(int) []complex128 {
		return []complex128{0, 0.25, 0.25, 0}
	}).S(), got.S(), 1e-12)
}

func TestCascade_TerminatedByOnePort(t *testing.T) {
	freq := mustFreq(t, 2)
	line := mustNetwork(t, "line", freq, 2, func(int) []complex128 { return []complex128{0, -1i, -1i, 0} })
	short := mustNetwork(t, "short", freq, 1, func(int) []complex128 { return []complex128{-1} })

	got, err := line.Cascade(short)
	require.NoError(t, err)
	assert.Equal(t, 1, got.NumPorts())
	v, _ := got.S().At(0, 0, 0)
	// quarter-wave line turns a short into an open: (-i)(-i)(-1) = 1
	assert.InDelta(t, 0, cmplx.Abs(v-1), 1e-12)

	_, err = short.Cascade(line)
	require.ErrorIs(t, err, network.ErrNotTwoPort)
}

func TestCascade_SingularTransmission(t *testing.T) {
	freq := mustFreq(t, 1)
	open := mustNetwork(t, "open", freq, 2, func(int) []complex128 { return []complex128{1, 0, 0, 1} })
	_, err := open.Inv()
	require.ErrorIs(t, err, network.ErrSingular)
	_, err = open.Cascade(open)
	require.ErrorIs(t, err, network.ErrSingular)
}

func TestDeembedRecoversDUT(t *testing.T) {
	freq := mustFreq(t, 3)
	f := fixture2(t, freq)
	d := dut2(t, freq)

	measured, err := f.Cascade(d)
	require.NoError(t, err)
	got, err := measured.Deembed(f)
	require.NoError(t, err)
	requireParamNear(t, d.S(), got.S(), 1e-12)
	assert.Equal(t, measured.Name(), got.Name())
}

func TestInterpolate(t *testing.T) {
	freq := mustFreq(t, 3)
	d := dut2(t, freq)

	same, err := d.Interpolate(freq)
	require.NoError(t, err)
	requireParamNear(t, d.S(), same.S(), 1e-12)

	mid, err := frequency.New(1.5, 2.5, 2, frequency.GHz)
	require.NoError(t, err)
	got, err := d.Interpolate(mid)
	require.NoError(t, err)
	v, _ := got.S().At(0, 0, 0)
	assert.InDelta(t, 0.2, real(v), 1e-12)
	assert.InDelta(t, 0.05, imag(v), 1e-12)
	v, _ = got.S().At(1, 0, 0)
	assert.InDelta(t, 0.15, imag(v), 1e-12)
	assert.True(t, got.Frequency().Equal(mid))

	wide, err := frequency.New(0.5, 2, 4, frequency.GHz)
	require.NoError(t, err)
	_, err = d.Interpolate(wide)
	require.ErrorIs(t, err, network.ErrOutOfBand)
}

func TestTouchstoneRoundTrip(t *testing.T) {
	freq := mustFreq(t, 3)
	d := dut2(t, freq)

	var buf bytes.Buffer
	require.NoError(t, d.Write(&buf))
	got, err := network.Read(&buf, "dir/dut.s2p")
	require.NoError(t, err)

	assert.Equal(t, "dut", got.Name())
	assert.True(t, got.Frequency().Equal(freq))
	requireParamNear(t, d.S(), got.S(), 1e-15)

	_, err = network.Read(&buf, "dut.txt")
	require.Error(t, err)
}

func TestWriteFileAndLoadAll(t *testing.T) {
	dir := t.TempDir()
	freq := mustFreq(t, 3)

	p1, err := dut2(t, freq).WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dut.s2p"), p1)
	_, err = fixture2(t, freq).WriteFile(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o600))

	all, err := network.LoadAll(dir)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Contains(t, all, "dut")
	assert.Contains(t, all, "fixture")

	n, err := network.ReadFile(p1)
	require.NoError(t, err)
	requireParamNear(t, dut2(t, freq).S(), n.S(), 1e-15)
}

func TestPlotting(t *testing.T) {
	freq := mustFreq(t, 3)
	d := dut2(t, freq)

	p := plot.New()
	require.NoError(t, d.PlotSDB(p, 1, 0, network.LineOptions{}))
	assert.Equal(t, "Frequency (GHz)", p.X.Label.Text)
	assert.Equal(t, "Magnitude (dB)", p.Y.Label.Text)

	require.NoError(t, d.PlotAttribute(p, network.S, 0, 0, network.LineOptions{Label: "s11"}))
	require.ErrorIs(t, d.PlotAttribute(p, network.SMag, 2, 0, network.LineOptions{}), network.ErrPortIndex)

	smith := plot.New()
	require.NoError(t, d.PlotSmith(smith, 0, 0, network.LineOptions{}))
	assert.Equal(t, -1.1, smith.X.Min)
	assert.Equal(t, "dut S21", d.TraceLabel(1, 0))
}
