// SPDX-License-Identifier: MIT

package networkset

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/katalvlaran/rfset/mathfn"
	"github.com/katalvlaran/rfset/network"
)

// errPoints feeds plotter.NewYErrorBars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// PlotUncertaintyBounds draws the mean of attr for element (opts.M, opts.N)
// with its ±opts.Deviations·std envelope.
// Implementation:
//   - Stage 1: UncertaintyBounds (validation, warnings, post-processing).
//   - Stage 2: Shade ⇒ translucent polygon between the bounds;
//     Bar ⇒ error bars of half-height Err every MarkEvery samples.
//   - Stage 3: mean line on top, axis labels.
//
// Samples that stay non-finite after post-processing are skipped, so a
// zero magnitude under a dB transform leaves a gap instead of failing.
//
// Errors: ErrUnsupportedPlotStyle, UncertaintyBounds errors, plotter errors.
func (ns *NetworkSet) PlotUncertaintyBounds(p *plot.Plot, attr network.Attribute, opts UncertaintyOptions) error {
	b, err := ns.UncertaintyBounds(attr, opts)
	if err != nil {
		return fmt.Errorf("PlotUncertaintyBounds: %w", err)
	}

	col := opts.Color
	if col == nil {
		col = plotutil.Color(0)
	}

	switch opts.Style {
	case Shade:
		region := make(plotter.XYs, 0, 2*len(b.Freq))
		for k := range b.Freq {
			if drawable(b.Upper[k], b.Lower[k]) {
				region = append(region, plotter.XY{X: b.Freq[k], Y: b.Upper[k]})
			}
		}
		for k := len(b.Freq) - 1; k >= 0; k-- {
			if drawable(b.Upper[k], b.Lower[k]) {
				region = append(region, plotter.XY{X: b.Freq[k], Y: b.Lower[k]})
			}
		}
		if len(region) > 0 {
			poly, err := plotter.NewPolygon(region)
			if err != nil {
				return fmt.Errorf("PlotUncertaintyBounds: %w", err)
			}
			poly.Color = withAlpha(col, opts.Alpha)
			poly.LineStyle.Width = 0
			p.Add(poly)
		}
	case Bar:
		x := mathfn.Stride(b.Freq, opts.MarkEvery)
		y := mathfn.Stride(b.Mean, opts.MarkEvery)
		e := mathfn.Stride(b.Err, opts.MarkEvery)
		var pts errPoints
		for i := range x {
			if !drawable(y[i], e[i]) {
				continue
			}
			pts.XYs = append(pts.XYs, plotter.XY{X: x[i], Y: y[i]})
			pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{e[i], e[i]})
		}
		if len(pts.XYs) > 0 {
			bars, err := plotter.NewYErrorBars(pts)
			if err != nil {
				return fmt.Errorf("PlotUncertaintyBounds: %w", err)
			}
			bars.LineStyle.Color = col
			p.Add(bars)
		}
	}

	label := opts.Label
	if label == "" {
		label = ns.traceLabel(opts.M, opts.N)
	}
	line := make(plotter.XYs, 0, len(b.Freq))
	for k := range b.Freq {
		if drawable(b.Mean[k]) {
			line = append(line, plotter.XY{X: b.Freq[k], Y: b.Mean[k]})
		}
	}
	if len(line) > 0 {
		if _, err := network.AddLine(p, line, label, network.LineOptions{Color: col}); err != nil {
			return fmt.Errorf("PlotUncertaintyBounds: %w", err)
		}
	}

	p.X.Label.Text = fmt.Sprintf("Frequency (%s)", ns.Frequency().Unit())
	p.Y.Label.Text = attr.Label()
	return nil
}

// drawable reports whether every value can be placed on a plot axis.
// Non-finite samples (dB of a zero magnitude) are left out as gaps.
func drawable(vs ...float64) bool {
	for _, v := range vs {
		if !mathfn.IsFinite(v) {
			return false
		}
	}
	return true
}

// traceLabel is "<set name> Smn", or "Smn" for an unnamed set.
func (ns *NetworkSet) traceLabel(m, n int) string {
	label := fmt.Sprintf("S%d%d", m+1, n+1)
	if ns.name != "" {
		label = ns.name + " " + label
	}
	return label
}

// withAlpha returns c with opacity a in [0, 1].
func withAlpha(c color.Color, a float64) color.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
	return nc
}

// PlotUncertaintyBoundsSDB is PlotUncertaintyBounds on SMag with the
// MagnitudeToDB transform: statistics in magnitude space, display in dB.
func (ns *NetworkSet) PlotUncertaintyBoundsSDB(p *plot.Plot, opts UncertaintyOptions) error {
	opts.PostProcess = mathfn.MagnitudeToDB
	if err := ns.PlotUncertaintyBounds(p, network.SMag, opts); err != nil {
		return err
	}
	p.Y.Label.Text = network.SDB.Label()
	return nil
}

// PlotUncertaintyBoundsSDBList builds a set from members and draws its dB
// uncertainty. setOpts configure the temporary set (name, logger).
func PlotUncertaintyBoundsSDBList(p *plot.Plot, members []*network.Network, opts UncertaintyOptions, setOpts ...Option) error {
	ns, err := New(members, setOpts...)
	if err != nil {
		return fmt.Errorf("PlotUncertaintyBoundsSDBList: %w", err)
	}
	return ns.PlotUncertaintyBoundsSDB(p, opts)
}

// decompositionCurves is the fixed order of PlotUncertaintyDecomposition.
var decompositionCurves = [...]struct {
	label string
	attr  network.Attribute
}{
	{"Distance", network.S},
	{"Real", network.SRe},
	{"Imaginary", network.SIm},
	{"Magnitude", network.SMag},
	{"Arc-length", network.SArcl},
}

// PlotUncertaintyDecomposition draws the standard deviation of element (m, n)
// computed on five representations, each shown as a magnitude, so their
// contributions to the total uncertainty can be compared.
// A named set titles the plot.
func (ns *NetworkSet) PlotUncertaintyDecomposition(p *plot.Plot, m, n int) error {
	if ns.name != "" {
		p.Title.Text = fmt.Sprintf("Uncertainty Decomposition: %s S%d%d", ns.name, m+1, n+1)
	}
	for i, c := range decompositionCurves {
		std, err := ns.Reduce(Std, c.attr)
		if err != nil {
			return fmt.Errorf("PlotUncertaintyDecomposition: %w", err)
		}
		opts := network.LineOptions{Label: c.label, Color: plotutil.Color(i)}
		if err := std.PlotAttribute(p, network.SMag, m, n, opts); err != nil {
			return fmt.Errorf("PlotUncertaintyDecomposition: %w", err)
		}
	}
	return nil
}
