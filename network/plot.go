// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// smithCirclePoints is the resolution of the unit circle drawn by PlotSmith.
const smithCirclePoints = 181

// LineOptions styles one trace.
//   - Label empty ⇒ "<name> Smn"; Color nil ⇒ plotutil.Color(0).
//   - Width zero keeps the gonum default line width.
type LineOptions struct {
	Label  string
	Color  color.Color
	Width  vg.Length
	Dashes []vg.Length
}

// TraceLabel returns the default legend label for element (m, k), e.g. "dut S21".
func (n *Network) TraceLabel(m, k int) string {
	label := fmt.Sprintf("S%d%d", m+1, k+1)
	if n.name != "" {
		label = n.name + " " + label
	}
	return label
}

// AddLine styles xys with opts, adds it to p and registers it in the legend.
// It is the shared drawing primitive of every Plot* method in this module.
func AddLine(p *plot.Plot, xys plotter.XYs, label string, opts LineOptions) (*plotter.Line, error) {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("AddLine: %w", err)
	}
	line.Color = opts.Color
	if line.Color == nil {
		line.Color = plotutil.Color(0)
	}
	if opts.Width > 0 {
		line.Width = opts.Width
	}
	line.Dashes = opts.Dashes
	p.Add(line)
	if label != "" {
		p.Legend.Add(label, line)
	}
	return line, nil
}

// PlotAttribute draws attribute attr of element (m, k) versus frequency.
// Complex-valued views (S, Passivity) are drawn as their magnitude.
// Errors: ErrUnknownAttribute, ErrPortIndex, or a plotter error.
func (n *Network) PlotAttribute(p *plot.Plot, attr Attribute, m, k int, opts LineOptions) error {
	view, err := n.View(attr)
	if err != nil {
		return fmt.Errorf("PlotAttribute: %w", err)
	}
	trace, err := view.Port(m, k)
	if err != nil {
		return fmt.Errorf("PlotAttribute: %w", err)
	}

	x := n.freq.Scaled()
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		if attr == S || attr == Passivity {
			xys[i].Y = math.Hypot(real(trace[i]), imag(trace[i]))
		} else {
			xys[i].Y = real(trace[i])
		}
	}

	label := opts.Label
	if label == "" {
		label = n.TraceLabel(m, k)
	}
	if _, err := AddLine(p, xys, label, opts); err != nil {
		return fmt.Errorf("PlotAttribute: %w", err)
	}
	p.X.Label.Text = fmt.Sprintf("Frequency (%s)", n.freq.Unit())
	p.Y.Label.Text = attr.Label()
	return nil
}

// PlotSDB draws |Smk| in dB versus frequency.
func (n *Network) PlotSDB(p *plot.Plot, m, k int, opts LineOptions) error {
	return n.PlotAttribute(p, SDB, m, k, opts)
}

// PlotSmith draws element (m, k) on the complex plane inside the unit circle.
// The unit circle is added once per call; axes are fixed to [-1.1, 1.1].
func (n *Network) PlotSmith(p *plot.Plot, m, k int, opts LineOptions) error {
	trace, err := n.s.Port(m, k)
	if err != nil {
		return fmt.Errorf("PlotSmith: %w", err)
	}

	circle := make(plotter.XYs, smithCirclePoints)
	for i := range circle {
		theta := 2 * math.Pi * float64(i) / float64(smithCirclePoints-1)
		circle[i].X, circle[i].Y = math.Cos(theta), math.Sin(theta)
	}
	if _, err := AddLine(p, circle, "", LineOptions{Color: color.Gray{Y: 128}}); err != nil {
		return fmt.Errorf("PlotSmith: %w", err)
	}

	xys := make(plotter.XYs, len(trace))
	for i, v := range trace {
		xys[i].X, xys[i].Y = real(v), imag(v)
	}
	label := opts.Label
	if label == "" {
		label = n.TraceLabel(m, k)
	}
	if _, err := AddLine(p, xys, label, opts); err != nil {
		return fmt.Errorf("PlotSmith: %w", err)
	}

	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1
	p.X.Label.Text = "Real"
	p.Y.Label.Text = "Imaginary"
	return nil
}
