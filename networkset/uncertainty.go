// SPDX-License-Identifier: MIT

package networkset

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rfset/mathfn"
	"github.com/katalvlaran/rfset/network"
)

// UncertaintyTriplet returns (mean, mean − n·std, mean + n·std) of attr.
// Implementation:
//   - Stage 1: mean and std through Reduce (SDB goes through MeanSDB/StdSDB).
//   - Stage 2: scale std by nDeviations, then subtract/add it to the mean.
//
// Behavior highlights:
//   - All three results are copies of the first member carrying the set name.
//   - For complex attributes (S, Passivity) the bounds are complex too.
//
// Errors: those of Reduce and of the network operators.
func (ns *NetworkSet) UncertaintyTriplet(attr network.Attribute, nDeviations float64) (mean, lower, upper *network.Network, err error) {
	mean, err = ns.Reduce(Mean, attr)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("UncertaintyTriplet: %w", err)
	}
	spread, err := ns.scaledStd(attr, nDeviations)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("UncertaintyTriplet: %w", err)
	}
	if lower, err = mean.Sub(spread); err != nil {
		return nil, nil, nil, fmt.Errorf("UncertaintyTriplet: %w", err)
	}
	if upper, err = mean.Add(spread); err != nil {
		return nil, nil, nil, fmt.Errorf("UncertaintyTriplet: %w", err)
	}
	return mean, lower, upper, nil
}

// scaledStd returns std(attr) multiplied by n.
func (ns *NetworkSet) scaledStd(attr network.Attribute, n float64) (*network.Network, error) {
	std, err := ns.Reduce(Std, attr)
	if err != nil {
		return nil, err
	}
	k := complex(n, 0)
	if err := std.SetS(std.S().Map(func(v complex128) complex128 { return k * v })); err != nil {
		return nil, err
	}
	return std, nil
}

// PlotStyle selects how uncertainty bounds are drawn.
type PlotStyle int

const (
	// Shade fills the region between the bounds.
	Shade PlotStyle = iota
	// Bar draws error bars every MarkEvery samples.
	Bar
)

// String returns "shade" or "bar".
func (s PlotStyle) String() string {
	switch s {
	case Shade:
		return "shade"
	case Bar:
		return "bar"
	}
	return fmt.Sprintf("PlotStyle(%d)", int(s))
}

// UncertaintyOptions configures UncertaintyBounds and PlotUncertaintyBounds.
//   - M, N select the element S(M+1)(N+1) (0-based).
//   - PostProcess, when set, transforms the mean and both bounds (e.g.
//     mathfn.MagnitudeToDB); NaNs in the transformed lower bound are replaced
//     by its minimum finite value.
//   - Color nil ⇒ plotutil.Color(0) for the mean, same hue for the bounds.
//   - Label empty ⇒ the mean network's trace label.
type UncertaintyOptions struct {
	M, N        int
	Style       PlotStyle
	Deviations  float64
	Alpha       float64
	Color       color.Color
	MarkEvery   int
	PostProcess func(float64) float64
	Label       string
}

// DefaultUncertaintyOptions returns S11, Shade, 3σ, alpha 0.3, a bar every 20 samples.
func DefaultUncertaintyOptions() UncertaintyOptions {
	return UncertaintyOptions{
		Style:      Shade,
		Deviations: DefaultDeviations,
		Alpha:      DefaultAlpha,
		MarkEvery:  DefaultMarkEvery,
	}
}

// Bounds is the numeric content of an uncertainty plot for one element.
//   - Freq is in the display unit of the set's frequency axis.
//   - Mean, Lower, Upper are real parts, post-processed when requested.
//     After post-processing Lower is always finite when any of the three
//     series has a finite sample; Mean and Upper may keep ±Inf (e.g. dB of 0).
//   - Err is |n·std| (not post-processed), the half-height of Bar style bars.
type Bounds struct {
	Freq  []float64
	Mean  []float64
	Lower []float64
	Upper []float64
	Err   []float64
}

// UncertaintyBounds computes the triplet of attr restricted to (opts.M, opts.N).
// Behavior highlights:
//   - Phase attributes log a warning: wrapped phase statistics blow up at ±π,
//     and unwrapped members may still sit on different branches.
//   - Bar style combined with PostProcess logs a warning, because error bar
//     heights stay in untransformed units.
//
// Errors: ErrUnsupportedPlotStyle, network.ErrPortIndex, Reduce errors.
func (ns *NetworkSet) UncertaintyBounds(attr network.Attribute, opts UncertaintyOptions) (*Bounds, error) {
	if opts.Style != Shade && opts.Style != Bar {
		return nil, fmt.Errorf("UncertaintyBounds(%v): %w", opts.Style, ErrUnsupportedPlotStyle)
	}
	ns.warnPhase(attr)

	mean, err := ns.Reduce(Mean, attr)
	if err != nil {
		return nil, fmt.Errorf("UncertaintyBounds: %w", err)
	}
	spread, err := ns.scaledStd(attr, opts.Deviations)
	if err != nil {
		return nil, fmt.Errorf("UncertaintyBounds: %w", err)
	}
	mu, err := mean.S().Port(opts.M, opts.N)
	if err != nil {
		return nil, fmt.Errorf("UncertaintyBounds: %w", err)
	}
	sd, err := spread.S().Port(opts.M, opts.N)
	if err != nil {
		return nil, fmt.Errorf("UncertaintyBounds: %w", err)
	}

	center, width := mathfn.Real(mu), mathfn.Real(sd)
	b := &Bounds{
		Freq:  ns.Frequency().Scaled(),
		Mean:  center,
		Lower: mathfn.Sub(center, width),
		Upper: mathfn.Add(center, width),
		Err:   mathfn.Abs(sd),
	}

	if opts.PostProcess != nil {
		if opts.Style == Bar {
			ns.logger.WithFields(logrus.Fields{
				"set":   ns.name,
				"style": opts.Style.String(),
			}).Warn("post-processing does not apply to bar-style error heights")
		}
		b.Mean = mathfn.Apply(b.Mean, opts.PostProcess)
		b.Upper = mathfn.Apply(b.Upper, opts.PostProcess)
		b.Lower = mathfn.ReplaceNonFiniteWithMin(mathfn.Apply(b.Lower, opts.PostProcess), b.Mean, b.Upper)
	}
	return b, nil
}

// warnPhase logs the numerical caveat of phase statistics.
func (ns *NetworkSet) warnPhase(attr network.Attribute) {
	var msg string
	switch {
	case attr.IsWrappedPhase():
		msg = "statistics of wrapped phase blow up at ±π; prefer the unwrapped attribute"
	case attr == network.SDegUnwrap || attr == network.SRadUnwrap || attr == network.SArclUnwrap:
		msg = "members unwrapped independently may sit on different 2π branches"
	default:
		return
	}
	ns.logger.WithFields(ns.fields(attr)).Warn(msg)
}
