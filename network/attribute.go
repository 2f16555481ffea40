// SPDX-License-Identifier: MIT

// Package network: attribute views.
//
// An Attribute names one derived representation of the s-parameters. View
// computes it into a fresh Param; scalar views store their value in the real
// part with a zero imaginary part so every view shares one container type.

package network

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rfset/mathfn"
)

// Attribute enumerates the scalar and complex views of a Network.
type Attribute int

const (
	// S is the complex s-parameters themselves.
	S Attribute = iota
	// SRe is the real part.
	SRe
	// SIm is the imaginary part.
	SIm
	// SMag is the linear magnitude |s|.
	SMag
	// SDB is the magnitude in dB, 20·log10|s|.
	SDB
	// SDeg is the wrapped phase in degrees.
	SDeg
	// SDegUnwrap is the phase in degrees, unwrapped along frequency.
	SDegUnwrap
	// SRad is the wrapped phase in radians.
	SRad
	// SRadUnwrap is the phase in radians, unwrapped along frequency.
	SRadUnwrap
	// SArcl is the arc length angle·|s| using the wrapped angle.
	SArcl
	// SArclUnwrap is the arc length using the unwrapped angle.
	SArclUnwrap
	// Passivity is Sᴴ·S per frequency; a passive device has eigenvalues <= 1.
	Passivity

	attributeCount
)

var attributeTable = [attributeCount]struct {
	name  string
	label string
}{
	S:           {"s", "S-parameter"},
	SRe:         {"s_re", "Real Part"},
	SIm:         {"s_im", "Imag Part"},
	SMag:        {"s_mag", "Magnitude"},
	SDB:         {"s_db", "Magnitude (dB)"},
	SDeg:        {"s_deg", "Phase (deg)"},
	SDegUnwrap:  {"s_deg_unwrap", "Phase (deg)"},
	SRad:        {"s_rad", "Phase (rad)"},
	SRadUnwrap:  {"s_rad_unwrap", "Phase (rad)"},
	SArcl:       {"s_arcl", "Arc Length"},
	SArclUnwrap: {"s_arcl_unwrap", "Arc Length"},
	Passivity:   {"passivity", "Passivity"},
}

// Attributes returns every attribute in declaration order.
func Attributes() []Attribute {
	out := make([]Attribute, attributeCount)
	for a := range out {
		out[a] = Attribute(a)
	}
	return out
}

// Valid reports whether a is one of the declared attributes.
func (a Attribute) Valid() bool { return a >= S && a < attributeCount }

// String returns the snake-case attribute name, e.g. "s_mag".
func (a Attribute) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
	return attributeTable[a].name
}

// Label returns the y-axis label used when plotting the attribute.
func (a Attribute) Label() string {
	if !a.Valid() {
		return ""
	}
	return attributeTable[a].label
}

// IsWrappedPhase reports whether a carries a phase wrapped to (-π, π].
func (a Attribute) IsWrappedPhase() bool {
	return a == SDeg || a == SRad || a == SArcl
}

// ParseAttribute is the inverse of Attribute.String.
func ParseAttribute(name string) (Attribute, error) {
	for a := S; a < attributeCount; a++ {
		if attributeTable[a].name == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("ParseAttribute(%q): %w", name, ErrUnknownAttribute)
}

// View computes the attribute a over the full tensor.
// Implementation:
//   - Stage 1: element-wise views run one mathfn kernel over the flat data.
//   - Stage 2: unwrapped views go trace by trace, since unwrapping runs
//     along the frequency axis of each (i, j) pair.
//   - Stage 3: Passivity multiplies Sᴴ·S at each frequency.
//
// Errors: ErrUnknownAttribute.
// Complexity: O(F·N²) for element-wise views, O(F·N³) for Passivity.
func (n *Network) View(a Attribute) (*Param, error) {
	switch a {
	case S:
		return n.s.Clone(), nil
	case SRe:
		return n.realView(mathfn.Real(n.s.data)), nil
	case SIm:
		return n.realView(mathfn.Imag(n.s.data)), nil
	case SMag:
		return n.realView(mathfn.Abs(n.s.data)), nil
	case SDB:
		return n.realView(mathfn.Apply(mathfn.Abs(n.s.data), mathfn.MagnitudeToDB)), nil
	case SDeg:
		return n.realView(mathfn.AngleDeg(n.s.data)), nil
	case SRad:
		return n.realView(mathfn.AngleRad(n.s.data)), nil
	case SArcl:
		arcl := mathfn.AngleRad(n.s.data)
		floats.Mul(arcl, mathfn.Abs(n.s.data))
		return n.realView(arcl), nil
	case SDegUnwrap:
		return n.unwrapped(func(rad []float64, _ []complex128) []float64 {
			return mathfn.Apply(rad, mathfn.RadToDeg)
		}), nil
	case SRadUnwrap:
		return n.unwrapped(func(rad []float64, _ []complex128) []float64 { return rad }), nil
	case SArclUnwrap:
		return n.unwrapped(func(rad []float64, trace []complex128) []float64 {
			floats.Mul(rad, mathfn.Abs(trace))
			return rad
		}), nil
	case Passivity:
		return n.passivity(), nil
	}
	return nil, fmt.Errorf("View(%v): %w", a, ErrUnknownAttribute)
}

// realView packs a flat real series of the tensor's layout into a Param.
func (n *Network) realView(vals []float64) *Param {
	return &Param{f: n.s.f, n: n.s.n, data: mathfn.ToComplex(vals)}
}

// unwrapped unwraps the phase of every (i, j) trace along frequency and lets
// finish turn the unwrapped radians into the requested quantity.
func (n *Network) unwrapped(finish func(rad []float64, trace []complex128) []float64) *Param {
	f, ports := n.s.Freqs(), n.s.Ports()
	out := &Param{f: f, n: ports, data: make([]complex128, len(n.s.data))}
	stride := ports * ports
	trace := make([]complex128, f)
	for i := 0; i < ports; i++ {
		for j := 0; j < ports; j++ {
			for k := 0; k < f; k++ {
				trace[k] = n.s.data[k*stride+i*ports+j]
			}
			vals := finish(mathfn.Unwrap(mathfn.AngleRad(trace)), trace)
			for k := 0; k < f; k++ {
				out.data[k*stride+i*ports+j] = complex(vals[k], 0)
			}
		}
	}
	return out
}

// passivity computes P = Sᴴ·S, P[i][j] = Σ_l conj(S[l][i])·S[l][j].
func (n *Network) passivity() *Param {
	f, ports := n.s.Freqs(), n.s.Ports()
	out := &Param{f: f, n: ports, data: make([]complex128, len(n.s.data))}
	stride := ports * ports
	for k := 0; k < f; k++ {
		m := n.s.data[k*stride : (k+1)*stride]
		for i := 0; i < ports; i++ {
			for j := 0; j < ports; j++ {
				var acc complex128
				for l := 0; l < ports; l++ {
					acc += cmplx.Conj(m[l*ports+i]) * m[l*ports+j]
				}
				out.data[k*stride+i*ports+j] = acc
			}
		}
	}
	return out
}
