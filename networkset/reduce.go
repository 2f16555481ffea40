// SPDX-License-Identifier: MIT

// Package networkset: reductions across members.
//
// A reduction stacks one attribute view of every member along a new leading
// axis and collapses that axis value by value. The (Reduction × Attribute)
// table replaces name-pattern lookup: PropertyName(Mean, SMag) == "mean_s_mag".

package networkset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rfset/network"
)

// ReduceFunc collapses the values of one tensor element across members.
type ReduceFunc func(values []complex128) complex128

// Reduction enumerates the built-in reduction functions.
type Reduction int

const (
	// Mean is the complex arithmetic mean.
	Mean Reduction = iota
	// Std is the population standard deviation sqrt(mean(|x-mean|²)).
	Std

	reductionCount
)

// reductionTable is built once; entries are never mutated.
var reductionTable = [reductionCount]struct {
	name string
	fn   ReduceFunc
}{
	Mean: {"mean", complexMean},
	Std:  {"std", complexStd},
}

// String returns "mean" or "std".
func (r Reduction) String() string {
	if r < Mean || r >= reductionCount {
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
	return reductionTable[r].name
}

// Func returns the table entry for r, or nil when r is unknown.
func (r Reduction) Func() ReduceFunc {
	if r < Mean || r >= reductionCount {
		return nil
	}
	return reductionTable[r].fn
}

// splitParts separates real and imaginary parts for the gonum/stat kernels.
func splitParts(values []complex128) (re, im []float64) {
	re = make([]float64, len(values))
	im = make([]float64, len(values))
	for i, v := range values {
		re[i], im[i] = real(v), imag(v)
	}
	return re, im
}

// complexMean is mean(re) + i·mean(im).
func complexMean(values []complex128) complex128 {
	re, im := splitParts(values)
	return complex(stat.Mean(re, nil), stat.Mean(im, nil))
}

// complexStd is sqrt(popvar(re) + popvar(im)) = sqrt(mean(|x-mean|²)).
// The result is real; a single value has zero deviation.
func complexStd(values []complex128) complex128 {
	if len(values) < 2 {
		return 0
	}
	re, im := splitParts(values)
	return complex(math.Sqrt(stat.PopVariance(re, nil)+stat.PopVariance(im, nil)), 0)
}

// PropertyName returns the accessor name of a table entry, e.g. "mean_s_mag".
func PropertyName(r Reduction, attr network.Attribute) string {
	return r.String() + "_" + attr.String()
}

// Property is one (Reduction, Attribute) entry of the reduction table.
type Property struct {
	Reduction Reduction
	Attribute network.Attribute
}

// Name returns PropertyName(p.Reduction, p.Attribute).
func (p Property) Name() string { return PropertyName(p.Reduction, p.Attribute) }

// Properties lists every table entry, attribute-major, in declaration order.
func Properties() []Property {
	attrs := reducibleAttributes()
	out := make([]Property, 0, len(attrs)*int(reductionCount))
	for _, a := range attrs {
		for r := Mean; r < reductionCount; r++ {
			out = append(out, Property{Reduction: r, Attribute: a})
		}
	}
	return out
}

// reducibleAttributes is every attribute except SDB, whose statistics are
// derived from SMag (see MeanSDB).
func reducibleAttributes() []network.Attribute {
	all := network.Attributes()
	out := all[:0]
	for _, a := range all {
		if a != network.SDB {
			out = append(out, a)
		}
	}
	return out
}

// FuncOnNetworks applies fn to attribute attr stacked across members.
// Implementation:
//   - Stage 1: validate members (same rules as New).
//   - Stage 2: compute attr's view on every member.
//   - Stage 3: for each tensor element gather the member values and reduce.
//   - Stage 4: store the result in a copy of members[0]; rename when name != "".
//
// Behavior highlights:
//   - Scalar views come back in the real part of the result's s-parameters.
//
// Errors: ErrEmptySet, ErrNilMember, mismatch errors, network.ErrUnknownAttribute.
// Complexity: O(M·F·N²) time, O(M·F·N²) memory for M members.
func FuncOnNetworks(members []*network.Network, fn ReduceFunc, attr network.Attribute, name string) (*network.Network, error) {
	if fn == nil {
		return nil, fmt.Errorf("FuncOnNetworks: nil reduce func: %w", ErrUnsupportedReduction)
	}
	if err := validate(members); err != nil {
		return nil, fmt.Errorf("FuncOnNetworks: %w", err)
	}

	stack := make([][]complex128, len(members))
	for i, m := range members {
		view, err := m.View(attr)
		if err != nil {
			return nil, fmt.Errorf("FuncOnNetworks: member %d: %w", i, err)
		}
		stack[i] = view.Data()
	}

	first := members[0]
	reduced := make([]complex128, len(stack[0]))
	column := make([]complex128, len(members))
	for idx := range reduced {
		for i := range stack {
			column[i] = stack[i][idx]
		}
		reduced[idx] = fn(column)
	}

	s, err := network.ParamFromData(first.Frequency().Len(), first.NumPorts(), reduced)
	if err != nil {
		return nil, fmt.Errorf("FuncOnNetworks: %w", err)
	}
	out := first.Copy()
	if err := out.SetS(s); err != nil {
		return nil, fmt.Errorf("FuncOnNetworks: %w", err)
	}
	if name != "" {
		out.Rename(name)
	}
	return out, nil
}

// Reduce computes the table entry (r, attr) over the set's members.
// SDB is served by MeanSDB/StdSDB (magnitude first, dB afterwards).
// Errors: ErrUnsupportedReduction, network.ErrUnknownAttribute.
func (ns *NetworkSet) Reduce(r Reduction, attr network.Attribute) (*network.Network, error) {
	fn := r.Func()
	if fn == nil {
		return nil, fmt.Errorf("Reduce(%v): %w", r, ErrUnsupportedReduction)
	}
	if attr == network.SDB {
		return ns.reduceDB(r)
	}
	out, err := FuncOnNetworks(ns.members, fn, attr, ns.name)
	if err != nil {
		return nil, fmt.Errorf("Reduce(%s): %w", PropertyName(r, attr), err)
	}
	return out, nil
}

// reduceDB reduces SMag and converts the result to dB.
func (ns *NetworkSet) reduceDB(r Reduction) (*network.Network, error) {
	out, err := ns.Reduce(r, network.SMag)
	if err != nil {
		return nil, err
	}
	db, err := out.View(network.SDB)
	if err != nil {
		return nil, fmt.Errorf("Reduce(%s): %w", PropertyName(r, network.SDB), err)
	}
	if err := out.SetS(db); err != nil {
		return nil, fmt.Errorf("Reduce(%s): %w", PropertyName(r, network.SDB), err)
	}
	return out, nil
}

// SetWiseFunc applies an arbitrary reduction to attr over the set's members.
// The result is named after the set.
func (ns *NetworkSet) SetWiseFunc(fn ReduceFunc, attr network.Attribute) (*network.Network, error) {
	return FuncOnNetworks(ns.members, fn, attr, ns.name)
}
