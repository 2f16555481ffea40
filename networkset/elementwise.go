// SPDX-License-Identifier: MIT

package networkset

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/network"
)

// ElementResult holds the outcome of ElementWise.
//   - Set is non-nil when every per-member result is a *network.Network.
//   - Values holds the raw per-member results otherwise (input order).
type ElementResult struct {
	Set    *NetworkSet
	Values []any
}

// ElementWise calls fn on every member in order and collects the results.
// The first error stops the walk and is returned with the member index.
// Behavior highlights:
//   - All results network-shaped ⇒ repackaged as a new (unnamed) NetworkSet,
//     validated like New.
//   - Any other result ⇒ plain list in Values.
func (ns *NetworkSet) ElementWise(fn func(*network.Network) (any, error)) (*ElementResult, error) {
	values := make([]any, len(ns.members))
	nets := make([]*network.Network, 0, len(ns.members))
	for i, m := range ns.members {
		v, err := fn(m)
		if err != nil {
			return nil, fmt.Errorf("ElementWise: member %d: %w", i, err)
		}
		values[i] = v
		if n, ok := v.(*network.Network); ok && n != nil {
			nets = append(nets, n)
		}
	}

	if len(nets) == len(values) {
		set, err := ns.derive(nets)
		if err != nil {
			return nil, fmt.Errorf("ElementWise: %w", err)
		}
		return &ElementResult{Set: set}, nil
	}
	return &ElementResult{Values: values}, nil
}

// networkWise runs fn on every member and requires a set back.
func (ns *NetworkSet) networkWise(op string, fn func(*network.Network) (*network.Network, error)) (*NetworkSet, error) {
	res, err := ns.ElementWise(func(n *network.Network) (any, error) { return fn(n) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res.Set, nil
}

// Interpolate resamples every member onto freq.
// Errors: network.ErrOutOfBand from the first failing member.
func (ns *NetworkSet) Interpolate(freq *frequency.Frequency) (*NetworkSet, error) {
	return ns.networkWise("Interpolate", func(n *network.Network) (*network.Network, error) {
		return n.Interpolate(freq)
	})
}

// Inv returns the set of inverse 2-ports.
func (ns *NetworkSet) Inv() (*NetworkSet, error) {
	return ns.networkWise("Inv", (*network.Network).Inv)
}

// WriteTouchstone writes every member into dir and returns the paths in order.
// Members sharing a name overwrite each other's file.
func (ns *NetworkSet) WriteTouchstone(dir string) ([]string, error) {
	res, err := ns.ElementWise(func(n *network.Network) (any, error) { return n.WriteFile(dir) })
	if err != nil {
		return nil, fmt.Errorf("WriteTouchstone: %w", err)
	}
	paths := make([]string, len(res.Values))
	for i, v := range res.Values {
		paths[i] = v.(string)
	}
	return paths, nil
}

// plotEach draws one trace per member; a nil opts.Color cycles plotutil colors.
func (ns *NetworkSet) plotEach(op string, opts network.LineOptions, draw func(*network.Network, network.LineOptions) error) error {
	_, err := ns.ElementWise(func(n *network.Network) (any, error) {
		o := opts
		if o.Color == nil {
			o.Color = plotutil.Color(ns.indexOf(n))
		}
		return nil, draw(n, o)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// indexOf returns the position of n among the members (identity comparison).
func (ns *NetworkSet) indexOf(n *network.Network) int {
	for i, m := range ns.members {
		if m == n {
			return i
		}
	}
	return 0
}

// PlotAttribute draws attribute attr of element (m, k) for every member.
func (ns *NetworkSet) PlotAttribute(p *plot.Plot, attr network.Attribute, m, k int, opts network.LineOptions) error {
	return ns.plotEach("PlotAttribute", opts, func(n *network.Network, o network.LineOptions) error {
		return n.PlotAttribute(p, attr, m, k, o)
	})
}

// PlotSDB draws |Smk| in dB for every member.
func (ns *NetworkSet) PlotSDB(p *plot.Plot, m, k int, opts network.LineOptions) error {
	return ns.plotEach("PlotSDB", opts, func(n *network.Network, o network.LineOptions) error {
		return n.PlotSDB(p, m, k, o)
	})
}

// PlotSmith draws element (m, k) of every member on the complex plane.
func (ns *NetworkSet) PlotSmith(p *plot.Plot, m, k int, opts network.LineOptions) error {
	return ns.plotEach("PlotSmith", opts, func(n *network.Network, o network.LineOptions) error {
		return n.PlotSmith(p, m, k, o)
	})
}
