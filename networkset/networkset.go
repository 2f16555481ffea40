// SPDX-License-Identifier: MIT

package networkset

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rfset/frequency"
	"github.com/katalvlaran/rfset/network"
)

// NetworkSet is an immutable ensemble of networks sharing port count and
// frequency axis.
//   - members keep input order; the order carries no meaning beyond indexing.
//   - name is propagated to the results of reductions.
type NetworkSet struct {
	members []*network.Network
	name    string
	logger  logrus.FieldLogger
}

var _ fmt.Stringer = (*NetworkSet)(nil)

// New validates members and builds a set.
// Implementation:
//   - Stage 1: reject an empty collection and nil members.
//   - Stage 2: compare port count and frequency axis of every member against
//     the first one.
//
// Errors:
//   - ErrEmptySet, ErrPortCountMismatch, ErrFrequencyMismatch (ErrConfiguration).
//   - ErrNilMember (ErrType).
//
// Complexity: O(len(members)·F).
func New(members []*network.Network, opts ...Option) (*NetworkSet, error) {
	if err := validate(members); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	o := gatherOptions(opts)

	return &NetworkSet{
		members: append([]*network.Network(nil), members...),
		name:    o.name,
		logger:  o.logger,
	}, nil
}

// validate checks the structural invariants shared by New and FuncOnNetworks.
func validate(members []*network.Network) error {
	if len(members) == 0 {
		return ErrEmptySet
	}
	first := members[0]
	if first == nil {
		return fmt.Errorf("member 0: %w", ErrNilMember)
	}
	for i, m := range members[1:] {
		if m == nil {
			return fmt.Errorf("member %d: %w", i+1, ErrNilMember)
		}
		if m.NumPorts() != first.NumPorts() {
			return fmt.Errorf("member %d has %d ports, member 0 has %d: %w",
				i+1, m.NumPorts(), first.NumPorts(), ErrPortCountMismatch)
		}
		if !first.Frequency().Equal(m.Frequency()) {
			return fmt.Errorf("member %d (%s) vs member 0 (%s): %w",
				i+1, m.Frequency(), first.Frequency(), ErrFrequencyMismatch)
		}
	}
	return nil
}

// derive builds an unnamed set from operator or element-wise results,
// keeping the receiver's logger.
func (ns *NetworkSet) derive(members []*network.Network) (*NetworkSet, error) {
	return New(members, WithLogger(ns.logger))
}

// Len returns the number of members.
func (ns *NetworkSet) Len() int { return len(ns.members) }

// At returns member i (input order).
// Errors: ErrIndexOutOfRange.
func (ns *NetworkSet) At(i int) (*network.Network, error) {
	if i < 0 || i >= len(ns.members) {
		return nil, fmt.Errorf("At(%d): length %d: %w", i, len(ns.members), ErrIndexOutOfRange)
	}
	return ns.members[i], nil
}

// Members returns a copy of the member slice, in input order.
func (ns *NetworkSet) Members() []*network.Network {
	return append([]*network.Network(nil), ns.members...)
}

// Name returns the set label (may be empty).
func (ns *NetworkSet) Name() string { return ns.name }

// Frequency returns the shared frequency axis.
func (ns *NetworkSet) Frequency() *frequency.Frequency { return ns.members[0].Frequency() }

// NumPorts returns the shared port count.
func (ns *NetworkSet) NumPorts() int { return ns.members[0].NumPorts() }

// String implements fmt.Stringer.
func (ns *NetworkSet) String() string {
	return fmt.Sprintf("A NetworkSet of length %d", len(ns.members))
}
