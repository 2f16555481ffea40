// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/rfset/frequency"
)

// Network is one measured or simulated device response.
//   - freq is shared by reference; frequency axes are immutable.
//   - s has shape freq.Len()×ports×ports and is owned by the Network.
type Network struct {
	name string
	freq *frequency.Frequency
	s    *Param
	z0   float64
}

// New builds a Network from a frequency axis and s-parameters.
// The Param is cloned; later mutation by the caller has no effect.
// Errors:
//   - ErrShape when freq or s is nil, or s.Freqs() != freq.Len().
func New(freq *frequency.Frequency, s *Param, opts ...Option) (*Network, error) {
	if freq == nil || s == nil {
		return nil, fmt.Errorf("New: nil frequency or parameters: %w", ErrShape)
	}
	if s.Freqs() != freq.Len() {
		return nil, fmt.Errorf("New: %d parameter samples for %d frequencies: %w", s.Freqs(), freq.Len(), ErrShape)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Network{name: o.name, freq: freq, s: s.Clone(), z0: o.z0}, nil
}

// Name returns the network name (may be empty).
func (n *Network) Name() string { return n.name }

// Rename replaces the network name.
func (n *Network) Rename(name string) { n.name = name }

// Frequency returns the frequency axis.
func (n *Network) Frequency() *frequency.Frequency { return n.freq }

// NumPorts returns the number of ports.
func (n *Network) NumPorts() int { return n.s.Ports() }

// Z0 returns the reference impedance in ohms.
func (n *Network) Z0() float64 { return n.z0 }

// S returns a copy of the s-parameters.
func (n *Network) S() *Param { return n.s.Clone() }

// SetS replaces the s-parameters with a copy of s.
// Errors: ErrShape when s does not match the current shape.
func (n *Network) SetS(s *Param) error {
	if !n.s.SameShape(s) {
		return fmt.Errorf("SetS: %w", ErrShape)
	}
	n.s = s.Clone()
	return nil
}

// Copy returns a deep copy (the frequency axis is shared, it is immutable).
func (n *Network) Copy() *Network {
	return &Network{name: n.name, freq: n.freq, s: n.s.Clone(), z0: n.z0}
}

// String implements fmt.Stringer.
func (n *Network) String() string {
	return fmt.Sprintf("%d-Port Network: '%s', %s, z0=%g", n.NumPorts(), n.name, n.freq, n.z0)
}

// compatible verifies that other can be combined element-wise with n.
func (n *Network) compatible(op string, other *Network) error {
	if n == nil || other == nil {
		return fmt.Errorf("%s: %w", op, ErrNilNetwork)
	}
	if n.NumPorts() != other.NumPorts() {
		return fmt.Errorf("%s: %d vs %d ports: %w", op, n.NumPorts(), other.NumPorts(), ErrPortMismatch)
	}
	if !n.freq.Equal(other.freq) {
		return fmt.Errorf("%s: %w", op, ErrFrequencyMismatch)
	}
	return nil
}
