// SPDX-License-Identifier: MIT

// Package network: binary and unary operators.
//
// Element-wise:  Add, Sub, Mul, Div operate on the s-parameters value by value.
// Cascading:     Cascade connects port 2 of the receiver to port 1 of other
//                (2-port·2-port via T-parameters, or 2-port terminated by a 1-port).
//                Deembed removes other from the input side: other.Inv() ⊗ receiver.
//                Inv returns the network that cascades with the receiver to a thru.
//
// Every operator returns a new Network named after the receiver; operands
// are never mutated.

package network

import "fmt"

// elementWise applies fn to paired s-parameter values of n and other.
func (n *Network) elementWise(op string, other *Network, fn func(a, b complex128) complex128) (*Network, error) {
	if err := n.compatible(op, other); err != nil {
		return nil, err
	}
	out := n.Copy()
	for idx, b := range other.s.data {
		out.s.data[idx] = fn(out.s.data[idx], b)
	}
	return out, nil
}

// Add returns s_n + s_other element-wise.
// Errors: ErrNilNetwork, ErrPortMismatch, ErrFrequencyMismatch.
func (n *Network) Add(other *Network) (*Network, error) {
	return n.elementWise("Add", other, func(a, b complex128) complex128 { return a + b })
}

// Sub returns s_n - s_other element-wise.
func (n *Network) Sub(other *Network) (*Network, error) {
	return n.elementWise("Sub", other, func(a, b complex128) complex128 { return a - b })
}

// Mul returns s_n · s_other element-wise.
func (n *Network) Mul(other *Network) (*Network, error) {
	return n.elementWise("Mul", other, func(a, b complex128) complex128 { return a * b })
}

// Div returns s_n / s_other element-wise. Division by zero follows IEEE
// complex semantics (Inf/NaN values), it is not an error.
func (n *Network) Div(other *Network) (*Network, error) {
	return n.elementWise("Div", other, func(a, b complex128) complex128 { return a / b })
}

// Cascade connects port 2 of n to port 1 of other.
// Implementation:
//   - 2-port ⊗ 2-port: T = T_n · T_other per frequency, converted back to S.
//   - 2-port ⊗ 1-port: Γ = s11 + s12·s21·Γ_L / (1 - s22·Γ_L).
//
// Errors:
//   - ErrNilNetwork, ErrFrequencyMismatch.
//   - ErrNotTwoPort when n is not a 2-port or other is neither a 1- nor a 2-port.
//   - ErrSingular when s21 of an operand is zero at some frequency.
//
// Complexity: O(F).
func (n *Network) Cascade(other *Network) (*Network, error) {
	if n == nil || other == nil {
		return nil, fmt.Errorf("Cascade: %w", ErrNilNetwork)
	}
	if n.NumPorts() != 2 || (other.NumPorts() != 1 && other.NumPorts() != 2) {
		return nil, fmt.Errorf("Cascade: %d-port with %d-port: %w", n.NumPorts(), other.NumPorts(), ErrNotTwoPort)
	}
	if !n.freq.Equal(other.freq) {
		return nil, fmt.Errorf("Cascade: %w", ErrFrequencyMismatch)
	}

	if other.NumPorts() == 1 {
		out, err := NewParam(n.s.Freqs(), 1)
		if err != nil {
			return nil, err
		}
		for k := 0; k < n.s.Freqs(); k++ {
			s := n.s.data[k*4 : k*4+4]
			gl := other.s.data[k]
			out.data[k] = s[0] + s[1]*s[2]*gl/(1-s[3]*gl)
		}
		return &Network{name: n.name, freq: n.freq, s: out, z0: n.z0}, nil
	}

	out := n.Copy()
	for k := 0; k < n.s.Freqs(); k++ {
		ta, err := s2t(n.s.data[k*4 : k*4+4])
		if err != nil {
			return nil, fmt.Errorf("Cascade: freq %d: %w", k, err)
		}
		tb, err := s2t(other.s.data[k*4 : k*4+4])
		if err != nil {
			return nil, fmt.Errorf("Cascade: freq %d: %w", k, err)
		}
		s, err := t2s(matmul(ta, tb, 2))
		if err != nil {
			return nil, fmt.Errorf("Cascade: freq %d: %w", k, err)
		}
		copy(out.s.data[k*4:], s)
	}
	return out, nil
}

// Inv returns the inverse 2-port: n.Cascade(n.Inv()) is a thru.
// Errors: ErrNotTwoPort, ErrSingular.
func (n *Network) Inv() (*Network, error) {
	if n.NumPorts() != 2 {
		return nil, fmt.Errorf("Inv: %d-port: %w", n.NumPorts(), ErrNotTwoPort)
	}
	out := n.Copy()
	for k := 0; k < n.s.Freqs(); k++ {
		t, err := s2t(n.s.data[k*4 : k*4+4])
		if err != nil {
			return nil, fmt.Errorf("Inv: freq %d: %w", k, err)
		}
		ti, err := invert(t, 2)
		if err != nil {
			return nil, fmt.Errorf("Inv: freq %d: %w", k, err)
		}
		s, err := t2s(ti)
		if err != nil {
			return nil, fmt.Errorf("Inv: freq %d: %w", k, err)
		}
		copy(out.s.data[k*4:], s)
	}
	return out, nil
}

// Deembed removes the 2-port fixture from the input side of n:
// the result is fixture.Inv() cascaded with n. The result keeps n's name.
// Errors: as Inv and Cascade.
func (n *Network) Deembed(fixture *Network) (*Network, error) {
	if n == nil || fixture == nil {
		return nil, fmt.Errorf("Deembed: %w", ErrNilNetwork)
	}
	inv, err := fixture.Inv()
	if err != nil {
		return nil, fmt.Errorf("Deembed: %w", err)
	}
	out, err := inv.Cascade(n)
	if err != nil {
		return nil, fmt.Errorf("Deembed: %w", err)
	}
	out.name = n.name
	out.z0 = n.z0
	return out, nil
}
