// SPDX-License-Identifier: MIT

// Package networkset: binary operators.
//
// Two explicit forms replace operand-type overloading:
//   - CombinePairwise:   result_k = member_k OP other.member_k (equal lengths).
//   - CombineWithScalar: result_k = member_k OP other (one fixed network).
//
// Combine dispatches between them for callers holding an untyped operand.

package networkset

import (
	"fmt"

	"github.com/katalvlaran/rfset/network"
)

// Operator enumerates the binary operators of a set.
type Operator int

const (
	// Pow cascades member ⊗ operand (network.Network.Cascade).
	Pow Operator = iota
	// FloorDiv de-embeds the operand from the member (network.Network.Deembed).
	FloorDiv
	// Mul multiplies s-parameters element-wise.
	Mul
	// Div divides s-parameters element-wise.
	Div
	// Add adds s-parameters element-wise.
	Add
	// Sub subtracts s-parameters element-wise.
	Sub

	operatorCount
)

// binaryFunc is a network method in method-expression form.
type binaryFunc func(a, b *network.Network) (*network.Network, error)

// operatorTable is built once; entries are never mutated.
var operatorTable = [operatorCount]struct {
	name string
	fn   binaryFunc
}{
	Pow:      {"pow", (*network.Network).Cascade},
	FloorDiv: {"floordiv", (*network.Network).Deembed},
	Mul:      {"mul", (*network.Network).Mul},
	Div:      {"div", (*network.Network).Div},
	Add:      {"add", (*network.Network).Add},
	Sub:      {"sub", (*network.Network).Sub},
}

// String returns the operator name ("pow", "floordiv", ...).
func (op Operator) String() string {
	if op < Pow || op >= operatorCount {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return operatorTable[op].name
}

func (op Operator) lookup() (binaryFunc, error) {
	if op < Pow || op >= operatorCount {
		return nil, fmt.Errorf("%v: %w", op, ErrUnsupportedOperator)
	}
	return operatorTable[op].fn, nil
}

// CombinePairwise pairs members by index: result_k = ns_k OP other_k.
// Errors:
//   - ErrUnsupportedOperator, ErrNilMember (nil other).
//   - ErrLengthMismatch when the lengths differ.
//   - the first network error, with the member index.
//
// Complexity: O(len·cost(OP)).
func (ns *NetworkSet) CombinePairwise(op Operator, other *NetworkSet) (*NetworkSet, error) {
	fn, err := op.lookup()
	if err != nil {
		return nil, fmt.Errorf("CombinePairwise: %w", err)
	}
	if other == nil {
		return nil, fmt.Errorf("CombinePairwise(%v): %w", op, ErrNilMember)
	}
	if other.Len() != ns.Len() {
		return nil, fmt.Errorf("CombinePairwise(%v): %d vs %d: %w", op, ns.Len(), other.Len(), ErrLengthMismatch)
	}

	out := make([]*network.Network, len(ns.members))
	for k, m := range ns.members {
		if out[k], err = fn(m, other.members[k]); err != nil {
			return nil, fmt.Errorf("CombinePairwise(%v): member %d: %w", op, k, err)
		}
	}
	return ns.derive(out)
}

// CombineWithScalar applies OP between every member and one fixed network:
// result_k = ns_k OP other.
// Errors: ErrUnsupportedOperator, ErrNilMember, the first network error.
func (ns *NetworkSet) CombineWithScalar(op Operator, other *network.Network) (*NetworkSet, error) {
	fn, err := op.lookup()
	if err != nil {
		return nil, fmt.Errorf("CombineWithScalar: %w", err)
	}
	if other == nil {
		return nil, fmt.Errorf("CombineWithScalar(%v): %w", op, ErrNilMember)
	}

	out := make([]*network.Network, len(ns.members))
	for k, m := range ns.members {
		if out[k], err = fn(m, other); err != nil {
			return nil, fmt.Errorf("CombineWithScalar(%v): member %d: %w", op, k, err)
		}
	}
	return ns.derive(out)
}

// Combine dispatches on the operand kind.
// Errors: ErrUnsupportedOperand for anything but *NetworkSet or *network.Network.
func (ns *NetworkSet) Combine(op Operator, operand any) (*NetworkSet, error) {
	switch v := operand.(type) {
	case *NetworkSet:
		return ns.CombinePairwise(op, v)
	case *network.Network:
		return ns.CombineWithScalar(op, v)
	default:
		return nil, fmt.Errorf("Combine(%v): %T: %w", op, operand, ErrUnsupportedOperand)
	}
}

// Add is Combine(Add, operand).
func (ns *NetworkSet) Add(operand any) (*NetworkSet, error) { return ns.Combine(Add, operand) }

// Sub is Combine(Sub, operand).
func (ns *NetworkSet) Sub(operand any) (*NetworkSet, error) { return ns.Combine(Sub, operand) }

// Mul is Combine(Mul, operand).
func (ns *NetworkSet) Mul(operand any) (*NetworkSet, error) { return ns.Combine(Mul, operand) }

// Div is Combine(Div, operand).
func (ns *NetworkSet) Div(operand any) (*NetworkSet, error) { return ns.Combine(Div, operand) }

// Cascade is Combine(Pow, operand).
func (ns *NetworkSet) Cascade(operand any) (*NetworkSet, error) { return ns.Combine(Pow, operand) }

// Deembed is Combine(FloorDiv, operand).
func (ns *NetworkSet) Deembed(operand any) (*NetworkSet, error) { return ns.Combine(FloorDiv, operand) }
