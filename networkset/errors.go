// SPDX-License-Identifier: MIT
// Package networkset: sentinel error set.
// Category sentinels classify failures; every specific sentinel wraps exactly
// one category so errors.Is matches both the specific and the category value.

package networkset

import (
	"errors"
	"fmt"
)

// Categories.
var (
	// ErrConfiguration classifies structural mismatches between operands.
	ErrConfiguration = errors.New("networkset: configuration error")

	// ErrType classifies operands of an unsupported kind.
	ErrType = errors.New("networkset: type error")

	// ErrValue classifies unsupported option values.
	ErrValue = errors.New("networkset: value error")
)

// Configuration errors.
var (
	// ErrEmptySet is returned when a set would have no members.
	ErrEmptySet = fmt.Errorf("%w: empty set", ErrConfiguration)

	// ErrPortCountMismatch is returned when members differ in port count.
	ErrPortCountMismatch = fmt.Errorf("%w: inconsistent port count", ErrConfiguration)

	// ErrFrequencyMismatch is returned when members differ in frequency axis.
	ErrFrequencyMismatch = fmt.Errorf("%w: inconsistent frequency axis", ErrConfiguration)

	// ErrLengthMismatch is returned by pairwise operators on sets of different length.
	ErrLengthMismatch = fmt.Errorf("%w: sets must be of same length", ErrConfiguration)
)

// Type errors.
var (
	// ErrNilMember is returned when a member (or operand) is nil.
	ErrNilMember = fmt.Errorf("%w: nil network", ErrType)

	// ErrUnsupportedOperand is returned by Combine for operands that are
	// neither a *NetworkSet nor a *network.Network.
	ErrUnsupportedOperand = fmt.Errorf("%w: operand must be a NetworkSet or a Network", ErrType)
)

// Value errors.
var (
	// ErrUnsupportedPlotStyle is returned for a PlotStyle other than Shade or Bar.
	ErrUnsupportedPlotStyle = fmt.Errorf("%w: incorrect plot type", ErrValue)

	// ErrUnsupportedOperator is returned for an Operator outside the table.
	ErrUnsupportedOperator = fmt.Errorf("%w: unknown operator", ErrValue)

	// ErrUnsupportedReduction is returned for a Reduction outside the table.
	ErrUnsupportedReduction = fmt.Errorf("%w: unknown reduction", ErrValue)

	// ErrIndexOutOfRange is returned by At for an index outside [0, Len()).
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrValue)
)
