// SPDX-License-Identifier: MIT
// Package network: sentinel error set.
// Every message is prefixed with "network:"; call sites wrap with an operation
// tag via fmt.Errorf("Op: %w", ErrX) and callers match with errors.Is.

package network

import "errors"

var (
	// ErrShape is returned for non-positive or inconsistent tensor dimensions.
	ErrShape = errors.New("network: invalid shape")

	// ErrPortIndex is returned when a frequency or port index is out of range.
	ErrPortIndex = errors.New("network: index out of range")

	// ErrFrequencyMismatch is returned when two operands have different frequency axes.
	ErrFrequencyMismatch = errors.New("network: frequency axes differ")

	// ErrPortMismatch is returned when two operands have different port counts.
	ErrPortMismatch = errors.New("network: port counts differ")

	// ErrNotTwoPort is returned by cascading operations on unsupported port counts.
	ErrNotTwoPort = errors.New("network: operation requires a 2-port")

	// ErrSingular is returned when a matrix to invert has a zero pivot
	// (e.g. S21 == 0 when converting to T-parameters).
	ErrSingular = errors.New("network: singular matrix")

	// ErrOutOfBand is returned when interpolation targets lie outside the band.
	ErrOutOfBand = errors.New("network: frequency outside of band")

	// ErrUnknownAttribute is returned for an Attribute outside the enumeration.
	ErrUnknownAttribute = errors.New("network: unknown attribute")

	// ErrNilNetwork is returned when a nil *Network operand is used.
	ErrNilNetwork = errors.New("network: nil network")
)
