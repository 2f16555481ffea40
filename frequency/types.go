// SPDX-License-Identifier: MIT

package frequency

import (
	"fmt"
	"strings"
)

// Unit is the display unit of a frequency axis.
// Points are always stored in Hz; the unit only affects Scaled and labels.
type Unit int

const (
	// Hz is the base unit.
	Hz Unit = iota
	// KHz is 1e3 Hz.
	KHz
	// MHz is 1e6 Hz.
	MHz
	// GHz is 1e9 Hz.
	GHz
)

// unitTable maps every Unit to its multiplier and canonical label.
var unitTable = [...]struct {
	mult  float64
	label string
}{
	Hz:  {1, "Hz"},
	KHz: {1e3, "kHz"},
	MHz: {1e6, "MHz"},
	GHz: {1e9, "GHz"},
}

// Multiplier returns the number of Hz in one Unit.
// Unknown units behave as Hz.
func (u Unit) Multiplier() float64 {
	if u < Hz || u > GHz {
		return 1
	}
	return unitTable[u].mult
}

// String returns the conventional label ("Hz", "kHz", "MHz", "GHz").
func (u Unit) String() string {
	if u < Hz || u > GHz {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitTable[u].label
}

// ParseUnit converts a case-insensitive unit label into a Unit.
// Touchstone option lines use upper-case labels ("GHZ"), plots use mixed case.
func ParseUnit(s string) (Unit, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for u := Hz; u <= GHz; u++ {
		if strings.ToLower(unitTable[u].label) == want {
			return u, nil
		}
	}
	return Hz, fmt.Errorf("ParseUnit(%q): %w", s, ErrUnknownUnit)
}
