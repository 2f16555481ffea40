// SPDX-License-Identifier: MIT

package touchstone

import "github.com/katalvlaran/rfset/frequency"

// Format is the number pair format of a data record.
type Format int

const (
	// MA is magnitude / angle (degrees).
	MA Format = iota
	// DB is dB magnitude / angle (degrees).
	DB
	// RI is real / imaginary.
	RI
)

// String returns the option-line token.
func (f Format) String() string {
	switch f {
	case DB:
		return "DB"
	case RI:
		return "RI"
	default:
		return "MA"
	}
}

// Touchstone defaults applied when the option line omits a field.
const (
	DefaultUnit   = frequency.GHz
	DefaultFormat = MA
	DefaultZ0     = 50.0
)

// Data is the decoded content of one file.
//   - Freq holds frequencies in Hz.
//   - S[k] holds the Ports×Ports matrix at Freq[k] in row-major order.
type Data struct {
	Ports   int
	Unit    frequency.Unit // unit declared by the option line
	Format  Format         // format declared by the option line
	Z0      float64
	Freq    []float64
	S       [][]complex128
	Comment string // first comment block, without the leading '!'
}
