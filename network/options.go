// SPDX-License-Identifier: MIT

// Package network: functional options for New.
//   - DefaultZ0 is the single source of truth for the reference impedance.
//   - WithX constructors panic on nonsensical values (programmer error).

package network

import (
	"fmt"
	"math"
)

// DefaultZ0 is the reference impedance (ohms) applied when WithZ0 is not given.
const DefaultZ0 = 50.0

// Option configures a Network at construction time.
type Option func(*options)

type options struct {
	name string
	z0   float64
}

func defaultOptions() options {
	return options{z0: DefaultZ0}
}

// WithName sets the network name (used for file names and plot labels).
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithZ0 sets the reference impedance in ohms.
// Panics if z0 is not a positive finite number.
func WithZ0(z0 float64) Option {
	if !(z0 > 0) || math.IsInf(z0, 0) {
		panic(fmt.Sprintf("network: WithZ0(%g): impedance must be positive and finite", z0))
	}
	return func(o *options) { o.z0 = z0 }
}
