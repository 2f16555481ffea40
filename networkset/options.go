// SPDX-License-Identifier: MIT

// Package networkset: functional options and documented defaults.
//   - Option / options: construction-time configuration of a NetworkSet.
//   - WithX constructors panic on nonsensical values (programmer error).
//   - Plot routines take option structs built by DefaultXOptions().

package networkset

import (
	"github.com/sirupsen/logrus"
)

// Defaults (single source of truth).
const (
	// DefaultDeviations is the number of standard deviations of the uncertainty bounds.
	DefaultDeviations = 3.0

	// DefaultAlpha is the opacity of the shaded uncertainty region.
	DefaultAlpha = 0.3

	// DefaultMarkEvery is the stride between error bars in Bar style.
	DefaultMarkEvery = 20

	// DefaultSignatureScale multiplies the mean deviation to get the signature color range.
	DefaultSignatureScale = 3.0
)

// Option configures a NetworkSet.
type Option func(*options)

type options struct {
	name   string
	logger logrus.FieldLogger
}

func gatherOptions(opts []Option) options {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName labels the set; reductions rename their result to this name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger routes diagnostic warnings to l instead of the logrus standard logger.
// Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("networkset: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}
