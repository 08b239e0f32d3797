// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - One zero predicate shared by parsing, construction and every kernel.
package sparse

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance under which a value counts as zero.
	// 0 means exact comparison: only v == 0 is dropped.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf rejects NaN and ±Inf on ingestion (New, Parse).
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "sparse: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the zero tolerance: a value v is treated as zero iff |v| <= eps.
//
// Behavior highlights:
//   - Applies uniformly to New, Parse (explicit-zero check), Builder.Build
//     and therefore Add, Sub, Mul and Scale.
//   - Panics when eps is negative, NaN or Inf (programmer error).
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables rejection of NaN and ±Inf values (default): in
// New and Parse for inputs, in Builder.Build for results that overflowed.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf pass through New and Parse.
// Use with care: NaN never compares equal, so Equal on such matrices is false.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon reports the effective zero tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidatesNaNInf reports whether non-finite values are rejected.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }

// isZero is the single zero predicate of the package.
func (o Options) isZero(v float64) bool {
	if o.eps == 0 {
		return v == 0
	}

	return math.Abs(v) <= o.eps
}

// NewOptions resolves opts into an Options value, mainly for callers that
// want to inspect the effective policy (e.g. a CLI echoing its settings).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}
