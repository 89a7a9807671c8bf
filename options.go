// SPDX-License-Identifier: MIT

// Package mat2d: functional configuration for ingestion numeric policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: option fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The numeric policy applies at INGESTION only (constructors and Operand
//     resolution). Results of arithmetic are never filtered: Pow on negative
//     bases with fractional exponents produces IEEE NaN and that NaN flows
//     through unchanged, exactly as the underlying float64 semantics define.
//   - Replacement runs before validation, so combining WithReplaceNaNInf with
//     WithValidateNaNInf is legal: validation then observes only finite data.

package mat2d

import "math"

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion. Off by default: NaN/Inf data is accepted and flows through
	// arithmetic per IEEE-754.
	DefaultValidateNaNInf = false

	// DefaultReplaceNaNInf toggles non-finite replacement on ingestion.
	// Off by default; see WithReplaceNaNInf.
	DefaultReplaceNaNInf = false
)

// options carries the gathered ingestion policy. Internal by design.
type options struct {
	validateNaNInf bool    // reject NaN/±Inf with ErrNaNInf
	replaceNaNInf  bool    // substitute NaN/±Inf with replaceWith
	replaceWith    float64 // finite substitute value
}

// Option mutates the internal options state. Public APIs consume ...Option.
type Option func(*options)

// WithValidateNaNInf enables strict finite-value validation: any NaN or ±Inf
// encountered during ingestion fails the constructor with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithReplaceNaNInf substitutes every NaN or ±Inf encountered during
// ingestion with val. val must be finite; a non-finite substitute is a
// programmer error and panics.
func WithReplaceNaNInf(val float64) Option {
	// Validate eagerly: a non-finite substitute can never be intended.
	if math.IsNaN(val) || math.IsInf(val, 0) {
		panic("mat2d: WithReplaceNaNInf requires a finite value")
	}
	return func(o *options) {
		o.replaceNaNInf = true
		o.replaceWith = val
	}
}

// gatherOptions folds the defaults and the given Option list into a single
// options value. Deterministic: options apply in argument order.
func gatherOptions(list ...Option) options {
	o := options{
		validateNaNInf: DefaultValidateNaNInf,
		replaceNaNInf:  DefaultReplaceNaNInf,
	}
	for _, opt := range list {
		opt(&o)
	}

	return o
}

// apply enforces the gathered numeric policy on a freshly ingested flat
// buffer. Replacement runs first, then validation.
// Complexity: O(n) when any policy is active, O(1) otherwise.
func (o options) apply(data []float64) error {
	if o.replaceNaNInf {
		for i, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				data[i] = o.replaceWith
			}
		}
	}
	if o.validateNaNInf {
		if err := validateFinite(data); err != nil {
			return err
		}
	}

	return nil
}
