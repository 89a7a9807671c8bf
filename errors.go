// SPDX-License-Identifier: MIT
// Package mat2d: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions;
// panics are reserved for programmer errors (invalid option parameters).

package mat2d

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mat2d: ..." for consistency and to allow
// easy grepping across logs. Sentinels are never returned bare from facades;
// call sites wrap with mat2dErrorf("Op", ErrX) so callers still match via
// errors.Is.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("mat2d: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive, or that input data is empty.
	ErrInvalidDimensions = errors.New("mat2d: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Row) return this, never panic.
	ErrOutOfRange = errors.New("mat2d: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// where exact agreement is required, e.g. MatMul where a.Cols != b.Rows,
	// or FromFlat where len(data) != rows*cols.
	ErrDimensionMismatch = errors.New("mat2d: dimension mismatch")

	// ErrBroadcast indicates that two shapes cannot be broadcast together
	// under the 2-D rule (per axis: extents equal, or one of them is 1).
	ErrBroadcast = errors.New("mat2d: operands could not be broadcast together")

	// ErrRankExceeded indicates that construction input has rank greater
	// than 2. Rank-1 input is accepted and reshaped to a single row.
	ErrRankExceeded = errors.New("mat2d: rank exceeds 2")

	// ErrUnsupportedInput indicates that From received a value that is neither
	// a supported slice kind nor a *Matrix.
	ErrUnsupportedInput = errors.New("mat2d: unsupported input type")

	// ErrRagged indicates that nested rows of the input have unequal lengths.
	ErrRagged = errors.New("mat2d: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the configured numeric policy (ingestion under
	// WithValidateNaNInf, or non-finite tolerances passed to AllClose).
	ErrNaNInf = errors.New("mat2d: NaN or Inf encountered")
)
