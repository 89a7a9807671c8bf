// SPDX-License-Identifier: MIT
// Package mat2d: centralized validation checks.
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     wrap once more with the operation tag and callers still match via
//     errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package mat2d

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is usable: non-nil pointer with
// allocated backing storage.
// Returns ErrNilMatrix on violation.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil || m.data == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBroadcastable ensures the shapes of a and b combine under the 2-D
// broadcasting rule. Assumes non-nil inputs.
// Errors: ErrBroadcast.
// Complexity: O(1).
func ValidateBroadcastable(a, b *Matrix) error {
	if _, _, err := broadcastShapes(a.r, a.c, b.r, b.c); err != nil {
		return validatorErrorf("ValidateBroadcastable", err)
	}

	return nil
}

// validateRect checks that nested rows form a non-empty rectangle and returns
// its dimensions. Ragged rows fail with ErrRagged; an empty outer slice or an
// empty first row fails with ErrInvalidDimensions.
// Complexity: O(r) (lengths only; element values are not inspected).
func validateRect(rows [][]float64) (r, c int, err error) {
	// Reject empty outer input.
	if len(rows) == 0 {
		return 0, 0, validatorErrorf("validateRect", ErrInvalidDimensions)
	}
	r, c = len(rows), len(rows[0])
	// Reject empty rows.
	if c == 0 {
		return 0, 0, validatorErrorf("validateRect", ErrInvalidDimensions)
	}
	// Every row must match the first row's length.
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return 0, 0, validatorErrorf("validateRect", fmt.Errorf("row %d: %w", i, ErrRagged))
		}
	}

	return r, c, nil
}

// validateFinite rejects NaN and ±Inf entries per the numeric policy.
// Errors: ErrNaNInf.
// Complexity: O(n).
func validateFinite(data []float64) error {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("validateFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}
