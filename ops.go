// SPDX-License-Identifier: MIT
// Package mat2d: public arithmetic operations on Matrix.
//
// Purpose:
//   - Expose the operator surface: Add, Sub, Hadamard (element-wise product),
//     MatMul (true matrix product), Pow (element-wise power), Scale,
//     Transpose, AllClose.
//   - All operations are value-semantic: operands are never mutated and every
//     success returns a freshly allocated Matrix.
//
// Notes:
//   - Element-wise operations take an Operand (Scalar/Vector/Grid/Of) on the
//     right-hand side and resolve it before broadcasting.
//   - MatMul deliberately accepts only *Matrix: the product of anything else
//     is not defined on this surface, and the signature enforces it at
//     compile time.

package mat2d

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping; no magic strings.
const (
	opNew        = "New"
	opFromVector = "FromVector"
	opFromFlat   = "FromFlat"
	opFrom       = "From"
	opZeros      = "Zeros"
	opAt         = "At"
	opRow        = "Row"
	opAdd        = "Add"
	opSub        = "Sub"
	opHadamard   = "Hadamard"
	opMatMul     = "MatMul"
	opPow        = "Pow"
	opScale      = "Scale"
	opTranspose  = "Transpose"
	opAllClose   = "AllClose"
)

// mat2dErrorf wraps err with an operation tag, preserving the original error
// via %w so callers keep errors.Is/errors.As matching. Call only with a
// non-nil err.
func mat2dErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns the element-wise sum m + o over the broadcast shape.
// The operand may be a Scalar, a Vector (1×N row), a Grid, or another matrix
// via Of; shapes combine under the 2-D broadcasting rule.
// Errors: ErrNilMatrix, ErrBroadcast, plus operand resolution errors.
// Complexity: Time O(R*C) of the result, Space O(R*C).
func (m *Matrix) Add(o Operand) (*Matrix, error) {
	rhs, err := o.resolve()
	if err != nil {
		return nil, mat2dErrorf(opAdd, err)
	}

	return addSub(m, rhs, +1, opAdd)
}

// Sub returns the element-wise difference m - o over the broadcast shape.
// Same operand and broadcast rules as Add.
// Errors: ErrNilMatrix, ErrBroadcast, plus operand resolution errors.
// Complexity: Time O(R*C), Space O(R*C).
func (m *Matrix) Sub(o Operand) (*Matrix, error) {
	rhs, err := o.resolve()
	if err != nil {
		return nil, mat2dErrorf(opSub, err)
	}

	return addSub(m, rhs, -1, opSub)
}

// Hadamard returns the element-wise product m ⊙ o over the broadcast shape.
// This is NOT the matrix product; see MatMul for that.
// Errors: ErrNilMatrix, ErrBroadcast, plus operand resolution errors.
// Complexity: Time O(R*C), Space O(R*C).
func (m *Matrix) Hadamard(o Operand) (*Matrix, error) {
	rhs, err := o.resolve()
	if err != nil {
		return nil, mat2dErrorf(opHadamard, err)
	}

	return hadamard(m, rhs)
}

// MatMul performs standard matrix multiplication C = m × b (no aliasing).
//
// Implementation:
//   - Stage 1: validate both operands non-nil and m.Cols == b.Rows.
//   - Stage 2: i→k→j accumulation with row-major strides and zero-skip on
//     m[i,k].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
// Determinism: fixed i→k→j loop order.
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Matrix) MatMul(b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, mat2dErrorf(opMatMul, err)
	}
	out := newMatrix(m.r, b.c)

	// Row-major multiplication into out.data.
	// m.data layout: i*m.c + k; b.data layout: k*b.c + j.
	var i, j, k int
	var av float64
	for i = 0; i < m.r; i++ {
		rowA := i * m.c
		rowR := i * b.c
		for k = 0; k < m.c; k++ {
			av = m.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB := k * b.c
			for j = 0; j < b.c; j++ {
				out.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return out, nil
}

// Pow returns the element-wise power: out[i,j] = m[i,j] ** p.
// The exponent domain is NOT validated: negative bases with fractional
// exponents, zero bases with negative exponents, and similar cases yield the
// IEEE-754 result of math.Pow (NaN, ±Inf) unchanged.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) Pow(p float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, mat2dErrorf(opPow, err)
	}
	out := newMatrix(m.r, m.c)
	for idx, v := range m.data { // deterministic 0..n-1
		out.data[idx] = math.Pow(v, p)
	}

	return out, nil
}

// Scale returns alpha * m (element-wise scaling by a constant).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) Scale(alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, mat2dErrorf(opScale, err)
	}
	out := newMatrix(m.r, m.c)
	for idx, v := range m.data {
		out.data[idx] = alpha * v
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Errors: ErrNilMatrix.
// Determinism: fixed i→j copy order.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) Transpose() (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, mat2dErrorf(opTranspose, err)
	}
	out := newMatrix(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c // row base offset in the source
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true, nil) if every element satisfies the relation; (false, nil)
// otherwise. Negative tolerances are normalized to their absolute value;
// non-finite tolerances fail with ErrNaNInf.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Determinism: fixed flat scan with early exit on the first violation.
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, mat2dErrorf(opAllClose, validatorErrorf("AllClose", ErrNaNInf))
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateNotNil(a); err != nil {
		return false, mat2dErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, mat2dErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, mat2dErrorf(opAllClose, err)
	}

	n := a.r * a.c
	var diff, absb float64
	for idx := 0; idx < n; idx++ {
		diff = a.data[idx] - b.data[idx]
		if diff < 0 {
			diff = -diff // |a-b|
		}
		absb = b.data[idx]
		if absb < 0 {
			absb = -absb // |b|
		}
		if diff > atol+rtol*absb {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}
