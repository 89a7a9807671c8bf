// SPDX-License-Identifier: MIT
// Package mat2d — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing package-level entry points for the
//     common matrix×matrix operations.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     method on Matrix.
//
// Determinism & Policy:
//   - Facades never change loop orders or the numeric policy of the
//     underlying kernels; validation lives in the kernels.

package mat2d

// Sum is the matrix×matrix facade for Add: element-wise a + b.
// Complexity: O(R*C) of the broadcast result.
func Sum(a, b *Matrix) (*Matrix, error) { return a.Add(Of(b)) }

// Diff is the matrix×matrix facade for Sub: element-wise a − b.
// Complexity: O(R*C).
func Diff(a, b *Matrix) (*Matrix, error) { return a.Sub(Of(b)) }

// HadamardProd is the matrix×matrix facade for Hadamard: element-wise a ⊙ b.
// Complexity: O(R*C).
func HadamardProd(a, b *Matrix) (*Matrix, error) { return a.Hadamard(Of(b)) }

// Product is the facade for MatMul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b *Matrix) (*Matrix, error) { return a.MatMul(b) }

// PowOf is the facade for Pow: element-wise m ** p.
// Complexity: O(r*c).
func PowOf(m *Matrix, p float64) (*Matrix, error) { return m.Pow(p) }

// T is the facade for Transpose: returns mᵀ.
// Complexity: O(r*c).
func T(m *Matrix) (*Matrix, error) { return m.Transpose() }

// ScaleBy is the facade for Scale: alpha * m.
// Complexity: O(r*c).
func ScaleBy(m *Matrix, alpha float64) (*Matrix, error) { return m.Scale(alpha) }
