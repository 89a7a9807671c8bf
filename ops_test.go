// SPDX-License-Identifier: MIT
// Package mat2d_test: arithmetic operation coverage, including the fixed
// reference expression and the add/sub round-trip law.

package mat2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mat2d"
)

func TestAddSub_EqualShapes(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := mat2d.Sum(a, b)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := mat2d.Diff(sum, b)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{1, 2}, {3, 4}}, diff)
}

func TestAddSub_RoundTripLaw(t *testing.T) {
	// Subtract(Add(A,B), B) == A up to floating-point tolerance.
	a := mustNew(t, randRows(16, 1337))
	b := mustNew(t, randRows(16, 4242))

	sum, err := mat2d.Sum(a, b)
	require.NoError(t, err)
	back, err := mat2d.Diff(sum, b)
	require.NoError(t, err)

	ok, err := mat2d.AllClose(back, a, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBroadcast_RowColumnOuter(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	// 1×2 row against 2×2.
	row := mustVector(t, []float64{10, 20})
	got, err := a.Add(mat2d.Of(row))
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{11, 22}, {13, 24}}, got)

	// 2×1 column against 2×2.
	col := mustNew(t, [][]float64{{10}, {20}})
	got, err = a.Add(mat2d.Of(col))
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{11, 12}, {23, 24}}, got)

	// 2×1 against 1×2 broadcasts both axes (outer combination).
	got, err = col.Hadamard(mat2d.Of(row))
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{100, 200}, {200, 400}}, got)

	// Incompatible axes fail with the broadcast sentinel.
	bad := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = a.Add(mat2d.Of(bad))
	require.ErrorIs(t, err, mat2d.ErrBroadcast)
}

func TestHadamard_IsElementwise(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{2, 2}, {2, 2}})

	had, err := mat2d.HadamardProd(a, b)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{2, 4}, {6, 8}}, had)

	// Contrast with the true matrix product over the same operands.
	prod, err := mat2d.Product(a, b)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{6, 6}, {14, 14}}, prod)
}

func TestMatMul_InnerDimensions(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})      // 2×3
	b := mustNew(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3×2

	got, err := a.MatMul(b)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{58, 64}, {139, 154}}, got)

	// Inner mismatch: 2×3 by 2×2.
	c := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	_, err = a.MatMul(c)
	require.ErrorIs(t, err, mat2d.ErrDimensionMismatch)

	// Operand must be a usable matrix.
	_, err = a.MatMul(nil)
	require.ErrorIs(t, err, mat2d.ErrNilMatrix)
}

func TestPow_Elementwise(t *testing.T) {
	m := mustNew(t, [][]float64{{-4, -4}, {-2, -2}})
	sq, err := m.Pow(2)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{16, 16}, {4, 4}}, sq)

	// Exponent domain is not validated: IEEE results propagate unchanged.
	m = mustNew(t, [][]float64{{-1, 0}})
	got, err := m.Pow(0.5)
	require.NoError(t, err)
	v, err := got.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v)) // (-1)^0.5

	got, err = m.Pow(-1)
	require.NoError(t, err)
	v, err = got.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1)) // 0^-1
}

func TestScaleTranspose(t *testing.T) {
	m := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	sc, err := mat2d.ScaleBy(m, -0.5)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{-0.5, -1, -1.5}, {-2, -2.5, -3}}, sc)

	tr, err := mat2d.T(m)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)
}

func TestOperations_DoNotMutateOperands(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustVector(t, []float64{5, 6})

	_, err := a.Add(mat2d.Of(b))
	require.NoError(t, err)
	_, err = a.Sub(mat2d.Of(b))
	require.NoError(t, err)
	_, err = a.Hadamard(mat2d.Of(b))
	require.NoError(t, err)
	_, err = a.Pow(3)
	require.NoError(t, err)

	requireMatrix(t, [][]float64{{1, 2}, {3, 4}}, a)
	requireMatrix(t, [][]float64{{5, 6}}, b)
}

// TestFixedExpression pins the reference scenario:
// A=[[1,2],[3,4]], B=[5,6] → (A+B) @ (A-B)**2 == [[128,128],[168,168]].
func TestFixedExpression(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b, err := mat2d.From([]int{5, 6})
	require.NoError(t, err)

	sum, err := a.Add(mat2d.Of(b))
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{6, 8}, {8, 10}}, sum)

	diff, err := a.Sub(mat2d.Of(b))
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{-4, -4}, {-2, -2}}, diff)

	sq, err := diff.Pow(2)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{16, 16}, {4, 4}}, sq)

	result, err := sum.MatMul(sq)
	require.NoError(t, err)
	requireMatrix(t, [][]float64{{128, 128}, {168, 168}}, result)
}

// TestExpression_Deterministic re-evaluates the fixed expression and requires
// bit-identical output across runs: the kernels contain no hidden randomness.
func TestExpression_Deterministic(t *testing.T) {
	eval := func() []float64 {
		a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
		b := mustVector(t, []float64{5, 6})
		sum, err := a.Add(mat2d.Of(b))
		require.NoError(t, err)
		diff, err := a.Sub(mat2d.Of(b))
		require.NoError(t, err)
		sq, err := diff.Pow(2)
		require.NoError(t, err)
		res, err := sum.MatMul(sq)
		require.NoError(t, err)
		return res.Data()
	}
	first := eval()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, eval()) // exact equality, not approximate
	}
}

func TestAllClose_Validation(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})
	b := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	_, err := mat2d.AllClose(a, b, 0, 1e-9)
	require.ErrorIs(t, err, mat2d.ErrDimensionMismatch)

	_, err = mat2d.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, mat2d.ErrNaNInf)

	ok, err := mat2d.AllClose(a, a, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}
