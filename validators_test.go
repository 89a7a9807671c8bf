// SPDX-License-Identifier: MIT
// Package mat2d_test: validator sentinel behavior.

package mat2d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mat2d"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, mat2d.ValidateNotNil(nil), mat2d.ErrNilMatrix)
	require.NoError(t, mat2d.ValidateNotNil(mustNew(t, [][]float64{{1}})))
}

func TestValidateSameShape(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})
	b := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	c := mustNew(t, [][]float64{{9, 9}})

	require.ErrorIs(t, mat2d.ValidateSameShape(a, b), mat2d.ErrDimensionMismatch)
	require.NoError(t, mat2d.ValidateSameShape(a, c))
}

func TestValidateMulCompatible(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}})     // 1×3
	b := mustNew(t, [][]float64{{1}, {2}, {3}}) // 3×1

	require.NoError(t, mat2d.ValidateMulCompatible(a, b))
	require.ErrorIs(t, mat2d.ValidateMulCompatible(a, a), mat2d.ErrDimensionMismatch)
	require.ErrorIs(t, mat2d.ValidateMulCompatible(nil, b), mat2d.ErrNilMatrix)
	require.ErrorIs(t, mat2d.ValidateMulCompatible(a, nil), mat2d.ErrNilMatrix)
}

func TestValidateBroadcastable(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	row := mustVector(t, []float64{5, 6})
	bad := mustNew(t, [][]float64{{1, 2, 3}})

	require.NoError(t, mat2d.ValidateBroadcastable(a, row))
	require.ErrorIs(t, mat2d.ValidateBroadcastable(a, bad), mat2d.ErrBroadcast)
}
