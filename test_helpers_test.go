// SPDX-License-Identifier: MIT
// Package mat2d_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities.
//   - Keep fixture data finite and well-formed to avoid numeric-policy
//     interference unless a test opts in explicitly.

package mat2d_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mat2d"
)

// floatTol is the absolute/fractional tolerance for approximate comparisons.
const floatTol = 1e-12

// mustNew builds a matrix from nested rows or aborts the test.
func mustNew(t testing.TB, rows [][]float64) *mat2d.Matrix {
	t.Helper()
	m, err := mat2d.New(rows)
	require.NoError(t, err)

	return m
}

// mustVector builds a 1×N row matrix or aborts the test.
func mustVector(t testing.TB, xs []float64) *mat2d.Matrix {
	t.Helper()
	m, err := mat2d.FromVector(xs)
	require.NoError(t, err)

	return m
}

// toRows converts a matrix back into nested rows for comparisons.
func toRows(t testing.TB, m *mat2d.Matrix) [][]float64 {
	t.Helper()
	require.NotNil(t, m)
	out := make([][]float64, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = row
	}

	return out
}

// requireMatrix asserts that got equals want up to floatTol, reporting a full
// structural diff on mismatch.
func requireMatrix(t testing.TB, want [][]float64, got *mat2d.Matrix) {
	t.Helper()
	if diff := cmp.Diff(want, toRows(t, got), cmpopts.EquateApprox(floatTol, floatTol)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// randRows produces deterministic pseudo-random n×n nested rows for benches.
func randRows(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64()
		}
	}

	return rows
}
