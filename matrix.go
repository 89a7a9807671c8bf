// SPDX-License-Identifier: MIT
// Package mat2d: constructors.
//
// Purpose:
//   - Ingest caller data into fresh, immutable Matrix values.
//   - Normalize rank-1 input into a single 1×N row.
//   - Enforce the rank contract: rank-3 (or deeper) input is rejected with
//     ErrRankExceeded, unsupported dynamic types with ErrUnsupportedInput.
//
// All constructors copy their input; the resulting Matrix never aliases
// caller-owned slices.

package mat2d

// New creates a matrix from nested rows.
// Stage 1 (Validate): rows must form a non-empty rectangle.
// Stage 2 (Ingest): copy row by row into flat row-major storage, then apply
// the numeric policy (see options.go).
// Errors: ErrInvalidDimensions, ErrRagged, ErrNaNInf (under policy).
// Complexity: O(r*c) time and memory.
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	r, c, err := validateRect(rows)
	if err != nil {
		return nil, mat2dErrorf(opNew, err)
	}
	m := newMatrix(r, c)
	for i := 0; i < r; i++ { // copy each row into the flat buffer
		copy(m.data[i*c:(i+1)*c], rows[i])
	}
	if err = gatherOptions(opts...).apply(m.data); err != nil {
		return nil, mat2dErrorf(opNew, err)
	}

	return m, nil
}

// FromVector creates a single-row 1×N matrix from a rank-1 slice.
// This is the canonical reshape of one-dimensional input: a length-N vector
// always becomes shape (1, N).
// Errors: ErrInvalidDimensions (empty input), ErrNaNInf (under policy).
// Complexity: O(n).
func FromVector(xs []float64, opts ...Option) (*Matrix, error) {
	if len(xs) == 0 {
		return nil, mat2dErrorf(opFromVector, validatorErrorf("FromVector", ErrInvalidDimensions))
	}
	m := newMatrix(1, len(xs))
	copy(m.data, xs)
	if err := gatherOptions(opts...).apply(m.data); err != nil {
		return nil, mat2dErrorf(opFromVector, err)
	}

	return m, nil
}

// FromFlat creates an r×c matrix from a flat row-major slice.
// Errors: ErrInvalidDimensions (non-positive dims), ErrDimensionMismatch
// (len(data) != rows*cols), ErrNaNInf (under policy).
// Complexity: O(r*c).
func FromFlat(data []float64, rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, mat2dErrorf(opFromFlat, validatorErrorf("FromFlat", ErrInvalidDimensions))
	}
	if len(data) != rows*cols {
		return nil, mat2dErrorf(opFromFlat, validatorErrorf("FromFlat", ErrDimensionMismatch))
	}
	m := newMatrix(rows, cols)
	copy(m.data, data)
	if err := gatherOptions(opts...).apply(m.data); err != nil {
		return nil, mat2dErrorf(opFromFlat, err)
	}

	return m, nil
}

// From ingests a dynamically typed value: the Construct(data) contract.
// Accepted kinds:
//   - []float64, []int          → 1×N row (rank-1 reshape)
//   - [][]float64, [][]int      → r×c matrix (rank-2, shape preserved)
//   - *Matrix                   → deep copy (policy re-applied)
//
// Rejected kinds:
//   - [][][]float64, [][][]int  → ErrRankExceeded (rank > 2)
//   - anything else             → ErrUnsupportedInput
//
// Complexity: O(n) over the ingested elements.
func From(data any, opts ...Option) (*Matrix, error) {
	switch v := data.(type) {
	case []float64:
		return FromVector(v, opts...)
	case []int:
		return FromVector(intsToFloats(v), opts...)
	case [][]float64:
		return New(v, opts...)
	case [][]int:
		rows := make([][]float64, len(v))
		for i, row := range v {
			rows[i] = intsToFloats(row)
		}
		return New(rows, opts...)
	case *Matrix:
		if err := ValidateNotNil(v); err != nil {
			return nil, mat2dErrorf(opFrom, err)
		}
		cp := v.Clone()
		if err := gatherOptions(opts...).apply(cp.data); err != nil {
			return nil, mat2dErrorf(opFrom, err)
		}
		return cp, nil
	case [][][]float64, [][][]int:
		return nil, mat2dErrorf(opFrom, validatorErrorf("From", ErrRankExceeded))
	default:
		return nil, mat2dErrorf(opFrom, validatorErrorf("From", ErrUnsupportedInput))
	}
}

// intsToFloats widens an int slice into float64 for ingestion.
func intsToFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}

	return out
}

// Zeros returns a new zero-initialized rows×cols matrix.
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c) zeroing by the runtime.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, mat2dErrorf(opZeros, validatorErrorf("Zeros", ErrInvalidDimensions))
	}

	return newMatrix(rows, cols), nil
}

// Full returns a new rows×cols matrix with every entry set to v.
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c).
func Full(rows, cols int, v float64) (*Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data { // single flat fill, deterministic 0..n-1
		m.data[i] = v
	}

	return m, nil
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Errors: ErrInvalidDimensions.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Matrix, error) {
	m, err := Zeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging containers.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, mat2dErrorf(opZeros, err)
	}

	return newMatrix(m.r, m.c), nil
}
