// Package mat2d: the Matrix value type and its accessors.
// Matrix is a concrete, row-major container of float64 values, storing
// elements in a flat slice for performance and cache friendliness. Instances
// are immutable after construction: no exported method writes into the
// backing slice, so matrices may be shared freely across goroutines.

package mat2d

import "fmt"

// Matrix is a row-major r×c matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is not usable; obtain instances via the constructors.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c, never mutated
}

// newMatrix allocates a zeroed r×c matrix. Private: callers must have
// validated dimensions already (constructors and kernels do).
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.c
}

// Shape returns the (rows, cols) pair of the matrix.
// Never fails; a nil receiver reports (0, 0).
// Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) {
	if m == nil {
		return 0, 0
	}
	return m.r, m.c
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange if either index is outside valid bounds.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, mat2dErrorf(opAt, err)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, mat2dErrorf(opAt, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
// Returns ErrOutOfRange for an invalid row index.
// Complexity: O(c) time and memory for the copy.
func (m *Matrix) Row(i int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, mat2dErrorf(opRow, err)
	}
	if i < 0 || i >= m.r {
		return nil, mat2dErrorf(opRow, fmt.Errorf("(%d): %w", i, ErrOutOfRange))
	}
	// Copy the row slice so callers cannot reach the backing storage.
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Data returns a copy of the backing storage in row-major order.
// The copy keeps the matrix immutable; mutating the result has no effect
// on the matrix.
// Complexity: O(r*c).
func (m *Matrix) Data() []float64 {
	if m == nil {
		return nil
	}
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := newMatrix(m.r, m.c)
	copy(cp.data, m.data)

	return cp
}

// String implements fmt.Stringer for display and debugging.
// One bracketed row per line; values rendered with %g.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
