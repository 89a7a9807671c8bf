// SPDX-License-Identifier: MIT
// Package mat2d: broadcasting rule and shared element-wise kernels.
//
// Purpose:
//   - Pin down exactly which shape combinations element-wise operations
//     accept: for each axis the two extents must be equal, or one of them
//     must be 1; the broadcast result extent is the larger one.
//   - Provide the private kernels (addSub, hadamard) shared by the public
//     Add/Sub/Hadamard facades, so the tight loops exist once.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on the equal-shape fast path, i→j on the
//     broadcast path). No hidden allocations beyond the output matrix.
//   - Broadcast reads use zero strides: an axis of extent 1 contributes a
//     stride of 0, so the single value is re-read instead of materialized.

package mat2d

// broadcastShapes combines two 2-D shapes under the broadcasting rule.
// Per axis: extents equal → keep; one extent is 1 → take the other;
// anything else → ErrBroadcast.
// Complexity: O(1).
func broadcastShapes(ar, ac, br, bc int) (rows, cols int, err error) {
	rows, err = broadcastAxis(ar, br)
	if err != nil {
		return 0, 0, err
	}
	cols, err = broadcastAxis(ac, bc)
	if err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// broadcastAxis combines a single pair of axis extents.
func broadcastAxis(a, b int) (int, error) {
	switch {
	case a == b:
		return a, nil
	case a == 1:
		return b, nil
	case b == 1:
		return a, nil
	default:
		return 0, ErrBroadcast
	}
}

// broadcastStrides returns the effective (row, col) strides of m when it is
// read through a broadcast result of shape (rows, cols): a unit axis
// contributes stride 0 so its single value repeats along that axis.
// Complexity: O(1).
func (m *Matrix) broadcastStrides() (rowStride, colStride int) {
	rowStride, colStride = m.c, 1
	if m.r == 1 {
		rowStride = 0
	}
	if m.c == 1 {
		colStride = 0
	}

	return rowStride, colStride
}

// addSub computes out[i,j] = a[i,j] + sign*b[i,j] over the broadcast shape,
// for sign ∈ {+1, -1}. A fresh matrix is allocated; operands are not mutated.
// Internal helper for Add/Sub to share validation, allocation and loops.
//
// Implementation:
//   - Stage 1: validate non-nil operands, combine shapes via broadcastShapes.
//   - Stage 2: equal shapes → single flat loop; otherwise strided i→j loop
//     with zero strides on unit axes.
//
// Errors: ErrNilMatrix, ErrBroadcast.
// Complexity: Time O(R*C) of the result, Space O(R*C).
//
// Note: keeping sign as a float avoids an extra branch inside the hot loop.
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, mat2dErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, mat2dErrorf(opTag, err)
	}
	rows, cols, err := broadcastShapes(a.r, a.c, b.r, b.c)
	if err != nil {
		return nil, mat2dErrorf(opTag, err)
	}
	out := newMatrix(rows, cols)

	// Fast path: identical shapes → single flat loop over both buffers.
	if a.r == b.r && a.c == b.c {
		n := rows * cols
		for idx := 0; idx < n; idx++ { // deterministic 0..n-1
			out.data[idx] = a.data[idx] + sign*b.data[idx]
		}
		return out, nil
	}

	// Broadcast path: strided reads, zero stride repeats unit axes.
	ars, acs := a.broadcastStrides()
	brs, bcs := b.broadcastStrides()
	var i, j, k int // k is the flat write cursor into out.data
	for i = 0; i < rows; i++ {
		baseA := i * ars // row base offset into a
		baseB := i * brs // row base offset into b
		for j = 0; j < cols; j++ {
			out.data[k] = a.data[baseA+j*acs] + sign*b.data[baseB+j*bcs]
			k++
		}
	}

	return out, nil
}

// hadamard computes the element-wise product out[i,j] = a[i,j] * b[i,j] over
// the broadcast shape. Same structure and guarantees as addSub.
// Errors: ErrNilMatrix, ErrBroadcast.
// Complexity: Time O(R*C), Space O(R*C).
func hadamard(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, mat2dErrorf(opHadamard, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, mat2dErrorf(opHadamard, err)
	}
	rows, cols, err := broadcastShapes(a.r, a.c, b.r, b.c)
	if err != nil {
		return nil, mat2dErrorf(opHadamard, err)
	}
	out := newMatrix(rows, cols)

	// Fast path: identical shapes.
	if a.r == b.r && a.c == b.c {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			out.data[idx] = a.data[idx] * b.data[idx]
		}
		return out, nil
	}

	// Broadcast path.
	ars, acs := a.broadcastStrides()
	brs, bcs := b.broadcastStrides()
	var i, j, k int
	for i = 0; i < rows; i++ {
		baseA := i * ars
		baseB := i * brs
		for j = 0; j < cols; j++ {
			out.data[k] = a.data[baseA+j*acs] * b.data[baseB+j*bcs]
			k++
		}
	}

	return out, nil
}
