// SPDX-License-Identifier: MIT
// Package mat2d: the Operand tagged union.
//
// Purpose:
//   - Make the right-hand side of element-wise operations explicit: instead of
//     dynamic dispatch on "is it a scalar? a slice? a matrix?", callers state
//     the kind up front via a small variant type.
//   - Keep resolution logic in one place so Add/Sub/Hadamard share identical
//     ingestion and error behavior.
//
// Resolution never copies matrix operands: kernels only read their inputs and
// always allocate fresh results, so a transient view is safe.

package mat2d

// operandKind discriminates the Operand union.
type operandKind uint8

const (
	operandScalar operandKind = iota // single float64, broadcasts everywhere
	operandVector                    // rank-1 slice, treated as a 1×N row
	operandGrid                      // rank-2 nested rows
	operandMatrix                    // existing *Matrix
)

// Operand is the right-hand side of an element-wise binary operation:
// exactly one of {Scalar | Vector | Grid | Of}. The zero value behaves as
// Scalar(0).
type Operand struct {
	kind   operandKind
	scalar float64
	vec    []float64
	grid   [][]float64
	mat    *Matrix
}

// Scalar wraps a single value; it broadcasts against any shape.
func Scalar(v float64) Operand {
	return Operand{kind: operandScalar, scalar: v}
}

// Vector wraps a rank-1 slice; it resolves to a 1×N row and then broadcasts
// row-wise like any other 1×N matrix.
func Vector(xs []float64) Operand {
	return Operand{kind: operandVector, vec: xs}
}

// Grid wraps rank-2 nested rows; it resolves exactly like New(rows).
func Grid(rows [][]float64) Operand {
	return Operand{kind: operandGrid, grid: rows}
}

// Of wraps an existing matrix without copying it.
func Of(m *Matrix) Operand {
	return Operand{kind: operandMatrix, mat: m}
}

// resolve turns the operand into a matrix view ready for broadcasting.
// Scalar resolves to a 1×1 matrix; Vector to a 1×N row; Grid through the
// rectangle validator; Of passes the wrapped matrix through a nil check.
// Errors mirror the corresponding constructor errors.
// Complexity: O(1) for Scalar/Of, O(n) ingestion for Vector/Grid.
func (o Operand) resolve() (*Matrix, error) {
	switch o.kind {
	case operandScalar:
		return &Matrix{r: 1, c: 1, data: []float64{o.scalar}}, nil
	case operandVector:
		return FromVector(o.vec)
	case operandGrid:
		return New(o.grid)
	case operandMatrix:
		if err := ValidateNotNil(o.mat); err != nil {
			return nil, err
		}
		return o.mat, nil
	default:
		// Unreachable: the constructors above cover every kind.
		return nil, validatorErrorf("Operand.resolve", ErrUnsupportedInput)
	}
}
