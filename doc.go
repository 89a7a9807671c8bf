// Package mat2d provides an immutable, row-major 2-D matrix of float64 values
// with NumPy-flavored ergonomics: element-wise Add/Sub/Hadamard with
// broadcasting, true matrix multiplication, element-wise Power, and strict
// fail-fast validation through a unified sentinel error set.
//
// The package offers:
//
//   - Matrix — a value type over a flat row-major float64 buffer; every
//     operation returns a freshly allocated result and never mutates its
//     operands.
//   - Operand — a small tagged union {Scalar | Vector | Grid | Of} that makes
//     the right-hand side of element-wise operations explicit instead of
//     relying on dynamic dispatch.
//   - Broadcasting — the 2-D rule: for each axis the two extents must be equal
//     or one of them must be 1; the result extent is the larger one.
//   - Constructors — New (nested rows), FromVector (rank-1 input becomes a
//     single 1×N row), FromFlat, From (dynamic ingestion with rank checks),
//     plus Zeros/Full/Identity/ZerosLike helpers.
//
// All failures surface synchronously as wrapped sentinel errors (match with
// errors.Is); nothing is retried, recovered, or silently clamped unless an
// explicit ingestion option (WithReplaceNaNInf) asks for it.
//
// Matrices are safe for concurrent readers: once constructed they are never
// written again.
//
// See the examples in this package and the runnable programs under examples/.
package mat2d
