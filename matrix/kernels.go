// SPDX-License-Identifier: MIT
// Package matrix: element-wise and product kernels over *Dense.
// All functions perform strict fail-fast validation, never mutate their
// operands, and traverse in fixed orders for reproducibility.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opDot       = "Dot"
	opQuadForm  = "QuadraticForm"
	opLU        = "LU"
	opInverse   = "Inverse"
	opDet       = "Det"
	opCholesky  = "Cholesky"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1} into a fresh Dense.
// Internal helper for Add/Sub to share validation and the flat loop.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result and run one flat, deterministic pass.
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	n := a.r * a.c
	for idx := 0; idx < n; idx++ { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	n := m.r * m.c
	for idx := 0; idx < n; idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimensions (a.Cols == b.Rows).
//   - Stage 2: i→k→j loop with row-major strides; zero A[i,k] entries are
//     skipped to avoid useless multiplies.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: fixed i→k→j order.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Dot computes the inner product of two equal-length vectors.
//
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	if a == nil || b == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(a) != len(b) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	acc := ZeroSum
	for i := 0; i < len(a); i++ {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// QuadraticForm evaluates xᵀ·A·x for a square A and a vector x of
// matching length. This is the workhorse of the quadratic discriminant
// score and of the Mahalanobis distance.
//
// Implementation:
//   - Stage 1: validate A square non-nil, len(x) == n.
//   - Stage 2: single fused pass acc += x[i]*A[i,j]*x[j]; no temporary
//     vector is allocated.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Determinism: fixed i→j order.
// Complexity: Time O(n²), Space O(1).
func QuadraticForm(a *Dense, x []float64) (float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}

	n := a.r
	acc := ZeroSum
	var i, j, base int
	var xi float64
	for i = 0; i < n; i++ {
		xi = x[i]
		if xi == 0 {
			continue // whole row contributes nothing
		}
		base = i * n
		for j = 0; j < n; j++ {
			acc += xi * a.data[base+j] * x[j]
		}
	}

	return acc, nil
}
