// SPDX-License-Identifier: MIT
// Package matrix: LU / Cholesky decompositions and the Inverse and Det
// facades built on them. No pivoting anywhere: deterministic output is
// worth more to this module than last-digit numerical robustness, and
// every covariance matrix we care about is SPD and well-conditioned.

package matrix

import "math"

// ZeroPivot is the sentinel value for detecting a zero pivot in LU/Inverse.
const ZeroPivot = 0.0

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: validate m non-nil and square; allocate L, U; diag(L)=1.
//   - Stage 2: for i=0..n-1 build row i of U, guard the pivot, then build
//     column i of L, all in fixed order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (U[i,i]==0 during
// factorization).
// Determinism: fixed i→{j≥i} for U, then {j>i}→i for L.
// Complexity: Time O(n³), Space O(n²).
func LU(m *Dense) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.r
	l, err := Identity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var (
		i, j, k      int
		sum, pivot   float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		// Row i of U for j >= i.
		baseI = i * n
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = m.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection).
		pivot = u.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Column i of L for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse computes A⁻¹ via Doolittle LU and n triangular solves.
// Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: LU(m) → L (unit lower), U (upper).
//   - Stage 2: for each canonical basis column e_col, forward-solve
//     L*y = e_col, back-solve U*x = y, write x into column col.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Determinism: fixed col↑, forward i↑, backward i↓ orders.
// Complexity: Time O(n³), Space O(n²).
//
// Notes:
//   - If you only need A⁻¹*b, a single LU + two triangular solves is
//     cheaper than forming the full inverse. The discriminant builders
//     form the inverse once per class, so the facade fits their shape.
func Inverse(m *Dense) (*Dense, error) {
	lMat, uMat, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k    int
		sum, pivot   float64
		baseLi, base int
		y            = make([]float64, n) // forward-substitution workspace
		x            = make([]float64, n) // backward-substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			baseLi = i * n
			for k = 0; k < i; k++ {
				sum += lMat.data[baseLi+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += uMat.data[base+k] * x[k]
			}
			pivot = uMat.data[base+i]
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write x into column col of the inverse.
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Det computes the determinant via Doolittle LU. Because the
// factorization does not pivot, det(A) is exactly the product of U's
// diagonal (no sign bookkeeping).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (a zero pivot means a
// structurally zero determinant; the sentinel keeps "invalid covariance"
// loud instead of returning 0 quietly).
// Complexity: Time O(n³), Space O(n²).
func Det(m *Dense) (float64, error) {
	_, u, err := LU(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := m.r
	det := 1.0
	for i := 0; i < n; i++ {
		det *= u.data[i*n+i]
	}

	return det, nil
}

// Cholesky computes the lower-triangular factor L with A = L*Lᵀ for a
// symmetric positive-definite A. This is the factor the multivariate
// normal sampler pushes standard normals through.
//
// Implementation:
//   - Stage 1: validate symmetry within DefaultEpsilon.
//   - Stage 2: classic column-by-column factorization; a non-positive
//     diagonal pivot proves A is not positive definite.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNotPositiveDefinite.
// Determinism: fixed j→i order.
// Complexity: Time O(n³), Space O(n²).
func Cholesky(m *Dense) (*Dense, error) {
	if err := ValidateSymmetric(m, DefaultEpsilon); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := m.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var (
		i, j, k      int
		sum, pivot   float64
		baseI, baseJ int
	)
	for j = 0; j < n; j++ {
		baseJ = j * n
		// Diagonal entry: L[j,j] = sqrt(A[j,j] - Σ L[j,k]²).
		sum = ZeroSum
		for k = 0; k < j; k++ {
			sum += l.data[baseJ+k] * l.data[baseJ+k]
		}
		pivot = m.data[baseJ+j] - sum
		if pivot <= ZeroPivot {
			return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		l.data[baseJ+j] = math.Sqrt(pivot)

		// Below-diagonal entries of column j.
		for i = j + 1; i < n; i++ {
			baseI = i * n
			sum = ZeroSum
			for k = 0; k < j; k++ {
				sum += l.data[baseI+k] * l.data[baseJ+k]
			}
			l.data[baseI+j] = (m.data[baseI+j] - sum) / l.data[baseJ+j]
		}
	}

	return l, nil
}
