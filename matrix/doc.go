// SPDX-License-Identifier: MIT

// Package matrix provides the small set of dense linear-algebra kernels
// that Gaussian discriminant analysis needs: element-wise operations,
// matrix products, and the LU / Cholesky decompositions behind Inverse,
// Det and positive-definiteness checks.
//
// 🚀 Design:
//
//   - One concrete storage type, *Dense (row-major flat slice). No
//     interface indirection: every caller in this module owns its data.
//   - Fail-fast validation. Every public kernel validates shape and
//     content first and returns a package sentinel (errors.Is-matchable);
//     kernels never panic on user input.
//   - Determinism. Fixed loop orders everywhere, LU without pivoting,
//     no global state. Identical inputs produce bit-identical outputs.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bayesline/matrix"
//
//	cov, _ := matrix.NewDenseFromRows([][]float64{{0.5, 0}, {0, 2}})
//	inv, err := matrix.Inverse(cov)   // ErrSingular on zero pivot
//	d, err := matrix.Det(cov)         // product of U's diagonal
//	q, err := matrix.QuadraticForm(inv, []float64{1, 1})
//
// Errors:
//
//	All sentinels live in errors.go and are prefixed "matrix:".
//	ErrSingular and ErrNotPositiveDefinite are the two that matter most
//	downstream — they are what "invalid covariance" means in this module.
package matrix
