// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults (single source of truth).

package matrix

// DefaultEpsilon defines the non-negative tolerance used by structural
// checks (symmetry). Chosen well above float64 rounding noise for the
// 2×2..8×8 covariance matrices this module sees in practice.
const DefaultEpsilon = 1e-9
