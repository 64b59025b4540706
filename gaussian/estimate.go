// Package gaussian: parameter estimation from a point cloud.

package gaussian

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bayesline/matrix"
)

// Estimate computes the sample mean and sample covariance (the n−1
// normalized estimator) of a point cloud, returning them as ClassParams.
// Together with Sample this closes the loop: draw from known parameters,
// re-estimate them, compare.
//
// Implementation:
//   - Stage 1: validate at least two points and a consistent dimension.
//   - Stage 2: transpose the cloud into per-coordinate columns and let
//     gonum/stat do the moments: stat.Mean per coordinate,
//     stat.Covariance per coordinate pair (symmetric, so the upper
//     triangle is computed once and mirrored).
//
// Errors:
//   - ErrBadSampleCount           — fewer than two points.
//   - matrix.ErrDimensionMismatch — points of differing dimension.
//
// Determinism: fixed coordinate order; stat.Mean/Covariance are
// sequential sums.
// Complexity: Time O(n·d²), Space O(n·d).
func Estimate(points [][]float64) (ClassParams, error) {
	if len(points) < 2 {
		return ClassParams{}, fmt.Errorf("Estimate: %w", ErrBadSampleCount)
	}
	d := len(points[0])
	for i := 1; i < len(points); i++ {
		if len(points[i]) != d {
			return ClassParams{}, fmt.Errorf("Estimate: point %d: %w", i, matrix.ErrDimensionMismatch)
		}
	}

	// Columns: cols[j][i] = points[i][j].
	cols := make([][]float64, d)
	for j := 0; j < d; j++ {
		cols[j] = make([]float64, len(points))
		for i := range points {
			cols[j][i] = points[i][j]
		}
	}

	mean := make([]float64, d)
	for j := 0; j < d; j++ {
		mean[j] = stat.Mean(cols[j], nil)
	}

	cov, err := matrix.NewDense(d, d)
	if err != nil {
		return ClassParams{}, fmt.Errorf("Estimate: %w", err)
	}
	var i, j int
	var c float64
	for i = 0; i < d; i++ {
		for j = i; j < d; j++ {
			c = stat.Covariance(cols[i], cols[j], nil)
			if err = cov.Set(i, j, c); err != nil {
				return ClassParams{}, fmt.Errorf("Estimate: %w", err)
			}
			if err = cov.Set(j, i, c); err != nil {
				return ClassParams{}, fmt.Errorf("Estimate: %w", err)
			}
		}
	}

	return NewClassParams(mean, cov)
}
