// Package gaussian: core types, options, and sentinel errors.

package gaussian

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bayesline/matrix"
)

// Sentinel errors for gaussian operations.
var (
	// ErrInvalidCovariance indicates the covariance matrix is unusable:
	// asymmetric, singular, or not positive definite. It always wraps the
	// underlying matrix sentinel, so errors.Is matches both layers.
	ErrInvalidCovariance = errors.New("gaussian: invalid covariance matrix")

	// ErrBadSampleCount indicates a requested sample count n <= 0, or a
	// point cloud too small for estimation (fewer than two points).
	ErrBadSampleCount = errors.New("gaussian: sample count must be positive")

	// ErrNoClasses indicates Sample was called with an empty class slice.
	ErrNoClasses = errors.New("gaussian: at least one class is required")
)

// DefaultSeed is the pseudo-random seed used when Options.Seed is zero.
// A fixed default keeps experiment scripts reproducible out of the box.
const DefaultSeed int64 = 42

// Options configures sampling.
//
// Fields:
//   - Seed — seed for the pseudo-random generator. Zero means DefaultSeed;
//     any other value is used as-is. Two runs with equal parameters and
//     equal seeds produce byte-identical sample sets.
type Options struct {
	Seed int64
}

// DefaultOptions returns Options with Seed=DefaultSeed.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed}
}

// ClassParams holds one class's multivariate normal parameters: a
// d-dimensional mean and a d×d symmetric positive-(semi)definite
// covariance. Construct through NewClassParams; the constructor is the
// single place dimension and symmetry invariants are enforced.
type ClassParams struct {
	Mean []float64
	Cov  *matrix.Dense
}

// NewClassParams validates and packs mean and covariance.
//
// Validation order (fail-fast, first violation wins):
//  1. cov non-nil and square       → matrix.ErrNilMatrix / ErrNonSquare
//  2. len(mean) == cov.Rows()      → matrix.ErrDimensionMismatch
//  3. mean entries finite          → matrix.ErrNaNInf
//  4. cov symmetric within eps     → ErrInvalidCovariance (wraps ErrAsymmetry)
//
// Positive-definiteness is NOT checked here: it is checked by the
// operation that needs it (Cholesky for sampling, Inverse for densities
// and discriminants), so a merely semi-definite covariance can still be
// carried around until something actually requires inversion.
//
// Complexity: Time O(d²), Space O(d) for the defensive mean copy.
func NewClassParams(mean []float64, cov *matrix.Dense) (ClassParams, error) {
	if err := matrix.ValidateSquareNonNil(cov); err != nil {
		return ClassParams{}, fmt.Errorf("NewClassParams: %w", err)
	}
	if err := matrix.ValidateVecLen(mean, cov.Rows()); err != nil {
		return ClassParams{}, fmt.Errorf("NewClassParams: %w", err)
	}
	for i := 0; i < len(mean); i++ {
		if math.IsNaN(mean[i]) || math.IsInf(mean[i], 0) {
			return ClassParams{}, fmt.Errorf("NewClassParams: %w", matrix.ErrNaNInf)
		}
	}
	if err := matrix.ValidateSymmetric(cov, matrix.DefaultEpsilon); err != nil {
		return ClassParams{}, fmt.Errorf("NewClassParams: %w: %w", ErrInvalidCovariance, err)
	}

	m := make([]float64, len(mean))
	copy(m, mean)

	return ClassParams{Mean: m, Cov: cov.Clone()}, nil
}

// Dim returns the feature dimension d. O(1).
func (p ClassParams) Dim() int { return len(p.Mean) }

// SampleSet is an ordered, labeled point cloud: Points[i] is a
// d-dimensional feature vector and Labels[i] its class index in
// {0..K-1}. A SampleSet is created once by Sample and treated as
// immutable afterwards.
type SampleSet struct {
	Points [][]float64
	Labels []int
}

// Len returns the number of stored samples. O(1).
func (s *SampleSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Points)
}

// Dim returns the feature dimension of the stored points, or 0 for an
// empty set. O(1).
func (s *SampleSet) Dim() int {
	if s.Len() == 0 {
		return 0
	}

	return len(s.Points[0])
}

// ClassPoints returns the points carrying the given label, in stored
// order. O(n).
func (s *SampleSet) ClassPoints(label int) [][]float64 {
	var out [][]float64
	for i := range s.Points {
		if s.Labels[i] == label {
			out = append(out, s.Points[i])
		}
	}

	return out
}
