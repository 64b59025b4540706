// Package gaussian: multivariate normal sampling via the Cholesky transform.

package gaussian

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayesline/matrix"
)

// Sampler draws i.i.d. samples from one multivariate normal
// distribution. The covariance's lower Cholesky factor L is computed
// once at construction; each draw is x = μ + L·z with z a vector of
// independent standard normals.
//
// A Sampler owns its *rand.Rand and is NOT safe for concurrent use —
// the whole module is single-threaded by design.
type Sampler struct {
	params ClassParams
	chol   *matrix.Dense
	rng    *rand.Rand
}

// NewSampler builds a Sampler for the given class parameters.
//
// Implementation:
//   - Stage 1: Cholesky(params.Cov); failure means the covariance is not
//     SPD and surfaces as ErrInvalidCovariance wrapping the matrix sentinel.
//   - Stage 2: seed a private generator (Options.Seed, DefaultSeed if zero).
//
// Errors: ErrInvalidCovariance (wrapping matrix.ErrNotPositiveDefinite
// or matrix.ErrAsymmetry).
// Complexity: Time O(d³) once, Space O(d²).
func NewSampler(params ClassParams, opts Options) (*Sampler, error) {
	chol, err := matrix.Cholesky(params.Cov)
	if err != nil {
		return nil, fmt.Errorf("NewSampler: %w: %w", ErrInvalidCovariance, err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Sampler{
		params: params,
		chol:   chol,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Draw returns one fresh sample x = μ + L·z.
//
// Determinism: draws consume the generator in a fixed order (z[0..d-1]
// per call), so a given seed yields a fixed sample sequence.
// Complexity: Time O(d²), Space O(d).
func (s *Sampler) Draw() []float64 {
	d := s.params.Dim()
	z := make([]float64, d)
	for i := 0; i < d; i++ {
		z[i] = s.rng.NormFloat64()
	}

	// x = mean + chol·z; MatVec cannot fail here: shapes were fixed at
	// construction.
	lz, _ := matrix.MatVec(s.chol, z)
	x := make([]float64, d)
	for i := 0; i < d; i++ {
		x[i] = s.params.Mean[i] + lz[i]
	}

	return x
}

// Sample draws nPerClass i.i.d. samples from every class and tags each
// draw with its class index. Classes are visited in slice order and all
// draws come from ONE seeded generator, so the full set is reproducible
// byte-for-byte for a fixed (classes, nPerClass, seed) triple.
//
// Inputs:
//   - classes:   one ClassParams per class, all with equal dimension.
//   - nPerClass: draws per class, must be > 0.
//   - opts:      sampling options (seed).
//
// Returns a SampleSet of length len(classes)*nPerClass, grouped by class
// (all class-0 points first, then class 1, ...).
//
// Errors:
//   - ErrNoClasses                 — empty class slice.
//   - ErrBadSampleCount            — nPerClass <= 0.
//   - matrix.ErrDimensionMismatch  — classes disagree on dimension.
//   - ErrInvalidCovariance         — some covariance is not SPD.
//
// Complexity: Time O(K·(d³ + n·d²)), Space O(K·n·d).
func Sample(classes []ClassParams, nPerClass int, opts Options) (*SampleSet, error) {
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}
	if nPerClass <= 0 {
		return nil, ErrBadSampleCount
	}
	d := classes[0].Dim()
	for k := 1; k < len(classes); k++ {
		if classes[k].Dim() != d {
			return nil, fmt.Errorf("Sample: class %d: %w", k, matrix.ErrDimensionMismatch)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	total := len(classes) * nPerClass
	set := &SampleSet{
		Points: make([][]float64, 0, total),
		Labels: make([]int, 0, total),
	}
	for k := range classes {
		chol, err := matrix.Cholesky(classes[k].Cov)
		if err != nil {
			return nil, fmt.Errorf("Sample: class %d: %w: %w", k, ErrInvalidCovariance, err)
		}
		for i := 0; i < nPerClass; i++ {
			z := make([]float64, d)
			for j := 0; j < d; j++ {
				z[j] = rng.NormFloat64()
			}
			lz, _ := matrix.MatVec(chol, z)
			x := make([]float64, d)
			for j := 0; j < d; j++ {
				x[j] = classes[k].Mean[j] + lz[j]
			}
			set.Points = append(set.Points, x)
			set.Labels = append(set.Labels, k)
		}
	}

	return set, nil
}
