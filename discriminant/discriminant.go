// Package discriminant: builders and the scoring/decision surface.

package discriminant

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bayesline/gaussian"
	"github.com/katalvlaran/bayesline/matrix"
)

// Sentinel errors for discriminant construction and evaluation.
var (
	// ErrSingularCovariance indicates a covariance matrix could not be
	// inverted (or its determinant is non-positive). Always wraps the
	// underlying matrix sentinel so errors.Is matches both layers.
	ErrSingularCovariance = errors.New("discriminant: singular covariance matrix")

	// ErrBadPrior indicates a class prior that is NaN, ±Inf, or <= 0.
	// Priors need not sum to one — only ln π enters the score — but each
	// must be a usable logarithm argument.
	ErrBadPrior = errors.New("discriminant: class prior must be finite and positive")

	// ErrNoClasses indicates a builder was called with fewer than two classes.
	ErrNoClasses = errors.New("discriminant: at least two classes are required")

	// ErrClassIndex indicates a requested class index is out of range.
	ErrClassIndex = errors.New("discriminant: class index out of range")
)

// quadScale is the coefficient of the quadratic term: Wᵢ = quadScale·Σᵢ⁻¹.
const quadScale = -0.5

// Discriminant is a prepared family of per-class score functions
// g₀..g_{K−1}. Build once via NewLinear or NewQuadratic, then evaluate
// Scores/Classify on as many points as needed (grid evaluation does
// exactly that). Immutable after construction.
type Discriminant struct {
	dim     int
	quads   []*matrix.Dense // per-class Wᵢ; nil for the linear family
	weights [][]float64     // per-class wᵢ
	biases  []float64       // per-class bᵢ
}

// validatePriors checks count and numeric sanity of the prior vector.
func validatePriors(priors []float64, k int) error {
	if len(priors) != k {
		return fmt.Errorf("priors: %w", matrix.ErrDimensionMismatch)
	}
	for i, p := range priors {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return fmt.Errorf("priors[%d]=%v: %w", i, p, ErrBadPrior)
		}
	}

	return nil
}

// NewLinear builds the shared-covariance (linear) discriminant family.
//
// Implementation:
//   - Stage 1: validate ≥2 classes, equal dimensions, priors; invert the
//     shared covariance once.
//   - Stage 2: per class, wᵢ = Σ⁻¹μᵢ and bᵢ = −½·μᵢᵀΣ⁻¹μᵢ + ln πᵢ.
//
// Inputs:
//   - means:  one mean vector per class, all of equal dimension.
//   - shared: the common covariance matrix Σ (d×d).
//   - priors: one positive finite prior per class.
//
// Errors: ErrNoClasses, ErrBadPrior, matrix.ErrDimensionMismatch,
// ErrSingularCovariance (wrapping matrix.ErrSingular).
// Complexity: Time O(d³ + K·d²), Space O(K·d).
func NewLinear(means [][]float64, shared *matrix.Dense, priors []float64) (*Discriminant, error) {
	if len(means) < 2 {
		return nil, ErrNoClasses
	}
	if err := matrix.ValidateSquareNonNil(shared); err != nil {
		return nil, fmt.Errorf("NewLinear: %w", err)
	}
	d := shared.Rows()
	for k := range means {
		if err := matrix.ValidateVecLen(means[k], d); err != nil {
			return nil, fmt.Errorf("NewLinear: mean %d: %w", k, err)
		}
	}
	if err := validatePriors(priors, len(means)); err != nil {
		return nil, fmt.Errorf("NewLinear: %w", err)
	}

	inv, err := matrix.Inverse(shared)
	if err != nil {
		return nil, fmt.Errorf("NewLinear: %w: %w", ErrSingularCovariance, err)
	}

	clf := &Discriminant{
		dim:     d,
		weights: make([][]float64, len(means)),
		biases:  make([]float64, len(means)),
	}
	for k := range means {
		w, errW := matrix.MatVec(inv, means[k])
		if errW != nil {
			return nil, fmt.Errorf("NewLinear: class %d: %w", k, errW)
		}
		q, errQ := matrix.QuadraticForm(inv, means[k])
		if errQ != nil {
			return nil, fmt.Errorf("NewLinear: class %d: %w", k, errQ)
		}
		clf.weights[k] = w
		clf.biases[k] = quadScale*q + math.Log(priors[k])
	}

	return clf, nil
}

// NewQuadratic builds the arbitrary-covariance (quadratic) discriminant
// family from per-class Gaussian parameters.
//
// Implementation:
//   - Stage 1: validate ≥2 classes, equal dimensions, priors.
//   - Stage 2: per class, Σᵢ⁻¹ and det Σᵢ; then Wᵢ = −½·Σᵢ⁻¹,
//     wᵢ = Σᵢ⁻¹μᵢ, bᵢ = −½·μᵢᵀΣᵢ⁻¹μᵢ − ½·ln det Σᵢ + ln πᵢ.
//
// Errors: ErrNoClasses, ErrBadPrior, matrix.ErrDimensionMismatch,
// ErrSingularCovariance (singular Σᵢ or det Σᵢ <= 0).
// Complexity: Time O(K·d³), Space O(K·d²).
func NewQuadratic(classes []gaussian.ClassParams, priors []float64) (*Discriminant, error) {
	if len(classes) < 2 {
		return nil, ErrNoClasses
	}
	d := classes[0].Dim()
	for k := 1; k < len(classes); k++ {
		if classes[k].Dim() != d {
			return nil, fmt.Errorf("NewQuadratic: class %d: %w", k, matrix.ErrDimensionMismatch)
		}
	}
	if err := validatePriors(priors, len(classes)); err != nil {
		return nil, fmt.Errorf("NewQuadratic: %w", err)
	}

	clf := &Discriminant{
		dim:     d,
		quads:   make([]*matrix.Dense, len(classes)),
		weights: make([][]float64, len(classes)),
		biases:  make([]float64, len(classes)),
	}
	for k := range classes {
		inv, errI := matrix.Inverse(classes[k].Cov)
		if errI != nil {
			return nil, fmt.Errorf("NewQuadratic: class %d: %w: %w", k, ErrSingularCovariance, errI)
		}
		det, errD := matrix.Det(classes[k].Cov)
		if errD != nil {
			return nil, fmt.Errorf("NewQuadratic: class %d: %w: %w", k, ErrSingularCovariance, errD)
		}
		if det <= 0 {
			return nil, fmt.Errorf("NewQuadratic: class %d: determinant %v: %w", k, det, ErrSingularCovariance)
		}

		quad, errS := matrix.Scale(inv, quadScale)
		if errS != nil {
			return nil, fmt.Errorf("NewQuadratic: class %d: %w", k, errS)
		}
		w, errW := matrix.MatVec(inv, classes[k].Mean)
		if errW != nil {
			return nil, fmt.Errorf("NewQuadratic: class %d: %w", k, errW)
		}
		q, errQ := matrix.QuadraticForm(inv, classes[k].Mean)
		if errQ != nil {
			return nil, fmt.Errorf("NewQuadratic: class %d: %w", k, errQ)
		}

		clf.quads[k] = quad
		clf.weights[k] = w
		clf.biases[k] = quadScale*q - 0.5*math.Log(det) + math.Log(priors[k])
	}

	return clf, nil
}

// NumClasses returns K. O(1).
func (c *Discriminant) NumClasses() int { return len(c.weights) }

// Dim returns the feature dimension d. O(1).
func (c *Discriminant) Dim() int { return c.dim }

// IsLinear reports whether this family carries no quadratic terms. O(1).
func (c *Discriminant) IsLinear() bool { return c.quads == nil }

// QuadraticTerm returns a copy of class i's quadratic coefficient matrix
// Wᵢ, or nil for a linear family (whose quadratic terms are identically
// zero). Exposed so callers can verify the equal-covariance cancellation
// property directly.
//
// Errors: ErrClassIndex. Complexity: O(d²) for the copy.
func (c *Discriminant) QuadraticTerm(i int) (*matrix.Dense, error) {
	if i < 0 || i >= c.NumClasses() {
		return nil, ErrClassIndex
	}
	if c.quads == nil {
		return nil, nil
	}

	return c.quads[i].Clone(), nil
}

// Scores evaluates every class's discriminant at x:
// gᵢ(x) = xᵀWᵢx + wᵢ·x + bᵢ (the quadratic term is skipped for linear
// families).
//
// Errors: matrix.ErrDimensionMismatch when len(x) != Dim().
// Determinism: classes evaluated in ascending index order.
// Complexity: Time O(K·d²) quadratic / O(K·d) linear, Space O(K).
func (c *Discriminant) Scores(x []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(x, c.dim); err != nil {
		return nil, fmt.Errorf("Scores: %w", err)
	}

	scores := make([]float64, c.NumClasses())
	for k := range scores {
		s, err := matrix.Dot(c.weights[k], x)
		if err != nil {
			return nil, fmt.Errorf("Scores: class %d: %w", k, err)
		}
		if c.quads != nil {
			q, errQ := matrix.QuadraticForm(c.quads[k], x)
			if errQ != nil {
				return nil, fmt.Errorf("Scores: class %d: %w", k, errQ)
			}
			s += q
		}
		scores[k] = s + c.biases[k]
	}

	return scores, nil
}

// Classify returns the index of the maximizing class.
//
// Tie rule: the scan runs in ascending class order and replaces the
// incumbent on score >= best, so an exact tie is won by the HIGHEST
// class index. For two classes: class 0 wins only when g₀ is STRICTLY
// greater than g₁, the textbook g₀ − g₁ > 0 rule with ties to class 1.
//
// Errors: matrix.ErrDimensionMismatch.
// Complexity: same as Scores plus an O(K) scan.
func (c *Discriminant) Classify(x []float64) (int, error) {
	scores, err := c.Scores(x)
	if err != nil {
		return 0, fmt.Errorf("Classify: %w", err)
	}

	best, bestScore := 0, scores[0]
	for k := 1; k < len(scores); k++ {
		if scores[k] >= bestScore { // ties fall through to the later class
			best, bestScore = k, scores[k]
		}
	}

	return best, nil
}

// MustClassify is Classify for call sites that already validated x
// (e.g. grid loops that build every point themselves). Panics on error.
func (c *Discriminant) MustClassify(x []float64) int {
	label, err := c.Classify(x)
	if err != nil {
		panic(err)
	}

	return label
}
