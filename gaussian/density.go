// Package gaussian: full-covariance normal densities and Mahalanobis
// distance. Density caches the expensive pieces (Σ⁻¹, ln det Σ) once so
// repeated evaluation over a grid stays O(d²) per point.

package gaussian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bayesline/matrix"
)

// log2Pi is ln(2π), the dimension-scaled constant of the normal log-density.
var log2Pi = math.Log(2 * math.Pi)

// Density is a prepared evaluator for one class's normal density.
// Construction performs the inversion and determinant once; PDF/LogPDF
// and Mahalanobis are then cheap per-point calls.
type Density struct {
	params  ClassParams
	inv     *matrix.Dense // Σ⁻¹
	logNorm float64       // -d/2·ln(2π) - 1/2·ln det Σ, precomputed
}

// NewDensity prepares a Density for the given parameters.
//
// Implementation:
//   - Stage 1: Inverse(Σ) and Det(Σ); a singular covariance surfaces as
//     ErrInvalidCovariance wrapping matrix.ErrSingular.
//   - Stage 2: reject non-positive determinants (the density is undefined)
//     and cache the log-normalization constant.
//
// Errors: ErrInvalidCovariance.
// Complexity: Time O(d³) once, Space O(d²).
func NewDensity(params ClassParams) (*Density, error) {
	inv, err := matrix.Inverse(params.Cov)
	if err != nil {
		return nil, fmt.Errorf("NewDensity: %w: %w", ErrInvalidCovariance, err)
	}
	det, err := matrix.Det(params.Cov)
	if err != nil {
		return nil, fmt.Errorf("NewDensity: %w: %w", ErrInvalidCovariance, err)
	}
	if det <= 0 {
		return nil, fmt.Errorf("NewDensity: determinant %v: %w", det, ErrInvalidCovariance)
	}

	d := float64(params.Dim())

	return &Density{
		params:  params,
		inv:     inv,
		logNorm: -0.5*d*log2Pi - 0.5*math.Log(det),
	}, nil
}

// Mahalanobis returns the squared Mahalanobis distance
// (x−μ)ᵀ Σ⁻¹ (x−μ) from x to the class mean.
//
// Errors: matrix.ErrDimensionMismatch when len(x) != d.
// Complexity: Time O(d²), Space O(d).
func (dn *Density) Mahalanobis(x []float64) (float64, error) {
	if err := matrix.ValidateVecLen(x, dn.params.Dim()); err != nil {
		return 0, fmt.Errorf("Mahalanobis: %w", err)
	}

	diff := make([]float64, len(x))
	for i := range x {
		diff[i] = x[i] - dn.params.Mean[i]
	}

	q, err := matrix.QuadraticForm(dn.inv, diff)
	if err != nil {
		return 0, fmt.Errorf("Mahalanobis: %w", err)
	}

	return q, nil
}

// LogPDF evaluates the log-density ln p(x) = logNorm − ½·maha²(x).
//
// Errors: matrix.ErrDimensionMismatch.
// Complexity: Time O(d²), Space O(d).
func (dn *Density) LogPDF(x []float64) (float64, error) {
	maha, err := dn.Mahalanobis(x)
	if err != nil {
		return 0, fmt.Errorf("LogPDF: %w", err)
	}

	return dn.logNorm - 0.5*maha, nil
}

// PDF evaluates the density p(x) = exp(LogPDF(x)).
//
// Errors: matrix.ErrDimensionMismatch.
// Complexity: Time O(d²), Space O(d).
func (dn *Density) PDF(x []float64) (float64, error) {
	lp, err := dn.LogPDF(x)
	if err != nil {
		return 0, fmt.Errorf("PDF: %w", err)
	}

	return math.Exp(lp), nil
}

// Mahalanobis is the one-shot convenience over NewDensity + Mahalanobis.
// Prefer a Density when evaluating many points against one class.
func Mahalanobis(params ClassParams, x []float64) (float64, error) {
	dn, err := NewDensity(params)
	if err != nil {
		return 0, err
	}

	return dn.Mahalanobis(x)
}
