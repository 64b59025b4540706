// Package gaussian models class-conditional multivariate normal
// distributions: parameter containers, reproducible sampling, densities
// and Mahalanobis distances.
//
// 🚀 What lives here?
//
//   - ClassParams  — a mean vector plus a symmetric positive-definite
//     covariance matrix, validated at construction
//   - Sampler      — i.i.d. draws via the Cholesky transform x = μ + L·z,
//     driven by a seeded generator so runs are byte-identical
//   - SampleSet    — the labeled point cloud an experiment produces,
//     consumed by the boundary package
//   - Density      — cached Σ⁻¹ / ln det Σ for repeated PDF evaluation
//   - Estimate     — sample mean & covariance of a point cloud
//     (closing the loop: sample, then re-estimate the parameters)
//
// ⚙️ Usage:
//
//	c0, _ := gaussian.NewClassParams([]float64{1, 1}, cov0)
//	c1, _ := gaussian.NewClassParams([]float64{3, 3}, cov1)
//	set, err := gaussian.Sample([]gaussian.ClassParams{c0, c1}, 30, gaussian.DefaultOptions())
//
// Reproducibility:
//
//	Sampling uses math/rand seeded with Options.Seed (DefaultSeed when
//	unset). Identical parameters + identical seed ⇒ identical SampleSet,
//	which is what makes decision-boundary plots regression-testable.
//
// Errors:
//
//	ErrInvalidCovariance wraps the matrix sentinels (ErrSingular,
//	ErrNotPositiveDefinite, ErrAsymmetry) — a covariance that cannot be
//	factored or inverted fails loudly, never as silent NaNs.
package gaussian
