// Package discriminant builds Gaussian Bayes discriminant functions —
// the scoring machinery behind minimum-error-rate classification with
// normal class-conditional densities.
//
// 🚀 Two shapes of boundary:
//
//   - NewLinear — all classes share one covariance Σ. Per class i:
//     wᵢ = Σ⁻¹μᵢ,  bᵢ = −½·μᵢᵀΣ⁻¹μᵢ + ln πᵢ,  gᵢ(x) = wᵢ·x + bᵢ.
//     Decision boundaries between classes are hyperplanes.
//
//   - NewQuadratic — arbitrary covariance Σᵢ per class. Per class i:
//     Wᵢ = −½·Σᵢ⁻¹,  wᵢ = Σᵢ⁻¹μᵢ,
//     bᵢ = −½·μᵢᵀΣᵢ⁻¹μᵢ − ½·ln det Σᵢ + ln πᵢ,
//     gᵢ(x) = xᵀWᵢx + wᵢ·x + bᵢ.
//     Boundaries are quadrics (ellipses, parabolas, hyperbolas in 2-D).
//
// When every Σᵢ is the same matrix, the quadratic terms cancel in every
// pairwise comparison and the quadratic machine degenerates to the
// linear one — a property pinned by this package's tests.
//
// ⚙️ Usage:
//
//	clf, err := discriminant.NewQuadratic(classes, []float64{0.5, 0.5})
//	label := clf.MustClassify(x) // or Classify for the error-returning form
//
// Tie rule:
//
//	Classify scans classes in ascending index order and replaces the
//	incumbent whenever a score is greater than OR EQUAL to it, so exact
//	ties break toward the HIGHEST class index. Deliberate, documented,
//	tested — not an artifact of comparison order.
//
// Errors:
//
//	ErrSingularCovariance (wraps matrix.ErrSingular) at build time for a
//	non-invertible covariance; ErrBadPrior for non-finite or non-positive
//	priors; dimension disagreements surface matrix.ErrDimensionMismatch.
package discriminant
