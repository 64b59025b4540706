// Package bayesline is your in-memory playground for Bayesian pattern
// classification with Gaussian class-conditional densities — from raw
// linear-algebra kernels to rendered decision-boundary plots.
//
// 🚀 What is bayesline?
//
//	A small, deterministic library that brings together:
//		• matrix/       — dense kernels: Mul, MatVec, LU, Inverse, Det, Cholesky
//		• gaussian/     — class parameters, reproducible MVN sampling, densities
//		• discriminant/ — linear & quadratic Gaussian discriminant functions
//		• boundary/     — grid evaluation of the decision rule + PNG rendering
//
// ✨ Why choose bayesline?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – fixed seeds, deterministic loop orders, stable plots
//   - Explicit failures – sentinel errors for singular covariances and
//     dimension mismatches, never silent NaN propagation
//   - Tested – every textbook property (boundary linearity under shared
//     covariance, Mahalanobis ties, seed stability) is pinned by tests
//
// Quick sketch of the pipeline:
//
//	params ──► gaussian.Sample ──► boundary.Evaluate ──► boundary.Render
//	   │                                   ▲
//	   └────► discriminant.NewQuadratic ───┘
//
// Shared covariance across classes yields a linear boundary; arbitrary
// per-class covariances yield a quadratic one. Both facts fall out of the
// discriminant algebra and are verified in discriminant's tests.
//
// Dive into the per-package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/bayesline
package bayesline
