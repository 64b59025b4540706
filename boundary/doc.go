// Package boundary turns a classifier and a 2-D sample set into a
// decision-boundary picture: a regular grid of predicted labels over the
// sample's bounding box, and a rendered PNG with the sampled points
// scattered on top of the colored decision regions.
//
// 🚀 Pipeline:
//
//	set  := gaussian.Sample(...)            // labeled points
//	clf  := discriminant.NewQuadratic(...)  // any Classifier
//	grid := boundary.Evaluate(set, clf, boundary.DefaultOptions())
//	err  := boundary.Render(grid, set, pngWriter, boundary.DefaultRenderOptions())
//
// The grid covers the sample's bounding box expanded by Options.Margin
// (default 0.1 units) at Options.Step resolution (default 0.01 units);
// both are plain overridable fields. Evaluation scans rows bottom-up and
// columns left-to-right, so the label grid is deterministic and plots
// are regression-testable given a fixed sampling seed.
//
// Rendering is built on gonum.org/v1/plot: the label grid becomes a
// heat-map of class regions, each class's samples become a scatter
// series, and the result is PNG-encoded to any io.Writer.
//
// This package is purely a rendering utility: the only failure modes are
// an empty sample set, non-planar input, and bad options.
package boundary
