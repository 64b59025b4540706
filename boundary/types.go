// Package boundary: core types, options, and sentinel errors.

package boundary

import (
	"errors"

	"gonum.org/v1/plot/vg"
)

// Sentinel errors for boundary operations.
var (
	// ErrEmptySampleSet indicates the grid evaluator was given zero points.
	ErrEmptySampleSet = errors.New("boundary: sample set must contain at least one point")

	// ErrNotPlanar indicates the sample set's points are not 2-dimensional;
	// grid evaluation and rendering are strictly planar.
	ErrNotPlanar = errors.New("boundary: grid evaluation requires 2-D points")

	// ErrNilClassifier indicates a nil Classifier was passed.
	ErrNilClassifier = errors.New("boundary: classifier is nil")

	// ErrBadOption indicates a non-finite, non-positive step or a
	// non-finite, negative margin.
	ErrBadOption = errors.New("boundary: invalid margin or step")

	// ErrNilGrid indicates Render was given a nil or empty grid.
	ErrNilGrid = errors.New("boundary: grid is nil or empty")
)

// Grid defaults: the bounding box is padded by DefaultMargin on every
// side and sampled every DefaultStep units.
const (
	DefaultMargin = 0.1
	DefaultStep   = 0.01
)

// Render defaults.
const (
	// DefaultCanvasSize is the width and height of the rendered plot.
	DefaultCanvasSize = 6 * vg.Inch

	// DefaultTitle labels rendered plots when RenderOptions.Title is empty.
	DefaultTitle = "decision boundary"
)

// Classifier is the decision rule the evaluator sweeps over the grid.
// *discriminant.Discriminant satisfies it; tests use hand-rolled stubs.
type Classifier interface {
	// Classify returns the winning class index for a feature vector.
	Classify(x []float64) (int, error)
	// Dim returns the feature dimension the classifier expects.
	Dim() int
}

// Options configures grid evaluation.
//
// Fields:
//   - Margin — padding added to every side of the sample bounding box,
//     in data units. Must be finite and >= 0.
//   - Step   — grid resolution in data units. Must be finite and > 0.
type Options struct {
	Margin float64
	Step   float64
}

// DefaultOptions returns Options{Margin: DefaultMargin, Step: DefaultStep}.
func DefaultOptions() Options {
	return Options{Margin: DefaultMargin, Step: DefaultStep}
}

// RenderOptions configures the rendered image.
//
// Fields:
//   - Width, Height — canvas size; zero means DefaultCanvasSize.
//   - Title         — plot title; empty means DefaultTitle.
type RenderOptions struct {
	Width  vg.Length
	Height vg.Length
	Title  string
}

// DefaultRenderOptions returns a square DefaultCanvasSize canvas with
// the default title.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:  DefaultCanvasSize,
		Height: DefaultCanvasSize,
		Title:  DefaultTitle,
	}
}

// Grid is the evaluated decision surface: Labels[row][col] is the
// predicted class at point (MinX + col·Step, MinY + row·Step). Rows run
// bottom-up (row 0 is MinY), columns left-to-right. Immutable once built.
type Grid struct {
	MinX, MinY float64
	Step       float64
	Labels     [][]int
}

// Rows returns the number of grid rows (y direction). O(1).
func (g *Grid) Rows() int { return len(g.Labels) }

// Cols returns the number of grid columns (x direction). O(1).
func (g *Grid) Cols() int {
	if len(g.Labels) == 0 {
		return 0
	}

	return len(g.Labels[0])
}

// X returns the data-space x coordinate of column col. O(1).
func (g *Grid) X(col int) float64 { return g.MinX + float64(col)*g.Step }

// Y returns the data-space y coordinate of row row. O(1).
func (g *Grid) Y(row int) float64 { return g.MinY + float64(row)*g.Step }
