// Package boundary: the grid evaluator.

package boundary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bayesline/gaussian"
	"github.com/katalvlaran/bayesline/matrix"
)

// planarDim is the only feature dimension the evaluator supports.
const planarDim = 2

// validateOptions rejects non-finite or non-positive resolution settings.
func validateOptions(opts Options) error {
	if math.IsNaN(opts.Step) || math.IsInf(opts.Step, 0) || opts.Step <= 0 {
		return fmt.Errorf("step %v: %w", opts.Step, ErrBadOption)
	}
	if math.IsNaN(opts.Margin) || math.IsInf(opts.Margin, 0) || opts.Margin < 0 {
		return fmt.Errorf("margin %v: %w", opts.Margin, ErrBadOption)
	}

	return nil
}

// Evaluate sweeps the classifier's decision rule over a regular grid
// covering the sample set's bounding box.
//
// Implementation:
//   - Stage 1: validate inputs (non-empty planar set, non-nil 2-D
//     classifier, sane options); find the bounding box and pad it by
//     Margin on every side.
//   - Stage 2: scan rows bottom-up (y) and columns left-to-right (x) at
//     Step resolution, classifying every node. Both edges of the padded
//     box are included.
//
// Inputs:
//   - set:  the sampled points; only their coordinates matter here,
//     their labels are used later by Render for the overlay.
//   - clf:  the decision rule; must expect 2-D inputs.
//   - opts: margin/step; DefaultOptions() for the standard 0.1 / 0.01.
//
// Returns a Grid of predicted labels; Labels[row][col] corresponds to
// the point (MinX + col·Step, MinY + row·Step).
//
// Errors:
//   - ErrEmptySampleSet — nil or zero-length set.
//   - ErrNotPlanar      — points are not 2-D.
//   - ErrNilClassifier  — clf is nil.
//   - matrix.ErrDimensionMismatch — clf.Dim() != 2.
//   - ErrBadOption      — bad margin/step.
//   - Classification errors propagate unchanged.
//
// Determinism: fixed row→col scan order; no randomness.
// Complexity: Time O(R·C·cost(Classify)), Space O(R·C).
func Evaluate(set *gaussian.SampleSet, clf Classifier, opts Options) (*Grid, error) {
	if set.Len() == 0 {
		return nil, ErrEmptySampleSet
	}
	if set.Dim() != planarDim {
		return nil, fmt.Errorf("Evaluate: dim %d: %w", set.Dim(), ErrNotPlanar)
	}
	if clf == nil {
		return nil, ErrNilClassifier
	}
	if clf.Dim() != planarDim {
		return nil, fmt.Errorf("Evaluate: classifier dim %d: %w", clf.Dim(), matrix.ErrDimensionMismatch)
	}
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}

	// Bounding box of the point cloud.
	minX, maxX := set.Points[0][0], set.Points[0][0]
	minY, maxY := set.Points[0][1], set.Points[0][1]
	for _, p := range set.Points {
		minX = math.Min(minX, p[0])
		maxX = math.Max(maxX, p[0])
		minY = math.Min(minY, p[1])
		maxY = math.Max(maxY, p[1])
	}
	minX -= opts.Margin
	maxX += opts.Margin
	minY -= opts.Margin
	maxY += opts.Margin

	// Node counts include both padded edges.
	cols := int(math.Floor((maxX-minX)/opts.Step)) + 1
	rows := int(math.Floor((maxY-minY)/opts.Step)) + 1

	grid := &Grid{
		MinX:   minX,
		MinY:   minY,
		Step:   opts.Step,
		Labels: make([][]int, rows),
	}
	x := make([]float64, planarDim) // reused per node
	var row, col, label int
	var err error
	for row = 0; row < rows; row++ {
		grid.Labels[row] = make([]int, cols)
		x[1] = minY + float64(row)*opts.Step
		for col = 0; col < cols; col++ {
			x[0] = minX + float64(col)*opts.Step
			label, err = clf.Classify(x)
			if err != nil {
				return nil, fmt.Errorf("Evaluate: node (%d,%d): %w", row, col, err)
			}
			grid.Labels[row][col] = label
		}
	}

	return grid, nil
}
