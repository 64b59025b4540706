package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesline/boundary"
	"github.com/katalvlaran/bayesline/discriminant"
	"github.com/katalvlaran/bayesline/gaussian"
	"github.com/katalvlaran/bayesline/matrix"
)

// halfPlane is a stub Classifier: label 1 iff x[0] >= split.
type halfPlane struct {
	split float64
}

func (h halfPlane) Classify(x []float64) (int, error) {
	if x[0] >= h.split {
		return 1, nil
	}

	return 0, nil
}

func (h halfPlane) Dim() int { return 2 }

// pointSet builds a SampleSet with zero labels from raw coordinates.
func pointSet(points ...[]float64) *gaussian.SampleSet {
	return &gaussian.SampleSet{
		Points: points,
		Labels: make([]int, len(points)),
	}
}

// TestEvaluate_EmptySampleSet checks that an empty set (nil or
// zero-length) surfaces ErrEmptySampleSet.
func TestEvaluate_EmptySampleSet(t *testing.T) {
	_, err := boundary.Evaluate(nil, halfPlane{}, boundary.DefaultOptions())
	assert.ErrorIs(t, err, boundary.ErrEmptySampleSet)

	_, err = boundary.Evaluate(&gaussian.SampleSet{}, halfPlane{}, boundary.DefaultOptions())
	assert.ErrorIs(t, err, boundary.ErrEmptySampleSet)
}

// TestEvaluate_InputGuards walks the planar, nil-classifier and option guards.
func TestEvaluate_InputGuards(t *testing.T) {
	threeD := pointSet([]float64{1, 2, 3})
	_, err := boundary.Evaluate(threeD, halfPlane{}, boundary.DefaultOptions())
	assert.ErrorIs(t, err, boundary.ErrNotPlanar)

	set := pointSet([]float64{0, 0}, []float64{1, 1})
	_, err = boundary.Evaluate(set, nil, boundary.DefaultOptions())
	assert.ErrorIs(t, err, boundary.ErrNilClassifier)

	_, err = boundary.Evaluate(set, halfPlane{}, boundary.Options{Margin: 0.1, Step: 0})
	assert.ErrorIs(t, err, boundary.ErrBadOption, "zero step must error")

	_, err = boundary.Evaluate(set, halfPlane{}, boundary.Options{Margin: -1, Step: 0.1})
	assert.ErrorIs(t, err, boundary.ErrBadOption, "negative margin must error")
}

// TestEvaluate_GridGeometry verifies bounding box, margin padding, step
// spacing and the row/col coordinate mapping.
func TestEvaluate_GridGeometry(t *testing.T) {
	set := pointSet([]float64{0, 0}, []float64{1, 2})
	opts := boundary.Options{Margin: 0.5, Step: 0.5}

	grid, err := boundary.Evaluate(set, halfPlane{split: 100}, opts)
	require.NoError(t, err)

	// x spans [-0.5, 1.5] → 5 columns; y spans [-0.5, 2.5] → 7 rows.
	assert.Equal(t, 7, grid.Rows())
	assert.Equal(t, 5, grid.Cols())
	assert.InDelta(t, -0.5, grid.MinX, 1e-12)
	assert.InDelta(t, -0.5, grid.MinY, 1e-12)
	assert.InDelta(t, 1.5, grid.X(grid.Cols()-1), 1e-12)
	assert.InDelta(t, 2.5, grid.Y(grid.Rows()-1), 1e-12)
}

// TestEvaluate_HalfPlaneLabels verifies every node is classified with the
// decision rule: the stub splits the grid at x = 0.5.
func TestEvaluate_HalfPlaneLabels(t *testing.T) {
	set := pointSet([]float64{0, 0}, []float64{1, 1})

	grid, err := boundary.Evaluate(set, halfPlane{split: 0.5}, boundary.Options{Margin: 0, Step: 0.25})
	require.NoError(t, err)

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			want := 0
			if grid.X(col) >= 0.5 {
				want = 1
			}
			assert.Equal(t, want, grid.Labels[row][col], "node (%d,%d)", row, col)
		}
	}
}

// TestEvaluate_QuadraticRegions runs the full pipeline through a real
// discriminant: the grid nodes nearest each mean carry that mean's class.
func TestEvaluate_QuadraticRegions(t *testing.T) {
	cov0, err := matrix.NewDenseFromRows([][]float64{{0.5, 0}, {0, 2}})
	require.NoError(t, err)
	cov1, err := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
	require.NoError(t, err)
	c0, err := gaussian.NewClassParams([]float64{1, 1}, cov0)
	require.NoError(t, err)
	c1, err := gaussian.NewClassParams([]float64{3, 3}, cov1)
	require.NoError(t, err)

	clf, err := discriminant.NewQuadratic([]gaussian.ClassParams{c0, c1}, []float64{0.5, 0.5})
	require.NoError(t, err)

	set, err := gaussian.Sample([]gaussian.ClassParams{c0, c1}, 30, gaussian.DefaultOptions())
	require.NoError(t, err)

	grid, err := boundary.Evaluate(set, clf, boundary.Options{Margin: 0.1, Step: 0.05})
	require.NoError(t, err)

	nearestNode := func(x, y float64) (int, int) {
		col := int((x - grid.MinX) / grid.Step)
		row := int((y - grid.MinY) / grid.Step)

		return row, col
	}
	row, col := nearestNode(1, 1)
	assert.Equal(t, 0, grid.Labels[row][col], "region around mean (1,1) is class 0")
	row, col = nearestNode(3, 3)
	assert.Equal(t, 1, grid.Labels[row][col], "region around mean (3,3) is class 1")
}

// BenchmarkEvaluate measures the grid sweep with a real quadratic
// discriminant at the default 0.01 step on a 60-point cloud.
func BenchmarkEvaluate(b *testing.B) {
	cov0, _ := matrix.NewDenseFromRows([][]float64{{0.5, 0}, {0, 2}})
	cov1, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
	c0, _ := gaussian.NewClassParams([]float64{1, 1}, cov0)
	c1, _ := gaussian.NewClassParams([]float64{3, 3}, cov1)
	clf, _ := discriminant.NewQuadratic([]gaussian.ClassParams{c0, c1}, []float64{0.5, 0.5})
	set, _ := gaussian.Sample([]gaussian.ClassParams{c0, c1}, 30, gaussian.DefaultOptions())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := boundary.Evaluate(set, clf, boundary.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
