package discriminant_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesline/discriminant"
	"github.com/katalvlaran/bayesline/gaussian"
	"github.com/katalvlaran/bayesline/matrix"
)

// mustParams builds validated ClassParams or fails the test.
func mustParams(t *testing.T, mean []float64, cov [][]float64) gaussian.ClassParams {
	t.Helper()
	m, err := matrix.NewDenseFromRows(cov)
	require.NoError(t, err)
	p, err := gaussian.NewClassParams(mean, m)
	require.NoError(t, err)

	return p
}

var equalPriors = []float64{0.5, 0.5}

// TestNewQuadratic_EqualCovarianceCancels pins the linearity property:
// with equal covariances the quadratic coefficient matrices are equal,
// so their difference is the zero matrix and the boundary is linear.
func TestNewQuadratic_EqualCovarianceCancels(t *testing.T) {
	cov := [][]float64{{1, 0.2}, {0.2, 1}}
	c0 := mustParams(t, []float64{0, 0}, cov)
	c1 := mustParams(t, []float64{2, 2}, cov)

	clf, err := discriminant.NewQuadratic([]gaussian.ClassParams{c0, c1}, equalPriors)
	require.NoError(t, err)

	q0, err := clf.QuadraticTerm(0)
	require.NoError(t, err)
	q1, err := clf.QuadraticTerm(1)
	require.NoError(t, err)

	diff, err := matrix.Sub(q0, q1)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := diff.At(i, j)
			assert.InDelta(t, 0.0, v, 1e-12, "W0-W1 must vanish at (%d,%d)", i, j)
		}
	}
}

// TestClassify_MahalanobisTie pins the equidistance property: with equal
// priors and shared covariance, a point Mahalanobis-equidistant from both
// means scores a tie — and the tie goes to the highest class index.
func TestClassify_MahalanobisTie(t *testing.T) {
	shared, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	means := [][]float64{{0, 0}, {2, 0}}

	clf, err := discriminant.NewLinear(means, shared, equalPriors)
	require.NoError(t, err)

	// (1, y) is equidistant from (0,0) and (2,0) for any y.
	mid := []float64{1, 5}
	scores, err := clf.Scores(mid)
	require.NoError(t, err)
	assert.InDelta(t, scores[0], scores[1], 1e-12, "midpoint must tie")

	label, err := clf.Classify(mid)
	require.NoError(t, err)
	assert.Equal(t, 1, label, "exact ties break toward the highest class index")
}

// TestClassify_SwappedMeansMirror verifies that swapping the two means
// swaps the decision on a non-tied point.
func TestClassify_SwappedMeansMirror(t *testing.T) {
	shared, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	clf, err := discriminant.NewLinear([][]float64{{0, 0}, {4, 0}}, shared, equalPriors)
	require.NoError(t, err)
	swapped, err := discriminant.NewLinear([][]float64{{4, 0}, {0, 0}}, shared, equalPriors)
	require.NoError(t, err)

	x := []float64{0.5, 0}
	a, err := clf.Classify(x)
	require.NoError(t, err)
	b, err := swapped.Classify(x)
	require.NoError(t, err)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b, "swapping means must flip the decision")
}

// TestClassify_RegionsAroundMeans pins the spec's concrete scenario:
// cov1=[[0.5,0],[0,2]], cov2=[[2,0],[0,2]], means (1,1) and (3,3),
// equal priors — each mean's neighborhood classifies as its own class.
func TestClassify_RegionsAroundMeans(t *testing.T) {
	c0 := mustParams(t, []float64{1, 1}, [][]float64{{0.5, 0}, {0, 2}})
	c1 := mustParams(t, []float64{3, 3}, [][]float64{{2, 0}, {0, 2}})

	clf, err := discriminant.NewQuadratic([]gaussian.ClassParams{c0, c1}, equalPriors)
	require.NoError(t, err)

	for _, x := range [][]float64{{1, 1}, {0.9, 1.1}, {1.1, 0.9}} {
		label, errC := clf.Classify(x)
		require.NoError(t, errC)
		assert.Equal(t, 0, label, "near mean 0: %v", x)
	}
	for _, x := range [][]float64{{3, 3}, {2.9, 3.1}, {3.1, 2.9}} {
		label, errC := clf.Classify(x)
		require.NoError(t, errC)
		assert.Equal(t, 1, label, "near mean 1: %v", x)
	}
}

// TestNewQuadratic_SingularCovariance pins the spec's invalid-covariance
// edge case: [[1,1],[1,1]] must fail the build with an explicit error.
func TestNewQuadratic_SingularCovariance(t *testing.T) {
	bad := mustParams(t, []float64{0, 0}, [][]float64{{1, 1}, {1, 1}})
	ok := mustParams(t, []float64{2, 2}, [][]float64{{1, 0}, {0, 1}})

	_, err := discriminant.NewQuadratic([]gaussian.ClassParams{bad, ok}, equalPriors)
	assert.ErrorIs(t, err, discriminant.ErrSingularCovariance)
	assert.ErrorIs(t, err, matrix.ErrSingular, "matrix sentinel stays matchable through the wrap")
}

// TestNewLinear_SingularCovariance verifies the same guard on the shared
// covariance of the linear family.
func TestNewLinear_SingularCovariance(t *testing.T) {
	shared, err := matrix.NewDenseFromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)

	_, err = discriminant.NewLinear([][]float64{{0, 0}, {1, 1}}, shared, equalPriors)
	assert.ErrorIs(t, err, discriminant.ErrSingularCovariance)
}

// TestBuilders_InputGuards walks class-count, prior and dimension guards.
func TestBuilders_InputGuards(t *testing.T) {
	shared, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	_, err = discriminant.NewLinear([][]float64{{0, 0}}, shared, []float64{1})
	assert.ErrorIs(t, err, discriminant.ErrNoClasses)

	_, err = discriminant.NewLinear([][]float64{{0, 0}, {1, 1}}, shared, []float64{0.5, 0})
	assert.ErrorIs(t, err, discriminant.ErrBadPrior, "zero prior has no logarithm")

	_, err = discriminant.NewLinear([][]float64{{0, 0}, {1, 1}}, shared, []float64{0.5})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "prior count mismatch")

	_, err = discriminant.NewLinear([][]float64{{0, 0, 0}, {1, 1}}, shared, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "mean dimension mismatch")
}

// TestScores_PriorShift verifies that scaling one prior shifts only that
// class's score, by exactly the log-ratio.
func TestScores_PriorShift(t *testing.T) {
	shared, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	means := [][]float64{{0, 0}, {2, 0}}

	even, err := discriminant.NewLinear(means, shared, []float64{0.5, 0.5})
	require.NoError(t, err)
	tilted, err := discriminant.NewLinear(means, shared, []float64{0.5, 1.0})
	require.NoError(t, err)

	x := []float64{1, 0}
	a, err := even.Scores(x)
	require.NoError(t, err)
	b, err := tilted.Scores(x)
	require.NoError(t, err)

	assert.InDelta(t, a[0], b[0], 1e-12, "class 0 score untouched")
	assert.InDelta(t, math.Log(2), b[1]-a[1], 1e-12, "class 1 shifted by ln(1.0/0.5)")
}

// TestQuadraticTerm_Accessors verifies index guard and linear-family nil.
func TestQuadraticTerm_Accessors(t *testing.T) {
	shared, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	clf, err := discriminant.NewLinear([][]float64{{0, 0}, {1, 1}}, shared, equalPriors)
	require.NoError(t, err)
	assert.True(t, clf.IsLinear())
	assert.Equal(t, 2, clf.NumClasses())
	assert.Equal(t, 2, clf.Dim())

	q, err := clf.QuadraticTerm(0)
	assert.NoError(t, err)
	assert.Nil(t, q, "linear family has identically zero quadratic terms")

	_, err = clf.QuadraticTerm(5)
	assert.ErrorIs(t, err, discriminant.ErrClassIndex)
}
