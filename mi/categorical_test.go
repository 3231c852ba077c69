package mi_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/chowliu/mi"
)

// randomCategoricalData builds an (n × f) matrix of random codes in [0, k).
func randomCategoricalData(n, f, k int, seed int64) *mat.Dense {
	r := rand.New(rand.NewSource(seed))
	data := mat.NewDense(n, f, nil)
	for s := 0; s < n; s++ {
		for j := 0; j < f; j++ {
			data.Set(s, j, float64(r.Intn(k)))
		}
	}
	return data
}

// assertMIMatrix checks the shared postconditions of every estimator:
// square, symmetric, exact-zero diagonal, finite entries.
func assertMIMatrix(t *testing.T, m *mat.SymDense, f int) {
	t.Helper()
	require.Equal(t, f, m.SymmetricDim())
	for i := 0; i < f; i++ {
		assert.Zero(t, m.At(i, i), "diagonal must be exactly zero")
		for j := 0; j < f; j++ {
			assert.Equal(t, m.At(j, i), m.At(i, j), "matrix must be symmetric")
			assert.False(t, math.IsNaN(m.At(i, j)) || math.IsInf(m.At(i, j), 0),
				"entries must be finite")
		}
	}
}

// TestCategorical_HandComputedPair pins the smoothed estimator to an exact
// hand-derived value on the smallest perfectly correlated dataset.
func TestCategorical_HandComputedPair(t *testing.T) {
	// Two samples, two features, always equal: (0,0) and (1,1).
	data := mat.NewDense(2, 2, []float64{
		0, 0,
		1, 1,
	})
	m, err := mi.Categorical(data)
	require.NoError(t, err)

	// n=2, K=2, alpha=0.01: denom = 2 + 4·0.01, marginals all 0.5,
	// matching joints (1+0.01)/denom, mismatching (0+0.01)/denom.
	denom := 2 + 4*0.01
	hit := (1 + 0.01) / denom
	miss := 0.01 / denom
	want := 2*hit*math.Log(hit/0.25) + 2*miss*math.Log(miss/0.25)

	assert.InDelta(t, want, m.At(0, 1), 1e-12)
	assertMIMatrix(t, m, 2)
}

// TestCategorical_NonNegativeSymmetricZeroDiag verifies the matrix
// invariants on random data, including non-negativity of the smoothed
// estimator (a true KL divergence for any alpha > 0).
func TestCategorical_NonNegativeSymmetricZeroDiag(t *testing.T) {
	data := randomCategoricalData(500, 6, 4, 3)
	m, err := mi.Categorical(data)
	require.NoError(t, err)

	assertMIMatrix(t, m, 6)
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			assert.GreaterOrEqual(t, m.At(i, j), -1e-12, "MI must be non-negative up to rounding")
		}
	}
}

// TestCategorical_ChunkInvariance verifies element-wise equality between
// all-at-once counting and one-row-at-a-time counting.
func TestCategorical_ChunkInvariance(t *testing.T) {
	data := randomCategoricalData(311, 5, 3, 4)

	full, err := mi.Categorical(data)
	require.NoError(t, err)
	single, err := mi.Categorical(data, mi.WithChunkSize(1))
	require.NoError(t, err)
	odd, err := mi.Categorical(data, mi.WithChunkSize(97))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			assert.InDelta(t, full.At(i, j), single.At(i, j), 1e-12)
			assert.InDelta(t, full.At(i, j), odd.At(i, j), 1e-12)
		}
	}
}

// TestCategorical_CorrelatedPairDominates checks that a perfectly
// correlated feature pair carries far more MI than independent pairs.
func TestCategorical_CorrelatedPairDominates(t *testing.T) {
	const n = 1000
	r := rand.New(rand.NewSource(5))
	data := mat.NewDense(n, 4, nil)
	for s := 0; s < n; s++ {
		v := float64(r.Intn(3))
		data.Set(s, 0, v)
		data.Set(s, 1, v) // feature 1 mirrors feature 0
		data.Set(s, 2, float64(r.Intn(3)))
		data.Set(s, 3, float64(r.Intn(3)))
	}

	m, err := mi.Categorical(data)
	require.NoError(t, err)

	strong := m.At(0, 1)
	for _, pair := range [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}} {
		assert.Greater(t, strong, 10*m.At(pair[0], pair[1]),
			"correlated pair must dominate independent pair (%d,%d)", pair[0], pair[1])
	}
}

// TestCategorical_DeclaredCategories checks that declaring K = max code + 1
// matches inference, and that under-declaring K is rejected.
func TestCategorical_DeclaredCategories(t *testing.T) {
	data := randomCategoricalData(200, 3, 4, 6)

	inferred, err := mi.Categorical(data)
	require.NoError(t, err)
	declared, err := mi.Categorical(data, mi.WithNumCategories(4))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, inferred.At(i, j), declared.At(i, j))
		}
	}

	_, err = mi.Categorical(data, mi.WithNumCategories(2))
	assert.ErrorIs(t, err, mi.ErrCategoryRange)
}

// TestCategorical_Validation covers shape and code validation.
func TestCategorical_Validation(t *testing.T) {
	_, err := mi.Categorical(mat.NewDense(5, 1, nil))
	assert.ErrorIs(t, err, mi.ErrTooFewColumns)

	bad := mat.NewDense(2, 2, []float64{0, 1, -3, 0})
	_, err = mi.Categorical(bad)
	assert.ErrorIs(t, err, mi.ErrNegativeCategory)
}

// TestCategorical_OptionViolations ensures invalid option values surface as
// ErrOptionViolation before any computation.
func TestCategorical_OptionViolations(t *testing.T) {
	data := randomCategoricalData(10, 2, 2, 7)

	_, err := mi.Categorical(data, mi.WithAlpha(0))
	assert.ErrorIs(t, err, mi.ErrOptionViolation)
	_, err = mi.Categorical(data, mi.WithChunkSize(0))
	assert.ErrorIs(t, err, mi.ErrOptionViolation)
	_, err = mi.Categorical(data, mi.WithNumCategories(0))
	assert.ErrorIs(t, err, mi.ErrOptionViolation)
}
