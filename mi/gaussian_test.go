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

// correlatedGaussianData draws n samples of three columns: column 1 carries
// correlation rho with column 0 and column 2 is independent noise.
func correlatedGaussianData(n int, rho float64, seed int64) *mat.Dense {
	r := rand.New(rand.NewSource(seed))
	data := mat.NewDense(n, 3, nil)
	noise := math.Sqrt(1 - rho*rho)
	for s := 0; s < n; s++ {
		x := r.NormFloat64()
		data.Set(s, 0, x)
		data.Set(s, 1, rho*x+noise*r.NormFloat64())
		data.Set(s, 2, r.NormFloat64())
	}
	return data
}

// TestGaussian_KnownCorrelation checks the closed form −½·log(1−ρ²) against
// sampled data with ρ = 0.9, and that independent pairs stay near zero.
func TestGaussian_KnownCorrelation(t *testing.T) {
	data := correlatedGaussianData(20000, 0.9, 11)

	m, err := mi.Gaussian(data)
	require.NoError(t, err)
	assertMIMatrix(t, m, 3)

	want := -0.5 * math.Log(1-0.81)
	assert.InDelta(t, want, m.At(0, 1), 0.1, "MI(0,1) must match the Gaussian closed form")
	assert.Less(t, m.At(0, 2), 0.02, "independent pair must stay near zero")
	assert.Less(t, m.At(1, 2), 0.02, "independent pair must stay near zero")
	assert.Greater(t, m.At(0, 1), 5*m.At(0, 2), "correlated pair must dominate")
}

// TestGaussian_CollinearColumnsStayFinite verifies the ρ → ±1 clamp:
// a duplicated column yields a large but finite MI, never +Inf.
func TestGaussian_CollinearColumnsStayFinite(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	data := mat.NewDense(100, 2, nil)
	for s := 0; s < 100; s++ {
		x := r.NormFloat64()
		data.Set(s, 0, x)
		data.Set(s, 1, x)
	}

	m, err := mi.Gaussian(data)
	require.NoError(t, err)
	assert.False(t, math.IsInf(m.At(0, 1), 0), "collinear MI must be clamped finite")
	assert.Greater(t, m.At(0, 1), 10.0, "collinear MI must still be very large")
}

// TestGaussian_ConstantColumn verifies the zero-variance convention:
// NaN correlations are treated as independence.
func TestGaussian_ConstantColumn(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	data := mat.NewDense(50, 2, nil)
	for s := 0; s < 50; s++ {
		data.Set(s, 0, r.NormFloat64())
		data.Set(s, 1, 5.0) // constant column, zero variance
	}

	m, err := mi.Gaussian(data)
	require.NoError(t, err)
	assert.Zero(t, m.At(0, 1), "zero-variance column must carry zero MI")
	assertMIMatrix(t, m, 2)
}

// TestGaussian_Validation covers the shape guards.
func TestGaussian_Validation(t *testing.T) {
	_, err := mi.Gaussian(mat.NewDense(10, 1, nil))
	assert.ErrorIs(t, err, mi.ErrTooFewColumns)

	_, err = mi.Gaussian(mat.NewDense(1, 3, []float64{1, 2, 3}))
	assert.ErrorIs(t, err, mi.ErrTooFewSamples)
}
