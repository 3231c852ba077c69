// Package mi: closed-form mutual information under a Gaussian assumption.
package mi

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// maxRhoSquared keeps 1−ρ² strictly positive so perfectly correlated
// columns yield a large finite MI instead of +Inf.
const maxRhoSquared = 1 - 1e-12

// Gaussian computes the pairwise mutual-information matrix of a
// (samples × features) matrix of continuous measurements, assuming every
// pair of columns is jointly Gaussian.
//
// For jointly Gaussian X and Y with Pearson correlation ρ the mutual
// information has the closed form MI(X,Y) = −½·log(1−ρ²). The correlation
// matrix is delegated to gonum's stat.CorrelationMatrix, and 1−ρ² is
// evaluated via log1p for accuracy near |ρ| = 1.
//
// Degeneracy policy:
//   - ρ² is clamped to maxRhoSquared, so collinear columns stay finite.
//   - A NaN correlation (zero-variance column) is treated as ρ = 0.
//
// The diagonal is zero by convention (ρ(i,i) = 1 would otherwise diverge).
//
// Error Conditions:
//   - ErrTooFewColumns — fewer than two columns.
//   - ErrTooFewSamples — fewer than two rows (correlation undefined).
//
// Complexity: O(S·F²) time, O(F²) memory.
func Gaussian(data mat.Matrix) (*mat.SymDense, error) {
	rows, cols := data.Dims()
	if cols < 2 {
		return nil, ErrTooFewColumns
	}
	if rows < 2 {
		return nil, ErrTooFewSamples
	}

	corr := mat.NewSymDense(cols, nil)
	stat.CorrelationMatrix(corr, data, nil)

	out := mat.NewSymDense(cols, nil)
	for i := 0; i < cols; i++ {
		for j := i + 1; j < cols; j++ {
			rho := corr.At(i, j)
			if math.IsNaN(rho) {
				// Zero-variance column: independence convention.
				continue
			}
			r2 := rho * rho
			if r2 > maxRhoSquared {
				r2 = maxRhoSquared
			}
			out.SetSym(i, j, -0.5*math.Log1p(-r2))
		}
	}
	return out, nil
}
