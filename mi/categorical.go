// Package mi: smoothed plug-in mutual information for categorical variables.
package mi

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Categorical computes the pairwise mutual-information matrix of an
// integer-coded (samples × features) matrix.
//
// Steps:
//  1. Validate: at least two columns, at least one row, options well-formed.
//  2. Decode category codes; infer K as max code + 1 unless declared via
//     WithNumCategories (declared K must cover every observed code).
//  3. Accumulate the joint occurrence tensor (chunked; see jointCounts).
//  4. Smooth: marginal = (count + K·alpha) / (S + K²·alpha),
//     joint = (count + alpha) / (S + K²·alpha). With alpha > 0 every
//     probability is strictly positive, so no log(0) can occur.
//  5. For each pair i < j, MI = Σ_ab joint·(log joint − log(mᵢ(a)·mⱼ(b))).
//     Diagonal entries are zero by convention (self-information excluded),
//     so the self-joint blocks are never evaluated.
//
// The smoothed joint of a pair is a proper distribution whose marginals are
// exactly the smoothed per-feature marginals, which makes each entry a true
// KL divergence and therefore non-negative up to floating-point rounding.
//
// Error Conditions:
//   - ErrTooFewColumns, ErrTooFewSamples — degenerate shapes.
//   - ErrNegativeCategory, ErrCategoryRange — invalid codes.
//   - ErrOptionViolation — invalid Option values.
//
// Complexity: O(S·F² + F²·K²) time, O(F²·K²) memory.
func Categorical(data mat.Matrix, opts ...Option) (*mat.SymDense, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows, cols := data.Dims()
	if cols < 2 {
		return nil, ErrTooFewColumns
	}
	if rows < 1 {
		return nil, ErrTooFewSamples
	}

	codes, err := extractCodes(data)
	if err != nil {
		return nil, err
	}
	k := o.NumCategories
	if observed := maxCode(codes) + 1; k == 0 {
		k = observed
	} else if observed > k {
		return nil, fmt.Errorf("%w: observed %d categories, declared %d", ErrCategoryRange, observed, k)
	}

	counts := jointCounts(codes, k, o.ChunkSize)

	// Smoothed marginals, read off the diagonal blocks of the tensor.
	denom := float64(rows) + float64(k*k)*o.Alpha
	logMarginals := make([][]float64, cols)
	for i := 0; i < cols; i++ {
		lm := make([]float64, k)
		for a := 0; a < k; a++ {
			m := (float64(counts[countIndex(cols, k, i, i, a, a)]) + float64(k)*o.Alpha) / denom
			lm[a] = math.Log(m)
		}
		logMarginals[i] = lm
	}

	out := mat.NewSymDense(cols, nil)
	for i := 0; i < cols; i++ {
		for j := i + 1; j < cols; j++ {
			base := (i*cols + j) * k * k
			var sum float64
			for a := 0; a < k; a++ {
				la := logMarginals[i][a]
				for b := 0; b < k; b++ {
					joint := (float64(counts[base+a*k+b]) + o.Alpha) / denom
					sum += joint * (math.Log(joint) - la - logMarginals[j][b])
				}
			}
			out.SetSym(i, j, sum)
		}
	}
	return out, nil
}
