// Package mi: mutual information for heterogeneous (mixed-type) tables.
package mi

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// entropyEpsilon stabilizes the differential-entropy term against
// zero-variance buckets (a single sample, or all-identical values).
const entropyEpsilon = 1e-4

// Mixed computes the full pairwise mutual-information matrix of a table
// whose columns mix categorical and continuous variables. categorical[f]
// marks column f as discrete; the remaining columns are treated as Gaussian.
// Options apply to the embedded categorical estimator (alpha, chunking).
//
// Steps:
//  1. Partition column indices into a continuous set C and a discrete set D.
//  2. Fill the C×C block via Gaussian when |C| > 1.
//  3. Fill the D×D block via Categorical on the discrete slice when |D| > 1
//     (category count inferred from the slice unless declared).
//  4. For every cross pair (c, d), decompose through the conditional entropy:
//     I(c,d) = H(c) − Σ_k P(d=k)·H(c | d=k),
//     modeling H as differential Gaussian entropy
//     H(x) = ½·(log(2π·Var(x) + ε) + 1) with population variance and
//     ε = entropyEpsilon. A category with zero occurrences carries zero
//     probability mass and contributes exactly 0; its (undefined) entropy
//     term is never evaluated, so no NaN can enter the sum.
//  5. The diagonal is zero by construction.
//
// Error Conditions:
//   - ErrMaskLength — mask length differs from the column count.
//   - ErrTooFewColumns, ErrTooFewSamples — degenerate shapes.
//   - ErrNegativeCategory, ErrCategoryRange, ErrOptionViolation — from the
//     embedded categorical estimator.
//
// Complexity: O(S·F²) time plus the embedded estimators' costs.
func Mixed(data mat.Matrix, categorical []bool, opts ...Option) (*mat.SymDense, error) {
	rows, cols := data.Dims()
	if len(categorical) != cols {
		return nil, ErrMaskLength
	}
	if cols < 2 {
		return nil, ErrTooFewColumns
	}
	if rows < 1 {
		return nil, ErrTooFewSamples
	}

	// 1. Partition column indices in ascending order.
	var cont, disc []int
	for f := 0; f < cols; f++ {
		if categorical[f] {
			disc = append(disc, f)
		} else {
			cont = append(cont, f)
		}
	}

	out := mat.NewSymDense(cols, nil)

	// 2. Continuous block under the multivariate-Gaussian assumption.
	if len(cont) > 1 {
		block, err := Gaussian(sliceColumns(data, cont))
		if err != nil {
			return nil, err
		}
		for a, fa := range cont {
			for b := a + 1; b < len(cont); b++ {
				out.SetSym(fa, cont[b], block.At(a, b))
			}
		}
	}

	// 3. Discrete block via the smoothed categorical estimator.
	if len(disc) > 1 {
		block, err := Categorical(sliceColumns(data, disc), opts...)
		if err != nil {
			return nil, err
		}
		for a, fa := range disc {
			for b := a + 1; b < len(disc); b++ {
				out.SetSym(fa, disc[b], block.At(a, b))
			}
		}
	}
	if len(cont) == 0 || len(disc) == 0 {
		return out, nil
	}

	// 4. Cross pairs: bucket every continuous column by every discrete one.
	discCodes, err := extractCodes(sliceColumns(data, disc))
	if err != nil {
		return nil, err
	}
	for _, fc := range cont {
		xs := columnValues(data, fc)
		marginal := gaussianEntropy(xs)
		for di, fd := range disc {
			kd := 1
			for _, v := range discCodes[di] {
				if v+1 > kd {
					kd = v + 1
				}
			}
			buckets := make([][]float64, kd)
			for s, v := range discCodes[di] {
				buckets[v] = append(buckets[v], xs[s])
			}
			// H(c|d) = Σ_k P(d=k)·H(c | d=k); empty buckets contribute 0.
			var conditional float64
			for _, bucket := range buckets {
				if len(bucket) == 0 {
					continue
				}
				p := float64(len(bucket)) / float64(rows)
				conditional += p * gaussianEntropy(bucket)
			}
			out.SetSym(fc, fd, marginal-conditional)
		}
	}
	return out, nil
}

// gaussianEntropy models the differential entropy of xs as if it were
// Gaussian: ½·(log(2π·Var + ε) + 1), population variance, ε-stabilized
// against degenerate (constant or single-sample) inputs.
func gaussianEntropy(xs []float64) float64 {
	v := stat.PopVariance(xs, nil)
	return 0.5 * (math.Log(2*math.Pi*v+entropyEpsilon) + 1)
}

// sliceColumns copies the selected columns of data into a dense
// (rows × len(idx)) matrix, preserving their relative order.
func sliceColumns(data mat.Matrix, idx []int) *mat.Dense {
	rows, _ := data.Dims()
	sub := mat.NewDense(rows, len(idx), nil)
	for j, f := range idx {
		for s := 0; s < rows; s++ {
			sub.Set(s, j, data.At(s, f))
		}
	}
	return sub
}

// columnValues copies column f of data into a fresh slice.
func columnValues(data mat.Matrix, f int) []float64 {
	rows, _ := data.Dims()
	xs := make([]float64, rows)
	for s := 0; s < rows; s++ {
		xs[s] = data.At(s, f)
	}
	return xs
}
