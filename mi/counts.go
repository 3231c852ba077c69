// Package mi: pairwise joint-count accumulation for discrete variables.
package mi

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// extractCodes reads an integer-coded (samples × features) matrix into a
// column-major [][]int (codes[f][s] = category of feature f in sample s).
// Fractional values are truncated toward zero, mirroring an integer cast.
// Returns ErrNegativeCategory if any entry decodes below zero.
// Complexity: O(S·F) time, O(S·F) memory.
func extractCodes(data mat.Matrix) ([][]int, error) {
	rows, cols := data.Dims()
	codes := make([][]int, cols)
	for f := 0; f < cols; f++ {
		col := make([]int, rows)
		for s := 0; s < rows; s++ {
			v := int(data.At(s, f))
			if v < 0 {
				return nil, fmt.Errorf("%w: data[%d,%d] = %v", ErrNegativeCategory, s, f, data.At(s, f))
			}
			col[s] = v
		}
		codes[f] = col
	}
	return codes, nil
}

// maxCode returns the largest category code present in codes.
// Complexity: O(S·F).
func maxCode(codes [][]int) int {
	m := 0
	for _, col := range codes {
		for _, v := range col {
			if v > m {
				m = v
			}
		}
	}
	return m
}

// jointCounts accumulates the joint occurrence tensor over every ordered
// feature pair: entry (i, j, a, b) counts samples where feature i has code a
// and feature j has code b. The tensor is returned as a flat row-major
// slice of shape (F, F, K, K); see countIndex for the layout.
//
// Samples are processed in consecutive chunks of at most chunk rows. The
// chunking exists solely to bound how much of the sample axis is in flight
// per accumulation pass; the resulting counts are identical for every chunk
// size (verified in counts_test.go).
//
// Invariant: counts(i, j, a, b) == counts(j, i, b, a), and the diagonal
// block counts(i, i, a, a) holds the marginal count of code a in feature i.
//
// Complexity: O(S·F²) time, O(F²·K²) memory for the tensor.
func jointCounts(codes [][]int, k, chunk int) []int64 {
	f := len(codes)
	n := 0
	if f > 0 {
		n = len(codes[0])
	}
	if chunk <= 0 || chunk > n {
		chunk = n
	}

	counts := make([]int64, f*f*k*k)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		// Accumulate this chunk's histogram for every ordered pair (i, j).
		for i := 0; i < f; i++ {
			ci := codes[i]
			for j := 0; j < f; j++ {
				cj := codes[j]
				base := (i*f + j) * k * k
				for s := start; s < end; s++ {
					counts[base+ci[s]*k+cj[s]]++
				}
			}
		}
	}
	return counts
}

// countIndex maps tensor coordinates (i, j, a, b) to the flat slice offset
// used by jointCounts. Complexity: O(1).
func countIndex(f, k, i, j, a, b int) int {
	return ((i*f+j)*k+a)*k + b
}
