// Package mi defines tunable options and error definitions for the
// mutual-information estimators.
package mi

import (
	"errors"
	"fmt"
)

// Sentinel errors for MI estimation.
var (
	// ErrTooFewColumns is returned when data has fewer than two columns;
	// pairwise mutual information needs at least one pair.
	ErrTooFewColumns = errors.New("mi: at least two columns required")

	// ErrTooFewSamples is returned when data has too few rows for the
	// requested estimator (none for Categorical, fewer than two for Gaussian).
	ErrTooFewSamples = errors.New("mi: not enough samples")

	// ErrNegativeCategory is returned when a categorical entry decodes to a
	// negative category code.
	ErrNegativeCategory = errors.New("mi: negative category code")

	// ErrCategoryRange is returned when an observed code is not below the
	// declared number of categories.
	ErrCategoryRange = errors.New("mi: category code exceeds declared number of categories")

	// ErrMaskLength is returned by Mixed when the categorical mask length
	// does not equal the number of columns.
	ErrMaskLength = errors.New("mi: categorical mask length must match column count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mi: invalid option supplied")
)

// DefaultAlpha is the Laplace smoothing factor applied by Categorical when
// WithAlpha is not supplied.
const DefaultAlpha = 0.01

// Option configures the categorical estimator via functional arguments.
// Invalid values (e.g. a non-positive alpha) are recorded internally and
// surfaced as ErrOptionViolation when the estimator is invoked.
type Option func(*Options)

// Options holds the tunable parameters of the categorical estimator.
type Options struct {
	// Alpha is the Laplace smoothing factor; must be strictly positive.
	Alpha float64

	// NumCategories declares the category cardinality K. A value of 0 means
	// "infer from data" (max observed code + 1).
	NumCategories int

	// ChunkSize bounds how many rows are accumulated per counting pass.
	// A value of 0 means "all rows at once". Purely a memory knob: results
	// are identical for every chunk size.
	ChunkSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Alpha = DefaultAlpha (0.01)
//   - NumCategories = 0 (inferred)
//   - ChunkSize = 0 (no chunking).
func DefaultOptions() Options {
	return Options{
		Alpha:         DefaultAlpha,
		NumCategories: 0,
		ChunkSize:     0,
	}
}

// WithAlpha sets the Laplace smoothing factor.
//
//	a > 0:  use a as the smoothing factor
//	a <= 0: invalid option → ErrOptionViolation
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if a <= 0 {
			o.err = fmt.Errorf("%w: Alpha must be positive (%v)", ErrOptionViolation, a)
			return
		}
		o.Alpha = a
	}
}

// WithNumCategories declares the category cardinality explicitly instead of
// inferring it from the data.
//
//	k >= 1: use k categories
//	k < 1:  invalid option → ErrOptionViolation
func WithNumCategories(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: NumCategories must be at least 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.NumCategories = k
	}
}

// WithChunkSize bounds the number of rows accumulated per counting pass.
//
//	c >= 1: accumulate at most c rows at a time
//	c < 1:  invalid option → ErrOptionViolation
func WithChunkSize(c int) Option {
	return func(o *Options) {
		if c < 1 {
			o.err = fmt.Errorf("%w: ChunkSize must be at least 1 (%d)", ErrOptionViolation, c)
			return
		}
		o.ChunkSize = c
	}
}
