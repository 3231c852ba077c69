// Package chowliu defines the input-type tags, the learned-tree result
// type, configuration options, and sentinel errors for the orchestrator.
package chowliu

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Kind tags the distributional assumption applied uniformly to all columns
// on the single-tag path of Learn. For per-column mixtures use LearnMixed.
type Kind string

const (
	// Categorical treats every column as integer category codes.
	Categorical Kind = "categorical"

	// Gaussian treats every column as a continuous measurement.
	Gaussian Kind = "gaussian"
)

// Sentinel errors for the orchestrator boundary. Validation failures are
// raised here before any estimator runs; no partial computation happens.
var (
	// ErrNoData is returned when data has no rows or no columns.
	ErrNoData = errors.New("chowliu: data must have at least one row and one column")

	// ErrRootOutOfRange is returned when a forced root is not a valid
	// column index.
	ErrRootOutOfRange = errors.New("chowliu: root index out of range")

	// ErrUnsupportedKind is returned when the input-type tag is neither
	// Categorical nor Gaussian.
	ErrUnsupportedKind = errors.New("chowliu: unsupported input kind")

	// ErrBinsWithoutCategories is returned when bin-rescaling is requested
	// without a declared category count; the bin width cannot be derived.
	ErrBinsWithoutCategories = errors.New("chowliu: NumBins requires NumCategories")

	// ErrBadBins is returned when NumBins exceeds NumCategories.
	ErrBadBins = errors.New("chowliu: NumBins must not exceed NumCategories")

	// ErrMaskLength is returned by LearnMixed when the categorical mask
	// length does not equal the column count.
	ErrMaskLength = errors.New("chowliu: categorical mask length must match column count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chowliu: invalid option supplied")
)

// Converter turns a learned predecessor array (root marked −1) and its BFS
// order into a richer structure for downstream model construction. The
// conversion itself is an external collaborator; chowliu only guarantees
// the predecessor array describes a valid single-rooted tree over all
// column indices.
type Converter func(predecessors, order []int) (interface{}, error)

// Tree is the learned Chow-Liu dependency tree.
type Tree struct {
	// Root is the index of the root column.
	Root int

	// Predecessors holds the parent column of every column; the root's
	// entry is −1.
	Predecessors []int

	// Order is a breadth-first visitation order from Root.
	Order []int

	// Weight is the total mutual information carried by the tree's edges.
	Weight float64

	// MI is the pairwise mutual-information matrix the tree was derived
	// from (symmetric, zero diagonal). Nil for single-column inputs, where
	// no estimation runs.
	MI *mat.SymDense

	// Structure holds the Converter's output when one was supplied via
	// WithConverter; nil otherwise.
	Structure interface{}
}

// Option configures Learn and LearnMixed via functional arguments.
// Invalid values are recorded internally and surfaced as ErrOptionViolation
// before any estimation runs.
type Option func(*Options)

// Options holds the tunable parameters of the orchestrator.
type Options struct {
	// Root forces the tree root to this column index; −1 selects the root
	// automatically by eccentricity minimization.
	Root int

	// ChunkSize bounds the rows per counting pass on the categorical path;
	// 0 means all rows at once. A memory knob only — never changes results.
	ChunkSize int

	// NumCategories declares the category cardinality; 0 means inferred.
	NumCategories int

	// NumBins, when positive on the categorical path, rescales category
	// codes into coarser bins by integer floor-division with bin width
	// NumCategories / NumBins. Requires NumCategories.
	NumBins int

	// Alpha is the Laplace smoothing factor for categorical estimation.
	Alpha float64

	// Convert, when non-nil, receives the learned predecessor array and
	// BFS order; its result lands in Tree.Structure.
	Convert Converter

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - automatic root selection
//   - no chunking, inferred categories, no binning
//   - Alpha = mi.DefaultAlpha
//   - no structural conversion.
func DefaultOptions() Options {
	return Options{
		Root:          -1,
		ChunkSize:     0,
		NumCategories: 0,
		NumBins:       0,
		Alpha:         defaultAlpha,
	}
}

// WithRoot forces the tree root to column r.
//
//	r >= 0: root at r (validated against the column count)
//	r < 0:  invalid option → ErrOptionViolation
func WithRoot(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: Root must be non-negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Root = r
	}
}

// WithChunkSize bounds the rows accumulated per counting pass.
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

// WithNumCategories declares the category cardinality explicitly.
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

// WithNumBins rescales categorical codes into b coarser bins before
// estimation (categorical path only; requires WithNumCategories). The bin
// width is NumCategories / b by integer division, so the rescaled codes
// stay within b values only when that width divides NumCategories evenly;
// an uneven width leaves one extra partially filled bin.
//
//	b >= 1: rescale into b bins
//	b < 1:  invalid option → ErrOptionViolation
func WithNumBins(b int) Option {
	return func(o *Options) {
		if b < 1 {
			o.err = fmt.Errorf("%w: NumBins must be at least 1 (%d)", ErrOptionViolation, b)
			return
		}
		o.NumBins = b
	}
}

// WithAlpha sets the Laplace smoothing factor for categorical estimation.
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

// WithConverter registers the external structural converter; its output is
// stored in Tree.Structure. A nil fn is ignored.
func WithConverter(fn Converter) Option {
	return func(o *Options) {
		if fn != nil {
			o.Convert = fn
		}
	}
}
