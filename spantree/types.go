// Package spantree defines the rooted-tree result type, configuration
// options, and sentinel errors for spanning-tree extraction.
package spantree

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree construction.
var (
	// ErrEmptyMatrix is returned when the weight matrix has order zero.
	ErrEmptyMatrix = errors.New("spantree: weight matrix is empty")

	// ErrInvalidWeight is returned when a weight is NaN or ±Inf.
	ErrInvalidWeight = errors.New("spantree: weight is NaN or Inf")

	// ErrRootOutOfRange is returned when a forced root index is outside [0, n).
	ErrRootOutOfRange = errors.New("spantree: root index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spantree: invalid option supplied")
)

// Tree is a rooted spanning tree in canonical array form.
type Tree struct {
	// Root is the index the tree is rooted at.
	Root int

	// Predecessors holds the parent index of every node; the root's entry
	// is −1. Exactly one entry is −1, and parent links from any node reach
	// Root in fewer than n steps.
	Predecessors []int

	// Order is a breadth-first visitation order from Root; a permutation of
	// all node indices, with every node appearing after its parent.
	Order []int

	// Weight is the total original weight of the tree's edges. Rerooting
	// the same tree never changes it.
	Weight float64
}

// Option configures tree construction via functional arguments.
// Invalid values are recorded internally and surfaced as ErrOptionViolation
// when Build is invoked.
type Option func(*Options)

// Options holds the tunable parameters of Build.
type Options struct {
	// Root forces the tree root to this index. A value of −1 selects the
	// root automatically by minimizing eccentricity.
	Root int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with automatic root selection.
func DefaultOptions() Options {
	return Options{Root: -1}
}

// WithRoot forces the tree root to index r.
//
//	r >= 0: root at r (validated against the matrix order in Build)
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
