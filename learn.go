// Package chowliu: the orchestrator dispatching on input type, invoking the
// appropriate mutual-information estimator, extracting the spanning tree,
// and optionally handing the result to a structural converter.
package chowliu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/chowliu/mi"
	"github.com/katalvlaran/chowliu/spantree"
)

// defaultAlpha mirrors the categorical estimator's default smoothing factor.
const defaultAlpha = mi.DefaultAlpha

// Learn learns the Chow-Liu dependency tree of data, treating every column
// under the single distributional tag kind.
//
// Steps:
//  1. Validate fast, before any estimation: options well-formed, data
//     non-empty, forced root (if any) a valid column index.
//  2. Dispatch on kind. Categorical: optionally rescale codes into coarser
//     bins (WithNumBins; requires WithNumCategories), then the smoothed
//     count estimator. Gaussian: the closed-form correlation estimator.
//     Any other tag → ErrUnsupportedKind.
//  3. Extract the maximum spanning tree, root it, and canonicalize.
//  4. When a Converter is registered, hand it the predecessor array and BFS
//     order; its output lands in Tree.Structure.
//
// A single-column dataset short-circuits to the trivial tree (Predecessors
// = [−1], Order = [0]) with no estimation.
//
// Error Conditions:
//   - ErrNoData, ErrRootOutOfRange, ErrBinsWithoutCategories, ErrBadBins,
//     ErrUnsupportedKind, ErrOptionViolation — orchestrator validation.
//   - Estimator and tree-builder errors propagate unchanged.
//
// Complexity: dominated by estimation, O(S·F²) time and O(F²·K²) memory on
// the categorical path (chunking bounds the per-pass sample work, not the
// count tensor itself).
func Learn(data mat.Matrix, kind Kind, opts ...Option) (*Tree, error) {
	o, err := buildOptions(data, opts)
	if err != nil {
		return nil, err
	}
	_, cols := data.Dims()
	if cols == 1 {
		return trivialTree(&o)
	}

	var weights *mat.SymDense
	switch kind {
	case Categorical:
		d, k, err := rebinned(data, &o)
		if err != nil {
			return nil, err
		}
		miOpts := []mi.Option{mi.WithAlpha(o.Alpha)}
		if k > 0 {
			miOpts = append(miOpts, mi.WithNumCategories(k))
		}
		if o.ChunkSize > 0 {
			miOpts = append(miOpts, mi.WithChunkSize(o.ChunkSize))
		}
		weights, err = mi.Categorical(d, miOpts...)
		if err != nil {
			return nil, err
		}
	case Gaussian:
		weights, err = mi.Gaussian(data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, string(kind))
	}
	return finish(weights, &o)
}

// LearnMixed learns the Chow-Liu dependency tree of a heterogeneous table;
// categorical[f] marks column f as discrete, the rest as Gaussian. Shares
// validation, tree extraction, and conversion with Learn.
//
// Error Conditions: ErrMaskLength plus everything Learn raises (binning
// options are ignored on this path, matching the per-column estimator).
func LearnMixed(data mat.Matrix, categorical []bool, opts ...Option) (*Tree, error) {
	o, err := buildOptions(data, opts)
	if err != nil {
		return nil, err
	}
	_, cols := data.Dims()
	if len(categorical) != cols {
		return nil, ErrMaskLength
	}
	if cols == 1 {
		return trivialTree(&o)
	}

	miOpts := []mi.Option{mi.WithAlpha(o.Alpha)}
	if o.ChunkSize > 0 {
		miOpts = append(miOpts, mi.WithChunkSize(o.ChunkSize))
	}
	weights, err := mi.Mixed(data, categorical, miOpts...)
	if err != nil {
		return nil, err
	}
	return finish(weights, &o)
}

// buildOptions folds the functional options and performs the fail-fast
// orchestrator validation shared by both entry points.
func buildOptions(data mat.Matrix, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	rows, cols := data.Dims()
	if rows < 1 || cols < 1 {
		return o, ErrNoData
	}
	if o.Root >= cols {
		return o, fmt.Errorf("%w: %d not in [0, %d)", ErrRootOutOfRange, o.Root, cols)
	}
	return o, nil
}

// rebinned applies the optional bin-rescaling of the categorical path:
// codes are floor-divided by width = NumCategories / NumBins, coarsening
// e.g. [0,255] into [0,7]. Returns the (possibly copied, never mutated)
// data together with the effective declared category count (0 = inferred).
func rebinned(data mat.Matrix, o *Options) (mat.Matrix, int, error) {
	if o.NumBins == 0 {
		return data, o.NumCategories, nil
	}
	if o.NumCategories == 0 {
		return nil, 0, ErrBinsWithoutCategories
	}
	if o.NumBins > o.NumCategories {
		return nil, 0, fmt.Errorf("%w: %d bins for %d categories", ErrBadBins, o.NumBins, o.NumCategories)
	}

	width := o.NumCategories / o.NumBins
	rows, cols := data.Dims()
	out := mat.NewDense(rows, cols, nil)
	for s := 0; s < rows; s++ {
		for f := 0; f < cols; f++ {
			// True floor division keeps invalid negative codes negative, so
			// the estimator still rejects them after rescaling.
			out.Set(s, f, math.Floor(data.At(s, f)/float64(width)))
		}
	}
	// Codes now live in [0, (NumCategories-1)/width]; declare that range so
	// smoothing matches the coarsened alphabet rather than the original one.
	return out, (o.NumCategories-1)/width + 1, nil
}

// finish runs tree extraction on the estimated weights and applies the
// optional structural conversion.
func finish(weights *mat.SymDense, o *Options) (*Tree, error) {
	var stOpts []spantree.Option
	if o.Root >= 0 {
		stOpts = append(stOpts, spantree.WithRoot(o.Root))
	}
	st, err := spantree.Build(weights, stOpts...)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		Root:         st.Root,
		Predecessors: st.Predecessors,
		Order:        st.Order,
		Weight:       st.Weight,
		MI:           weights,
	}
	if o.Convert != nil {
		s, err := o.Convert(t.Predecessors, t.Order)
		if err != nil {
			return nil, fmt.Errorf("chowliu: converter: %w", err)
		}
		t.Structure = s
	}
	return t, nil
}

// trivialTree handles the single-column dataset: the only variable is the
// root, no estimation runs, and the converter still applies.
func trivialTree(o *Options) (*Tree, error) {
	t := &Tree{
		Root:         0,
		Predecessors: []int{-1},
		Order:        []int{0},
	}
	if o.Convert != nil {
		s, err := o.Convert(t.Predecessors, t.Order)
		if err != nil {
			return nil, fmt.Errorf("chowliu: converter: %w", err)
		}
		t.Structure = s
	}
	return t, nil
}
