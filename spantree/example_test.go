package spantree_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/chowliu/spantree"
)

// ExampleBuild demonstrates tree extraction from a small affinity matrix:
// the two heaviest edges of a triangle survive, and the shared endpoint
// becomes the root.
func ExampleBuild() {
	// 1. Pairwise affinities: 0-1 strong, 1-2 medium, 0-2 weak.
	w := mat.NewSymDense(3, nil)
	w.SetSym(0, 1, 3.0)
	w.SetSym(1, 2, 2.0)
	w.SetSym(0, 2, 1.0)

	// 2. Extract and root the maximum spanning tree.
	tr, err := spantree.Build(w)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Vertex 1 touches both chosen edges, so it is the tree center.
	fmt.Println("root:", tr.Root)
	fmt.Println("predecessors:", tr.Predecessors)
	fmt.Println("order:", tr.Order)
	fmt.Println("weight:", tr.Weight)
	// Output:
	// root: 1
	// predecessors: [1 -1 1]
	// order: [1 0 2]
	// weight: 5
}

// ExampleBuild_forcedRoot shows rerooting: the tree keeps the same edges
// and total weight, only the orientation changes.
func ExampleBuild_forcedRoot() {
	w := mat.NewSymDense(3, nil)
	w.SetSym(0, 1, 3.0)
	w.SetSym(1, 2, 2.0)
	w.SetSym(0, 2, 1.0)

	tr, err := spantree.Build(w, spantree.WithRoot(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("root:", tr.Root)
	fmt.Println("predecessors:", tr.Predecessors)
	fmt.Println("weight:", tr.Weight)
	// Output:
	// root: 2
	// predecessors: [1 2 -1]
	// weight: 5
}
