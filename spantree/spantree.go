// Package spantree: Build ties the Prim pass, root selection, and BFS
// canonicalization together into the public entry point.
package spantree

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Build extracts the maximum-weight spanning tree of the symmetric weight
// matrix w and canonicalizes it into a rooted Tree.
//
// Steps:
//  1. Validate: non-empty matrix, finite weights, options well-formed,
//     forced root (if any) within [0, n).
//  2. Select the maximum spanning tree via the negated-cost Prim pass.
//  3. Choose the root: the forced index, or the eccentricity-minimizing
//     tree center (lowest index on ties).
//  4. Breadth-first traversal from the root produces Order and
//     Predecessors; Predecessors[root] is −1.
//
// Error Conditions:
//   - ErrEmptyMatrix, ErrInvalidWeight, ErrRootOutOfRange, ErrOptionViolation.
//
// Complexity: O(n² log n) time, O(n²) transient memory.
func Build(w mat.Symmetric, opts ...Option) (*Tree, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 1. Validate shape, root range, and weight finiteness.
	n := w.SymmetricDim()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if o.Root >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrRootOutOfRange, o.Root, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v := w.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: weight[%d,%d] = %v", ErrInvalidWeight, i, j, v)
			}
		}
	}

	// 2. Maximum spanning tree as undirected adjacency lists.
	adj, totalWeight := maximumSpanningTree(w)

	// 3. Root: forced index, or the tree center.
	root := o.Root
	if root < 0 {
		root = centerVertex(adj)
	}

	// 4. Canonical rooted form via breadth-first traversal.
	order, pred := bfsFrom(adj, root)
	pred[root] = -1

	return &Tree{
		Root:         root,
		Predecessors: pred,
		Order:        order,
		Weight:       totalWeight,
	}, nil
}

// centerVertex returns the tree center: the vertex minimizing eccentricity
// (maximum unweighted distance to any other vertex), lowest index on ties.
// Runs one BFS per vertex. Complexity: O(n²) over a tree.
func centerVertex(adj [][]int) int {
	best, bestEcc := 0, math.MaxInt
	for v := range adj {
		ecc := eccentricity(adj, v)
		if ecc < bestEcc {
			best, bestEcc = v, ecc
		}
	}
	return best
}

// eccentricity returns the maximum BFS depth reachable from start.
func eccentricity(adj [][]int, start int) int {
	depth := make([]int, len(adj))
	for i := range depth {
		depth[i] = -1
	}
	depth[start] = 0
	queue := []int{start}
	max := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if depth[v] < 0 {
				depth[v] = depth[u] + 1
				if depth[v] > max {
					max = depth[v]
				}
				queue = append(queue, v)
			}
		}
	}
	return max
}

// bfsFrom traverses the undirected tree breadth-first from start, visiting
// neighbors in ascending index order, and returns the visitation order plus
// the parent of every vertex (start's entry left at its zero value; Build
// overwrites it with the −1 sentinel).
func bfsFrom(adj [][]int, start int) (order, parent []int) {
	n := len(adj)
	order = make([]int, 0, n)
	parent = make([]int, n)
	seen := make([]bool, n)

	seen[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
	return order, parent
}
