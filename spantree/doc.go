// Package spantree extracts a maximum-weight spanning tree from a symmetric
// weight matrix and canonicalizes it into a rooted predecessor array plus a
// breadth-first visitation order.
//
// What & Why
//
//   - What is a maximum spanning tree here?
//     The input is a dense symmetric matrix of pairwise affinity weights
//     (typically mutual information; see the mi package), interpreted as a
//     complete undirected graph over the n variable indices. The maximum
//     spanning tree keeps the n−1 edges of largest total weight — for MI
//     weights this is exactly the Chow-Liu dependency tree.
//
//   - Why a predecessor array?
//     Downstream structure builders consume trees in array form: entry r
//     holds the parent index of node r, and the root's entry is −1. Paired
//     with a breadth-first order it fully describes a layered rooted tree.
//
// Algorithm
//
//  1. Reduce maximum to minimum: every weight w becomes the cost −(w+1).
//     The +1 shift keeps all costs strictly negative for non-negative
//     weights, so a standard minimum-spanning-tree pass over the costs
//     selects the maximum-weight tree.
//  2. Run Prim's algorithm from index 0 with a min-heap of candidate edges,
//     exactly as in the classic dense-graph formulation. Ties on cost break
//     toward the smaller endpoint index, which makes the selected tree
//     deterministic for any input.
//  3. Select the root. When none is forced, pick the tree center: run an
//     unweighted breadth-first pass from every node over the tree's edges,
//     record each node's eccentricity (its maximum distance to any other
//     node), and take the lowest index among the minimizers. A central root
//     keeps the rooted tree shallow.
//  4. Canonicalize: breadth-first traversal from the root over the
//     undirected tree edges (neighbors in ascending index order) yields the
//     visitation Order and the Predecessors array; Predecessors[root] is
//     set to −1 explicitly.
//
// Determinism
//
// All tie-breaks (heap ordering, root selection, neighbor ordering) resolve
// toward lower indices, so equal-weight inputs always produce the same tree.
//
// Error Conditions
//
//   - ErrEmptyMatrix     — the weight matrix has order zero.
//   - ErrInvalidWeight   — a weight is NaN or ±Inf.
//   - ErrRootOutOfRange  — a forced root index is outside [0, n).
//   - ErrOptionViolation — an Option carried an invalid value.
//
// Complexity: O(n² log n) for the Prim pass on a complete graph and O(n²)
// for root selection; O(n²) transient memory for candidate edges.
package spantree
