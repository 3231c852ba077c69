// Package spantree provides the Prim pass that selects the maximum-weight
// spanning tree of a dense symmetric weight matrix.
package spantree

import (
	"container/heap"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// maximumSpanningTree selects the maximum-weight spanning tree of the
// complete graph described by w, by running min-heap Prim over the negated,
// shifted costs −(w+1). Returns the tree as undirected adjacency lists
// (each sorted ascending) together with the total original edge weight.
//
// Steps:
//  1. Mark index 0 visited and push all its incident edges onto the heap.
//  2. While the tree has fewer than n−1 edges: pop the cheapest candidate;
//     skip it if its far endpoint is already in the tree (cycle); otherwise
//     adopt the edge, mark the endpoint visited, and push its incident
//     edges toward still-unvisited vertices.
//  3. Sort every adjacency list so later traversals are deterministic.
//
// The matrix describes a complete graph, so the pass always spans all n
// vertices. Complexity: O(n² log n) time, O(n²) transient memory.
func maximumSpanningTree(w mat.Symmetric) ([][]int, float64) {
	n := w.SymmetricDim()
	adj := make([][]int, n)
	if n < 2 {
		return adj, 0
	}

	visited := make([]bool, n)
	pq := &edgePQ{}
	heap.Init(pq)

	// 1. Seed the heap with every edge incident to vertex 0.
	visited[0] = true
	pushCandidates(pq, w, 0, visited)

	// 2. Grow the tree one cheapest candidate at a time.
	var totalWeight float64
	edges := 0
	for pq.Len() > 0 && edges < n-1 {
		e := heap.Pop(pq).(halfEdge)
		if visited[e.to] {
			// Far endpoint already spanned: adopting e would close a cycle.
			continue
		}
		visited[e.to] = true
		adj[e.from] = append(adj[e.from], e.to)
		adj[e.to] = append(adj[e.to], e.from)
		totalWeight += w.At(e.from, e.to)
		edges++
		pushCandidates(pq, w, e.to, visited)
	}

	// 3. Deterministic neighbor ordering for every later traversal.
	for v := range adj {
		sort.Ints(adj[v])
	}
	return adj, totalWeight
}

// pushCandidates pushes every edge from u to a not-yet-visited vertex onto
// the heap, using the negated shifted cost −(w+1). The shift keeps costs
// strictly negative for non-negative weights, so minimizing cost maximizes
// original weight.
func pushCandidates(pq *edgePQ, w mat.Symmetric, u int, visited []bool) {
	n := w.SymmetricDim()
	for v := 0; v < n; v++ {
		if !visited[v] {
			heap.Push(pq, halfEdge{from: u, to: v, cost: -(w.At(u, v) + 1)})
		}
	}
}

// halfEdge is a candidate edge from inside the growing tree (from) to an
// outside vertex (to), carrying its negated shifted cost.
type halfEdge struct {
	from, to int
	cost     float64
}

// edgePQ implements heap.Interface for a min-heap of halfEdge, ordered by
// cost with index tie-breaks for determinism.
type edgePQ []halfEdge

// Len returns the number of candidate edges in the heap.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by cost ascending; equal costs break toward the smaller far
// endpoint, then the smaller near endpoint, keeping tie resolution stable.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	if pq[i].to != pq[j].to {
		return pq[i].to < pq[j].to
	}
	return pq[i].from < pq[j].from
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate edge. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(halfEdge)) }

// Pop removes and returns the last element after heap adjustments.
// Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
