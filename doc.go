// Package chowliu learns the maximum-weight dependency tree over the
// columns of a tabular dataset — the Chow-Liu tree — using pairwise mutual
// information as the edge weight.
//
// 🚀 What is chowliu?
//
//	A small, deterministic structure-learning library that brings together:
//		• Mutual-information estimation: categorical (smoothed counts),
//		  continuous (Gaussian closed form), and heterogeneous mixtures
//		• Memory-bounded counting: chunked accumulation of joint histograms
//		  for high-cardinality categorical data
//		• Tree extraction: maximum spanning tree with eccentricity-based
//		  root selection, canonicalized into a predecessor array + BFS order
//
// ✨ Why choose chowliu?
//
//   - Numerically safe – smoothing and epsilon guards by construction;
//     finite outputs for every finite input
//   - Deterministic – all tie-breaks resolve toward lower indices
//   - Pure Go – built on gonum for the array/statistics primitives
//
// Under the hood, everything is organized under two subpackages plus the
// orchestrating root:
//
//	mi/       — pairwise mutual-information estimators (counts, Gaussian, mixed)
//	spantree/ — maximum-spanning-tree extraction and rooted canonicalization
//	(root)    — Learn / LearnMixed: validation, dispatch, binning, conversion
//
// Quick sketch:
//
//	data → MI matrix → maximum spanning tree → predecessor array (+ BFS order)
//
// The resulting predecessor array (root marked −1) is ready for a
// downstream structural converter; supply one via WithConverter to receive
// a richer tree object in the same call.
//
// Dive into the package docs of mi and spantree for algorithmic detail, and
// into the example_test.go files for runnable usage.
package chowliu
