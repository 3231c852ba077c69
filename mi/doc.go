// Package mi estimates pairwise mutual information over the columns of a
// tabular dataset, producing the symmetric weight matrix consumed by
// spanning-tree structure learners (see the spantree and chowliu packages).
//
// What & Why
//
//   - What is mutual information (MI)?
//     For two random variables X and Y, MI(X,Y) measures how much knowing one
//     reduces uncertainty about the other: 0 when they are independent, and
//     larger for stronger dependence. A matrix of pairwise MI values is the
//     standard edge-weight input for Chow-Liu tree learning.
//
//   - Why three estimators?
//     Real tabular data mixes variable types. Discrete codes call for a
//     count-based plug-in estimator; continuous measurements call for a
//     closed-form Gaussian estimator; heterogeneous tables need both plus a
//     cross-type bridge.
//
// Estimators Provided
//
//   - Categorical(data, ...Option) (*mat.SymDense, error)
//
//   - Strategy: accumulate a joint occurrence tensor over every feature pair
//     (chunked over samples to bound peak memory), apply Laplace smoothing
//     with factor alpha, and sum joint·(log joint − log marginal·marginal)
//     over all category pairs.
//
//   - Complexity: O(S·F²) counting time for S samples and F features,
//     O(F²·K²) memory for K categories. The chunk size only bounds how many
//     rows are touched per accumulation pass; it never changes the result.
//
//   - Gaussian(data) (*mat.SymDense, error)
//
//   - Strategy: Pearson correlation matrix over the columns, then the
//     closed-form MI between jointly Gaussian variables,
//     MI(i,j) = −½·log(1−ρ²). Correlation is delegated to gonum/stat.
//
//   - Complexity: O(S·F²) time, O(F²) memory.
//
//   - Mixed(data, categorical, ...Option) (*mat.SymDense, error)
//
//   - Strategy: partition columns by the categorical mask; fill the
//     continuous block via Gaussian, the discrete block via Categorical, and
//     each cross pair via the conditional-entropy decomposition
//     I(C,D) = H(C) − Σ_k P(D=k)·H(C | D=k) with Gaussian differential
//     entropies.
//
// Numerical Contract
//
// Every estimator returns a symmetric matrix with an exact-zero diagonal and
// only finite entries. Degenerate inputs are absorbed by construction rather
// than recovered from after the fact:
//
//   - Laplace smoothing (alpha > 0) keeps every probability strictly positive,
//     so no log(0) can occur in the categorical path.
//   - Correlations of ±1 are clamped just inside the unit interval, so
//     perfectly correlated columns yield a large finite MI instead of +Inf.
//   - Zero-variance columns produce a correlation of 0 (independence
//     convention) instead of NaN.
//   - Conditional entropies over empty category buckets contribute exactly 0,
//     weighted by their zero probability mass.
//
// Error Conditions
//
//   - ErrTooFewColumns  — fewer than two columns; pairwise MI is undefined.
//   - ErrTooFewSamples  — no rows (Categorical) or fewer than two (Gaussian).
//   - ErrNegativeCategory — a categorical entry decodes to a negative code.
//   - ErrCategoryRange  — a code is outside the declared number of categories.
//   - ErrMaskLength     — the categorical mask does not match the column count.
//   - ErrOptionViolation — an Option carried an invalid value.
//
// For usage, see example_test.go; for the downstream consumers, see the
// spantree and chowliu packages.
package mi
