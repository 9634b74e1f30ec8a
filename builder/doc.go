// Package builder provides deterministic graph generators for tests,
// benchmarks, and experiments with the cloven community algorithms.
//
// What
//
//   - Classic topologies: Complete (K_n), Cycle (C_n), Path (P_n),
//     Star (hub + leaves).
//   - Caveman: a ring of complete cliques joined by single bridge edges —
//     the canonical community-detection fixture.
//   - RandomSparse: Erdős–Rényi G(n,p) with an explicit seed.
//
// Determinism
//
//	Every generator produces identical graphs for identical inputs:
//	vertex IDs follow a fixed scheme (prefix + index, "v0", "v1", ...),
//	edges are emitted in lexicographic pair order, and stochastic
//	generators take their seed as an argument rather than from global
//	state.
//
// Weights
//
//	With WithWeighted(), the generated graph accepts weights and every
//	emitted edge carries weight 1 (uniform), matching the default weight
//	model of the community algorithms.
//
// Errors
//
//   - ErrTooFewVertices    – a size parameter is below the minimum.
//   - ErrInvalidProbability – p outside the closed interval [0,1].
package builder
