// Package kclique finds overlapping k-clique communities in a
// core.Graph via clique percolation.
//
// What
//
//   - A k-clique community is the union of all maximal cliques of size
//     ≥ k that are transitively linked by sharing at least k−1 vertices.
//   - Communities may overlap: a vertex can belong to several
//     communities at once. The result is therefore a collection of
//     independent vertex sets, never a partition-style labeling.
//   - Vertices covered by no clique of size ≥ k appear in no community.
//
// Why
//
//	Unlike strict partitioning methods, clique percolation captures the
//	reality that tightly-knit groups share members: a vertex sitting in
//	two overlapping cliques is reported in both communities rather than
//	forced into one.
//
// Algorithm
//
//  1. Enumerate maximal cliques of size ≥ k (package cliques,
//     Bron–Kerbosch with pivoting).
//  2. Join cliques sharing ≥ k−1 vertices in a disjoint-set forest
//     (union by rank, path compression).
//  3. Emit the union of each forest component's clique vertex sets as
//     one community.
//
// Determinism
//
//	Vertices are sorted within each community, and communities are
//	ordered by their first (minimum) vertex, so repeated invocations on
//	an unmodified graph return identical results.
//
// Complexity (V = |vertices|, E = |edges|, C = qualifying cliques)
//
//   - Clique enumeration dominates: O(3^(V/3)) worst case.
//   - Percolation: O(C² · s) pair overlap checks, s = max clique size.
//   - Memory: O(V + E + Σ clique sizes).
//
// Usage
//
//	comms, err := kclique.Communities(g, 3)
//	if err != nil {
//	    // handle ErrNilGraph, ErrKTooSmall, or ctx errors
//	}
//
// Errors
//
//   - ErrNilGraph  if the graph pointer is nil.
//   - ErrKTooSmall if k < 2 (rejected before any computation).
//   - context.Canceled / DeadlineExceeded from the supplied context.
package kclique
