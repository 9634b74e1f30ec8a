// Package cliques enumerates the maximal cliques of a core.Graph using
// the Bron–Kerbosch algorithm with pivoting.
//
// What
//
//   - A clique is a vertex subset in which every pair is directly
//     connected; a maximal clique cannot be extended by any vertex.
//   - MaximalCliques returns every maximal clique of size ≥ MinSize as a
//     sorted [][]string.
//   - Supports a streaming hook (WithOnClique) fired once per clique in
//     enumeration order, and cooperative cancellation (WithContext).
//
// Why
//
//   - Maximal cliques are the raw material of clique-percolation
//     community detection (see package kclique): a k-clique community is
//     a union of size-≥k cliques chained by (k−1)-vertex overlaps.
//   - Enumeration with pivoting prunes the recursion so that only
//     branches able to produce a new maximal clique are explored.
//
// Determinism
//
//	Candidate vertices are always processed in ascending ID order and
//	the pivot is the candidate with the most neighbors inside P (ties
//	broken by smallest ID), so the enumeration order — and therefore the
//	hook call order — is fully reproducible. Each returned clique is
//	sorted ascending, and the clique list is sorted lexicographically.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(3^(V/3)) worst case (Moon–Moser bound); far lower on the
//     sparse graphs community detection targets.
//   - Memory: O(V + E) for adjacency sets plus O(V) recursion state.
//
// Usage
//
//	cls, err := cliques.MaximalCliques(g, cliques.WithMinSize(3))
//	if err != nil {
//	    // handle ErrNilGraph, ErrBadMinSize, ctx errors, or hook errors
//	}
//
// Errors
//
//   - ErrNilGraph   if the graph pointer is nil.
//   - ErrBadMinSize if MinSize < 1.
//   - ErrOnClique   wrapping any error returned by the OnClique hook.
//   - context.Canceled / DeadlineExceeded from the supplied context.
package cliques
