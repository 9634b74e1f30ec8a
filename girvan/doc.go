// Package girvan implements edge betweenness centrality and the
// Girvan–Newman divisive partitioning algorithm over a core.Graph.
//
// What
//
//   - EdgeBetweenness: for every edge, the sum over all vertex pairs of
//     the fraction of shortest paths between that pair traversing the
//     edge. Ties in shortest-path count split credit evenly.
//   - Partitioner: the Girvan–Newman sequence. Each step removes every
//     edge tied for maximum betweenness, then emits the connected
//     components of the reduced graph as one partition. The sequence
//     ends when no edges remain (all-singleton partition).
//
// Why
//
//	Edges between communities carry a disproportionate share of
//	shortest paths. Repeatedly cutting the most-loaded edges peels a
//	graph apart along its community boundaries, producing a hierarchy
//	of ever-finer partitions.
//
// Laziness
//
//	The sequence can be long — up to one step per edge — and each step
//	costs a full betweenness sweep. Partitioner is therefore pull-based
//	in the scanner idiom: nothing is computed until Next is called, and
//	a caller that stops after the first few partitions pays only for
//	those steps.
//
//	  p, err := girvan.New(g)
//	  for p.Next() {
//	      use(p.Partition())
//	  }
//	  if err := p.Err(); err != nil { ... }
//
//	Each Partitioner works on its own clone of the input; the caller's
//	graph is never mutated, and a fresh New(...) restarts the sequence.
//
// Conventions (user-observable, fixed by design)
//
//   - Edgeless input: the sequence is empty — the first Next() returns
//     false immediately. No trivial all-singletons partition is emitted.
//   - Tie-breaking: ALL edges whose betweenness lies within TieEpsilon
//     (relative) of the maximum are removed in the same step. A
//     symmetric graph such as a 4-cycle therefore loses all its edges
//     in one step.
//
// Weighted graphs
//
//	On weighted graphs shortest paths minimize total weight (Dijkstra
//	with shortest-path counting); on unweighted graphs they minimize
//	hop count (breadth-first search). Negative weights are rejected by
//	core at construction, so both primitives assume non-negative input.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - EdgeBetweenness: O(V·E) unweighted, O(V·(E + V log V)) weighted
//     (one Brandes sweep per source).
//   - Full sequence: O(E) steps in the worst case, each paying one
//     betweenness sweep — quadratic-ish overall, inherent to the
//     algorithm. Consume lazily when you need only the coarse cuts.
//
// Errors
//
//   - ErrNilGraph    if the graph pointer is nil.
//   - ErrBadMaxSteps if WithMaxSteps is given a negative bound.
//   - context.Canceled / DeadlineExceeded via Err() after cancellation.
package girvan
