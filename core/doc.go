// Package core defines the central Graph, Vertex, and Edge types used by
// every cloven algorithm, together with thread-safe primitives for
// building, querying, mutating, and cloning undirected simple graphs.
//
// What
//
//   - Graph: an undirected, simple (no self-loops, no parallel edges),
//     optionally weighted graph keyed by string vertex IDs.
//   - Vertex: an opaque identity. No attributes beyond the ID.
//   - Edge: an unordered pair of distinct vertices with an int64 weight
//     (always 0 on unweighted graphs).
//   - ConnectedComponents: deterministic component enumeration, the shared
//     primitive behind both community algorithms.
//   - Clone / CloneEmpty: deep copies so algorithms can mutate a working
//     graph without touching the caller's original.
//
// Why
//
//	Community detection reads neighbor sets, removes edges, and enumerates
//	components over and over. core keeps those operations O(1)/O(d) and —
//	just as important — deterministic: Vertices(), Edges(), NeighborIDs()
//	and ConnectedComponents() all return sorted results, so every
//	algorithm built on top is reproducible run to run.
//
// Simplicity contract
//
//	AddEdge enforces the simple-graph invariants at construction time:
//	self-loops are rejected with ErrSelfLoop, duplicate edges with
//	ErrDuplicateEdge, negative weights with ErrNegativeWeight, and
//	non-zero weights on an unweighted graph with ErrBadWeight. Algorithms
//	may therefore assume simple, non-negative input.
//
// Concurrency
//
//	All Graph methods take a single sync.RWMutex internally, so a Graph
//	may be shared across goroutines. Algorithms that mutate (edge removal
//	in Girvan–Newman) always work on their own Clone.
//
// Complexity (V = |vertices|, E = |edges|, d = degree)
//
//   - AddVertex / AddEdge / HasEdge / RemoveEdgeBetween: O(1) amortized
//   - NeighborIDs: O(d log d)   Vertices: O(V log V)   Edges: O(E log E)
//   - Clone: O(V + E)           ConnectedComponents: O(V + E + V log V)
//
// Errors
//
//   - ErrEmptyVertexID    – vertex ID is the empty string.
//   - ErrVertexNotFound   – requested vertex does not exist.
//   - ErrEdgeNotFound     – requested edge does not exist.
//   - ErrSelfLoop         – attempt to connect a vertex to itself.
//   - ErrDuplicateEdge    – attempt to add a parallel edge.
//   - ErrBadWeight        – non-zero weight on an unweighted graph.
//   - ErrNegativeWeight   – negative weight on a weighted graph.
package core
