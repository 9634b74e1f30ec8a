// Package core: deep-copy operations.
//
// Algorithms that mutate a graph (edge removal during Girvan–Newman)
// always operate on a Clone, never on the caller's original.
package core

import "strings"

// CloneEmpty returns a new Graph with identical configuration and
// vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.weighted = g.weighted
	for id := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
		clone.adj[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices,
// edges, and adjacency. Edge IDs are preserved so results computed on
// the clone can be correlated back to the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		clone.adj[e.From][e.To] = eid
		clone.adj[e.To][e.From] = eid
		// Keep the ID counter ahead of every preserved ID so later
		// AddEdge calls on the clone cannot collide.
		if n, ok := parseEdgeSeq(eid); ok && n > clone.nextEdgeID {
			clone.nextEdgeID = n
		}
	}

	return clone
}

// parseEdgeSeq extracts the numeric suffix of a generated edge ID.
func parseEdgeSeq(eid string) (uint64, bool) {
	s, ok := strings.CutPrefix(eid, edgeIDPrefix)
	if !ok || s == "" {
		return 0, false
	}
	var n uint64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + uint64(r-'0')
	}

	return n, true
}
