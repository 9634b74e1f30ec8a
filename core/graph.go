// Package core: thread-safe Graph method implementations.
//
// Adjacency is stored as a nested map adj[u][v] = edgeID, mirrored under
// both endpoints, allowing constant-time existence, insertion, and
// deletion of edges on a simple undirected graph.
package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// Weighted reports whether the graph permits non-zero edge weights.
// Immutable after construction. Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(id)
}

// addVertexLocked inserts id assuming g.mu is held for writing.
func (g *Graph) addVertexLocked(id string) error {
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}
	g.adj[id] = make(map[string]string)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge creates the undirected edge from—to with the given weight and
// returns its unique Edge.ID. Missing endpoints are created implicitly.
//
// Returns ErrEmptyVertexID, ErrSelfLoop, ErrBadWeight, ErrNegativeWeight,
// or ErrDuplicateEdge when the simple-graph contract would be violated.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation: endpoints must be named and distinct.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrSelfLoop
	}
	// 2) Weight constraints: zero-only when unweighted, never negative.
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if weight < 0 {
		return "", ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Simple-graph constraint: at most one edge per vertex pair.
	if _, dup := g.adj[from][to]; dup {
		return "", ErrDuplicateEdge
	}

	// 4) Ensure both endpoints exist (idempotent).
	_ = g.addVertexLocked(from)
	_ = g.addVertexLocked(to)

	// 5) Allocate the edge and mirror it under both endpoints.
	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adj[from][to] = eid
	g.adj[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID from the graph, updating
// both the edge catalog and the mirrored adjacency entries.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(e)

	return nil
}

// RemoveEdgeBetween deletes the unique edge connecting u and v.
// Returns ErrEdgeNotFound if the vertices are not adjacent.
// Complexity: O(1).
func (g *Graph) RemoveEdgeBetween(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.adj[u][v]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(g.edges[eid])

	return nil
}

// removeEdgeLocked unlinks e assuming g.mu is held for writing.
func (g *Graph) removeEdgeLocked(e *Edge) {
	delete(g.edges, e.ID)
	delete(g.adj[e.From], e.To)
	delete(g.adj[e.To], e.From)
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if absent.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	for _, eid := range g.adj[id] {
		g.removeEdgeLocked(g.edges[eid])
	}
	delete(g.adj, id)
	delete(g.vertices, id)

	return nil
}

// HasEdge reports whether u and v are adjacent. Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// EdgeBetween returns a copy of the unique edge connecting u and v.
// Returns ErrEdgeNotFound if the vertices are not adjacent.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.adj[u][v]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}

// Neighbors returns copies of all edges incident to vertex id, sorted by
// Edge.ID for determinism.
// Complexity: O(d log d), where d = deg(id).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(g.adj[id]))
	for _, eid := range g.adj[id] {
		out = append(out, *g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs of all vertices adjacent to id, sorted
// ascending for determinism.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(g.adj[id]))
	for v := range g.adj[id] {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adj[id]), nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges sorted by their ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the total number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
