// Package core: type declarations and sentinel errors.
//
// This file declares Vertex, Edge, Graph, GraphOption, the sentinel
// errors, and the NewGraph constructor. Method implementations live in
// graph.go, clone.go, and components.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrDuplicateEdge indicates an attempt to add a second edge between
	// the same pair of vertices.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrNegativeWeight indicates a negative edge weight; shortest-path
	// based algorithms require non-negative weights throughout.
	ErrNegativeWeight = errors.New("core: negative edge weight not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. A Vertex carries
// no attributes beyond its identity.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents an undirected connection between two distinct vertices.
//
// From/To record insertion order only; the edge is traversable both ways
// and the adjacency index mirrors it under both endpoints.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint's vertex ID (insertion order).
	From string

	// To is the second endpoint's vertex ID (insertion order).
	To string

	// Weight is the cost of the edge. Always 0 on unweighted graphs.
	Weight int64
}

// Other returns the endpoint of e opposite to id, or "" when id is not
// an endpoint of e.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero, non-negative edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph data structure.
//
// It is always undirected and simple: AddEdge rejects self-loops and
// parallel edges. A single mu guards vertices, edges, and adjacency;
// all exported methods are safe for concurrent use.
type Graph struct {
	mu sync.RWMutex

	// weighted permits non-zero edge weights when true.
	weighted bool

	// nextEdgeID generates unique Edge.ID values ("e1", "e2", ...).
	nextEdgeID uint64

	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[string]*Edge   // edge ID → Edge

	// adj[u][v] = edge ID of the unique u—v edge; mirrored under both
	// endpoints since the graph is undirected.
	adj map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		adj:      make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
