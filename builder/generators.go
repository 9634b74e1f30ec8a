// Package builder: the generator implementations.
//
// Every generator validates its parameters first, then emits vertices in
// ascending index order and edges in lexicographic pair order, so the
// produced graphs are identical across runs.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cloven/core"
)

// Complete builds the complete simple graph K_n: every pair of the n
// vertices is connected.
// Requires n ≥ 1. Complexity: O(n²).
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	g := cfg.newGraph()

	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.id(i)); err != nil {
			return nil, fmt.Errorf("Complete: AddVertex(%s): %w", cfg.id(i), err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(cfg.id(i), cfg.id(j), cfg.weight()); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%s,%s): %w", cfg.id(i), cfg.id(j), err)
			}
		}
	}

	return g, nil
}

// Cycle builds the cycle graph C_n: v0—v1—…—v(n-1)—v0.
// Requires n ≥ 3 (smaller rings would need loops or parallel edges).
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	g := cfg.newGraph()

	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(cfg.id(i), cfg.id((i+1)%n), cfg.weight()); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%s,%s): %w", cfg.id(i), cfg.id((i+1)%n), err)
		}
	}

	return g, nil
}

// Path builds the path graph P_n: v0—v1—…—v(n-1).
// Requires n ≥ 1; n == 1 yields a single isolated vertex.
// Complexity: O(n).
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	g := cfg.newGraph()

	if err := g.AddVertex(cfg.id(0)); err != nil {
		return nil, fmt.Errorf("Path: AddVertex(%s): %w", cfg.id(0), err)
	}
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(cfg.id(i-1), cfg.id(i), cfg.weight()); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%s,%s): %w", cfg.id(i-1), cfg.id(i), err)
		}
	}

	return g, nil
}

// Star builds a star: hub v0 connected to leaves v1..v(leaves).
// Requires leaves ≥ 1. Complexity: O(leaves).
func Star(leaves int, opts ...Option) (*core.Graph, error) {
	if leaves < 1 {
		return nil, fmt.Errorf("Star: leaves=%d: %w", leaves, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	g := cfg.newGraph()

	for i := 1; i <= leaves; i++ {
		if _, err := g.AddEdge(cfg.id(0), cfg.id(i), cfg.weight()); err != nil {
			return nil, fmt.Errorf("Star: AddEdge(%s,%s): %w", cfg.id(0), cfg.id(i), err)
		}
	}

	return g, nil
}

// Caveman builds the connected caveman graph: cliqueCount complete
// cliques of cliqueSize vertices each, arranged in a ring with a single
// bridge edge between consecutive cliques. Vertex IDs are
// "<prefix><clique>_<member>", e.g. "v0_2" for member 2 of clique 0.
//
// Requires cliqueCount ≥ 1 and cliqueSize ≥ 2.
// Complexity: O(cliqueCount · cliqueSize²).
func Caveman(cliqueCount, cliqueSize int, opts ...Option) (*core.Graph, error) {
	if cliqueCount < 1 {
		return nil, fmt.Errorf("Caveman: cliqueCount=%d: %w", cliqueCount, ErrTooFewVertices)
	}
	if cliqueSize < 2 {
		return nil, fmt.Errorf("Caveman: cliqueSize=%d: %w", cliqueSize, ErrTooFewVertices)
	}
	cfg := resolve(opts)
	g := cfg.newGraph()

	id := func(c, m int) string { return fmt.Sprintf("%s%d_%d", cfg.Prefix, c, m) }

	// 1) Emit each clique as a complete subgraph.
	for c := 0; c < cliqueCount; c++ {
		for i := 0; i < cliqueSize; i++ {
			for j := i + 1; j < cliqueSize; j++ {
				if _, err := g.AddEdge(id(c, i), id(c, j), cfg.weight()); err != nil {
					return nil, fmt.Errorf("Caveman: AddEdge(%s,%s): %w", id(c, i), id(c, j), err)
				}
			}
		}
	}

	// 2) Bridge consecutive cliques: last member of clique c to first
	//    member of clique c+1. A two-clique ring would duplicate its
	//    single bridge, so the wrap-around edge needs cliqueCount ≥ 3.
	for c := 0; c+1 < cliqueCount; c++ {
		if _, err := g.AddEdge(id(c, cliqueSize-1), id(c+1, 0), cfg.weight()); err != nil {
			return nil, fmt.Errorf("Caveman: bridge(%d,%d): %w", c, c+1, err)
		}
	}
	if cliqueCount >= 3 {
		if _, err := g.AddEdge(id(cliqueCount-1, cliqueSize-1), id(0, 0), cfg.weight()); err != nil {
			return nil, fmt.Errorf("Caveman: bridge(%d,0): %w", cliqueCount-1, err)
		}
	}

	return g, nil
}

// RandomSparse builds an Erdős–Rényi G(n,p) graph: each of the n·(n−1)/2
// vertex pairs is connected independently with probability p, driven by
// the given seed. The same (n, p, seed) triple always yields the same
// graph.
//
// Requires n ≥ 1 and 0 ≤ p ≤ 1. Complexity: O(n²).
func RandomSparse(n int, p float64, seed int64, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	cfg := resolve(opts)
	g := cfg.newGraph()
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.id(i)); err != nil {
			return nil, fmt.Errorf("RandomSparse: AddVertex(%s): %w", cfg.id(i), err)
		}
	}
	// Pair order is fixed (i<j ascending), so the RNG consumption — and
	// therefore the topology — is reproducible for a given seed.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			if _, err := g.AddEdge(cfg.id(i), cfg.id(j), cfg.weight()); err != nil {
				return nil, fmt.Errorf("RandomSparse: AddEdge(%s,%s): %w", cfg.id(i), cfg.id(j), err)
			}
		}
	}

	return g, nil
}
