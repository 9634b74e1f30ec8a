// Package cliques_test contains unit tests for Bron–Kerbosch maximal
// clique enumeration: validation, known topologies, size filtering,
// hook streaming, cancellation, and determinism.
package cliques_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cloven/builder"
	"github.com/katalvlaran/cloven/cliques"
	"github.com/katalvlaran/cloven/core"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestMaximalCliques_NilGraph(t *testing.T) {
	_, err := cliques.MaximalCliques(nil)
	require.ErrorIs(t, err, cliques.ErrNilGraph)
}

func TestMaximalCliques_BadMinSize(t *testing.T) {
	g := core.NewGraph()
	_, err := cliques.MaximalCliques(g, cliques.WithMinSize(0))
	require.ErrorIs(t, err, cliques.ErrBadMinSize)
}

// ------------------------------------------------------------------------
// 2. Known topologies
// ------------------------------------------------------------------------

func TestMaximalCliques_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	cls, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	assert.Empty(t, cls)
}

func TestMaximalCliques_IsolatedVertices(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	cls, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	// Each isolated vertex is itself a maximal clique of size 1.
	assert.Equal(t, [][]string{{"A"}, {"B"}}, cls)
}

func TestMaximalCliques_SingleEdge(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("B", "A", 0)
	require.NoError(t, err)

	cls, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}}, cls)
}

func TestMaximalCliques_Triangle(t *testing.T) {
	g, err := builder.Complete(3)
	require.NoError(t, err)

	cls, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"v0", "v1", "v2"}}, cls)
}

func TestMaximalCliques_CompleteGraph(t *testing.T) {
	// K5 has exactly one maximal clique: all five vertices.
	g, err := builder.Complete(5)
	require.NoError(t, err)

	cls, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	require.Len(t, cls, 1)
	assert.Len(t, cls[0], 5)
}

func TestMaximalCliques_Cycle(t *testing.T) {
	// C5 is triangle-free: every edge is a maximal clique.
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	cls, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	assert.Len(t, cls, 5)
	for _, c := range cls {
		assert.Len(t, c, 2)
	}
}

func TestMaximalCliques_TwoTrianglesSharedEdge(t *testing.T) {
	// A—B—C—A and B—C—D—B share the edge B—C.
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	cls, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"B", "C", "D"}}, cls)
}

// ------------------------------------------------------------------------
// 3. Filtering, hooks, cancellation, determinism
// ------------------------------------------------------------------------

func TestMaximalCliques_MinSizeFilters(t *testing.T) {
	// A triangle with a pendant vertex: cliques {A,B,C} and {C,D}.
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	cls, err := cliques.MaximalCliques(g, cliques.WithMinSize(3))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, cls)

	// MinSize above the largest clique yields an empty result, not an error.
	cls, err = cliques.MaximalCliques(g, cliques.WithMinSize(4))
	require.NoError(t, err)
	assert.Empty(t, cls)
}

func TestMaximalCliques_OnCliqueStreams(t *testing.T) {
	g, err := builder.Caveman(3, 3)
	require.NoError(t, err)

	var streamed [][]string
	cls, err := cliques.MaximalCliques(g,
		cliques.WithMinSize(3),
		cliques.WithOnClique(func(c []string) error {
			cp := make([]string, len(c))
			copy(cp, c)
			streamed = append(streamed, cp)

			return nil
		}),
	)
	require.NoError(t, err)
	// The hook sees exactly the returned cliques (order may differ from
	// the final lexicographic sort).
	assert.ElementsMatch(t, cls, streamed)
	assert.Len(t, cls, 3)
}

func TestMaximalCliques_OnCliqueAborts(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = cliques.MaximalCliques(g, cliques.WithOnClique(func([]string) error {
		return boom
	}))
	require.ErrorIs(t, err, cliques.ErrOnClique)
}

func TestMaximalCliques_ContextCancelled(t *testing.T) {
	g, err := builder.Complete(6)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cliques.MaximalCliques(g, cliques.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestMaximalCliques_Deterministic(t *testing.T) {
	g, err := builder.RandomSparse(40, 0.2, 7)
	require.NoError(t, err)

	first, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	second, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestMaximalCliques_EveryCliqueIsAClique cross-checks the clique
// invariant against the graph itself.
func TestMaximalCliques_EveryCliqueIsAClique(t *testing.T) {
	g, err := builder.RandomSparse(30, 0.25, 11)
	require.NoError(t, err)

	cls, err := cliques.MaximalCliques(g)
	require.NoError(t, err)
	for _, c := range cls {
		for i := 0; i < len(c); i++ {
			for j := i + 1; j < len(c); j++ {
				assert.Truef(t, g.HasEdge(c[i], c[j]),
					"clique %v misses edge %s—%s", c, c[i], c[j])
			}
		}
	}
}
