// Package kclique_test: property-based tests for the laws every
// k-clique community result must satisfy, over randomized sparse
// graphs.
package kclique_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/cloven/builder"
	"github.com/katalvlaran/cloven/cliques"
	"github.com/katalvlaran/cloven/kclique"
)

// TestCommunityInvariants verifies the structural laws of clique
// percolation on randomized G(n,p) graphs. These must hold for any
// valid input.
func TestCommunityInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	// Property 1: clique validity — every community member sits inside
	// at least one clique of size ≥ k fully contained in that community.
	properties.Property("every member is covered by an in-community k-clique", prop.ForAll(
		func(n int, seed int64) bool {
			g, err := builder.RandomSparse(n, 0.3, seed)
			if err != nil {
				return false
			}
			const k = 3
			comms, err := kclique.Communities(g, k)
			if err != nil {
				return false
			}
			cls, err := cliques.MaximalCliques(g, cliques.WithMinSize(k))
			if err != nil {
				return false
			}
			for _, comm := range comms {
				inComm := toSet(comm)
				for _, v := range comm {
					if !coveredBy(v, inComm, cls) {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(4, 24),
		gen.Int64(),
	))

	// Property 2: determinism — repeated invocation on the same graph
	// yields identical communities.
	properties.Property("repeated invocation is identical", prop.ForAll(
		func(n int, seed int64) bool {
			g, err := builder.RandomSparse(n, 0.25, seed)
			if err != nil {
				return false
			}
			first, err := kclique.Communities(g, 3)
			if err != nil {
				return false
			}
			second, err := kclique.Communities(g, 3)
			if err != nil {
				return false
			}

			return equalCommunities(first, second)
		},
		gen.IntRange(4, 24),
		gen.Int64(),
	))

	// Property 3: monotonicity in k — every (k+1)-community is contained
	// in some k-community (larger cliques percolate no farther).
	properties.Property("k+1 communities nest inside k communities", prop.ForAll(
		func(n int, seed int64) bool {
			g, err := builder.RandomSparse(n, 0.35, seed)
			if err != nil {
				return false
			}
			loose, err := kclique.Communities(g, 3)
			if err != nil {
				return false
			}
			tight, err := kclique.Communities(g, 4)
			if err != nil {
				return false
			}
			for _, tc := range tight {
				if !containedInAny(tc, loose) {
					return false
				}
			}

			return true
		},
		gen.IntRange(4, 20),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func toSet(s []string) map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}

	return set
}

// coveredBy reports whether some clique containing v lies entirely
// inside the community set.
func coveredBy(v string, comm map[string]struct{}, cls [][]string) bool {
cliqueLoop:
	for _, c := range cls {
		found := false
		for _, u := range c {
			if _, in := comm[u]; !in {
				continue cliqueLoop
			}
			if u == v {
				found = true
			}
		}
		if found {
			return true
		}
	}

	return false
}

func equalCommunities(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}

// containedInAny reports whether the sorted slice sub is a subset of at
// least one of the sorted slices in supers.
func containedInAny(sub []string, supers [][]string) bool {
	for _, sup := range supers {
		set := toSet(sup)
		ok := true
		for _, v := range sub {
			if _, in := set[v]; !in {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}

	return false
}

// The graph under test must never be mutated by detection.
func TestCommunities_DoesNotMutateGraph(t *testing.T) {
	g, err := builder.Caveman(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	before := g.Edges()
	if _, err = kclique.Communities(g, 3); err != nil {
		t.Fatal(err)
	}
	after := g.Edges()
	if len(before) != len(after) {
		t.Fatalf("edge count changed: %d -> %d", len(before), len(after))
	}
}
