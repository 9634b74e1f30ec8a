// Package kclique implements overlapping community detection by clique
// percolation over the maximal cliques of a core.Graph.
package kclique

import (
	"sort"

	"github.com/katalvlaran/cloven/cliques"
	"github.com/katalvlaran/cloven/core"
)

// Communities finds all k-clique communities of g: unions of maximal
// cliques of size ≥ k chained together by (k−1)-vertex overlaps.
//
// Returns a deterministic [][]string: vertices sorted within each
// community, communities ordered by their first (minimum) vertex.
// Communities may overlap. An empty graph, or a graph without any
// clique of size ≥ k, yields an empty result and a nil error.
//
// Preconditions and validation (in order):
//  1. k must be ≥ 2 (ErrKTooSmall) — checked before any computation.
//  2. g must be non-nil (ErrNilGraph).
//
// Complexity: dominated by maximal clique enumeration; the percolation
// step is O(C²·s) for C qualifying cliques of size ≤ s.
func Communities(g *core.Graph, k int, opts ...Option) ([][]string, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if k < 2 {
		return nil, ErrKTooSmall
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Enumerate maximal cliques of size ≥ k. Cliques come back
	//    sorted, which the overlap counting below relies on.
	cls, err := cliques.MaximalCliques(g,
		cliques.WithMinSize(k),
		cliques.WithContext(cfg.Ctx),
	)
	if err != nil {
		return nil, err
	}
	if len(cls) == 0 {
		return [][]string{}, nil
	}

	// 3) Percolate: union cliques that share at least k−1 vertices.
	//    Disjoint-set forest with path compression and union by rank.
	dsu := newDisjointSet(len(cls))
	for i := 0; i < len(cls); i++ {
		for j := i + 1; j < len(cls); j++ {
			if dsu.find(i) == dsu.find(j) {
				continue // already chained via an earlier overlap
			}
			if overlapAtLeast(cls[i], cls[j], k-1) {
				dsu.union(i, j)
			}
		}
	}

	// 4) Union the vertex sets of each forest component.
	members := make(map[int]map[string]struct{})
	for i, clique := range cls {
		root := dsu.find(i)
		set, ok := members[root]
		if !ok {
			set = make(map[string]struct{})
			members[root] = set
		}
		for _, v := range clique {
			set[v] = struct{}{}
		}
	}

	// 5) Canonical order: sort vertices within each community, then
	//    communities by their minimum vertex.
	out := make([][]string, 0, len(members))
	for _, set := range members {
		comm := make([]string, 0, len(set))
		for v := range set {
			comm = append(comm, v)
		}
		sort.Strings(comm)
		out = append(out, comm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out, nil
}

// overlapAtLeast reports whether the sorted slices a and b share at
// least want common elements, bailing out as soon as the remaining
// length cannot reach the target.
func overlapAtLeast(a, b []string, want int) bool {
	count, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		// Not enough candidates left on either side to hit want.
		if count+min(len(a)-i, len(b)-j) < want {
			return false
		}
		switch {
		case a[i] == b[j]:
			count++
			if count >= want {
				return true
			}
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return count >= want
}

// disjointSet is a union-find forest over clique indices, with path
// compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find walks to the root of x, compressing the path as it goes.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets containing x and y, attaching the shallower
// tree under the deeper root.
func (d *disjointSet) union(x, y int) {
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return
	}
	if d.rank[rx] < d.rank[ry] {
		d.parent[rx] = ry
	} else {
		d.parent[ry] = rx
		if d.rank[rx] == d.rank[ry] {
			d.rank[rx]++
		}
	}
}
