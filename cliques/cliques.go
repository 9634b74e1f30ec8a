// Package cliques implements Bron–Kerbosch maximal clique enumeration
// with pivoting over a core.Graph.
package cliques

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cloven/core"
)

// MaximalCliques enumerates all maximal cliques of g with at least
// Options.MinSize vertices, applying any number of functional Options.
//
// Returns the cliques as a deterministic [][]string: each clique sorted
// ascending, the list sorted lexicographically.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. MinSize must be ≥ 1 (ErrBadMinSize).
//
// Complexity:
//
//   - Time:  O(3^(V/3)) worst case; output-sensitive in practice.
//   - Space: O(V + E) adjacency sets plus O(V) recursion state.
func MaximalCliques(g *core.Graph, opts ...Option) ([][]string, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.MinSize < 1 {
		return nil, ErrBadMinSize
	}

	// 2) Snapshot adjacency into plain sets. The enumeration reads
	//    neighborhoods many times; one pass over the graph avoids
	//    repeated locking and sorting inside the recursion.
	vertices := g.Vertices()
	adj := make(map[string]map[string]struct{}, len(vertices))
	var err error
	var nbrs []string
	for _, v := range vertices {
		if nbrs, err = g.NeighborIDs(v); err != nil {
			return nil, fmt.Errorf("cliques: neighbors of %q: %w", v, err)
		}
		set := make(map[string]struct{}, len(nbrs))
		for _, u := range nbrs {
			set[u] = struct{}{}
		}
		adj[v] = set
	}

	// 3) Run Bron–Kerbosch: R = ∅, P = all vertices (sorted), X = ∅.
	e := &enumerator{opts: cfg, adj: adj}
	if err = e.expand(nil, vertices, nil); err != nil {
		return nil, err
	}

	// 4) Canonical order: lexicographic over already-sorted cliques.
	sortCliques(e.found)

	return e.found, nil
}

// enumerator holds the shared state of one Bron–Kerbosch run.
type enumerator struct {
	opts  Options
	adj   map[string]map[string]struct{} // vertex → neighbor set
	found [][]string                     // qualifying maximal cliques
}

// expand is the pivoted Bron–Kerbosch recursion.
//
//	r – current clique under construction
//	p – candidates that extend r (sorted ascending)
//	x – vertices already exhausted for r (sorted ascending)
//
// Invariant: every vertex in p and x is adjacent to all of r.
func (e *enumerator) expand(r, p, x []string) error {
	// Cancellation check once per recursion step.
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	// 1) No candidates and no exhausted vertices: r is maximal.
	if len(p) == 0 && len(x) == 0 {
		return e.report(r)
	}

	// 2) Choose the pivot u ∈ P∪X with the most neighbors inside P;
	//    only candidates outside N(u) can start a new maximal clique.
	pivot := e.choosePivot(p, x)
	pivotNbrs := e.adj[pivot]

	// 3) Freeze the branch list now; p and x shift as we iterate.
	branches := make([]string, 0, len(p))
	for _, v := range p {
		if _, skip := pivotNbrs[v]; !skip {
			branches = append(branches, v)
		}
	}

	var err error
	for _, v := range branches {
		nv := e.adj[v]
		// Recurse with R∪{v}, P∩N(v), X∩N(v).
		if err = e.expand(append(r, v), intersect(p, nv), intersect(x, nv)); err != nil {
			return err
		}
		// Move v from P to X for the remaining branches.
		p = remove(p, v)
		x = insert(x, v)
	}

	return nil
}

// choosePivot returns the vertex of p∪x with the largest neighborhood
// overlap with p, ties broken by smallest ID.
func (e *enumerator) choosePivot(p, x []string) string {
	cands := make([]string, 0, len(p)+len(x))
	cands = append(cands, p...)
	cands = append(cands, x...)
	sort.Strings(cands)

	best, bestCount := "", -1
	for _, u := range cands {
		count := 0
		nu := e.adj[u]
		for _, v := range p {
			if _, ok := nu[v]; ok {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = u, count
		}
	}

	return best
}

// report records clique r if it qualifies, firing the OnClique hook.
func (e *enumerator) report(r []string) error {
	if len(r) < e.opts.MinSize {
		return nil
	}
	clique := make([]string, len(r))
	copy(clique, r)
	sort.Strings(clique)

	if e.opts.OnClique != nil {
		if err := e.opts.OnClique(clique); err != nil {
			return fmt.Errorf("%w: %v", ErrOnClique, err)
		}
	}
	e.found = append(e.found, clique)

	return nil
}

// intersect returns the members of sorted slice s contained in set,
// preserving order.
func intersect(s []string, set map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}

	return out
}

// remove deletes v from sorted slice s, preserving order.
func remove(s []string, v string) []string {
	i := sort.SearchStrings(s, v)
	if i < len(s) && s[i] == v {
		out := make([]string, 0, len(s)-1)
		out = append(out, s[:i]...)
		out = append(out, s[i+1:]...)

		return out
	}

	return s
}

// insert adds v to sorted slice s, preserving order.
func insert(s []string, v string) []string {
	i := sort.SearchStrings(s, v)
	out := make([]string, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	out = append(out, s[i:]...)

	return out
}

// sortCliques orders a list of sorted cliques lexicographically.
func sortCliques(cls [][]string) {
	sort.Slice(cls, func(i, j int) bool {
		a, b := cls[i], cls[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return len(a) < len(b)
	})
}
