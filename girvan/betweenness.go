// Package girvan: edge betweenness centrality via Brandes accumulation.
//
// One sweep per source vertex: a shortest-path DAG is grown forward
// (BFS for unweighted graphs, lazy-decrease-key Dijkstra for weighted
// ones), then dependency credit is propagated backwards along the DAG
// onto predecessor edges. Summing sweeps over all sources counts every
// unordered pair twice, so the totals are halved at the end.
package girvan

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/cloven/core"
)

// EdgeBetweenness computes betweenness centrality for every edge of g:
// the sum over all vertex pairs of the fraction of shortest paths
// between that pair running through the edge. Pairs connected by
// multiple equally short paths split their credit evenly.
//
// Unreachable pairs (different components) contribute nothing; a
// disconnected graph is valid input. Scores are raw (unnormalized). On
// unweighted graphs every edge scores at least 1, being the unique
// shortest path between its own endpoints; on weighted graphs an edge
// undercut by a lighter detour may be on no shortest path at all and
// receive no score.
//
// Complexity:
//
//   - Time:  O(V·E) unweighted; O(V·(E + V log V)) weighted.
//   - Space: O(V + E) per sweep.
func EdgeBetweenness(g *core.Graph) (map[EdgeKey]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	snap, err := takeSnapshot(g)
	if err != nil {
		return nil, err
	}

	return snap.edgeBetweenness(), nil
}

// halfEdge is one adjacency entry of the immutable sweep snapshot.
type halfEdge struct {
	to     string
	weight int64
}

// snapshot freezes the graph into plain slices and maps so the V
// per-source sweeps read it without locking or re-sorting.
type snapshot struct {
	weighted bool
	order    []string              // vertices, sorted ascending
	adj      map[string][]halfEdge // per-vertex neighbors, sorted by ID
}

// takeSnapshot copies g's topology in one locked pass per vertex.
func takeSnapshot(g *core.Graph) (*snapshot, error) {
	order := g.Vertices()
	adj := make(map[string][]halfEdge, len(order))
	for _, v := range order {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("girvan: neighbors of %q: %w", v, err)
		}
		half := make([]halfEdge, 0, len(nbrs))
		for _, u := range nbrs {
			w := int64(0)
			if g.Weighted() {
				e, eerr := g.EdgeBetween(v, u)
				if eerr != nil {
					return nil, fmt.Errorf("girvan: edge %s—%s: %w", v, u, eerr)
				}
				w = e.Weight
			}
			half = append(half, halfEdge{to: u, weight: w})
		}
		adj[v] = half
	}

	return &snapshot{weighted: g.Weighted(), order: order, adj: adj}, nil
}

// edgeBetweenness runs one Brandes sweep per source and halves the
// totals (each unordered pair is seen from both endpoints).
func (s *snapshot) edgeBetweenness() map[EdgeKey]float64 {
	eb := make(map[EdgeKey]float64)

	for _, src := range s.order {
		var sw *sweep
		if s.weighted {
			sw = s.dijkstraSweep(src)
		} else {
			sw = s.bfsSweep(src)
		}
		sw.accumulate(eb)
	}

	for k := range eb {
		eb[k] /= 2
	}

	return eb
}

// sweep carries the per-source shortest-path DAG: vertices in
// finalization order, path counts, and DAG predecessors.
type sweep struct {
	stack []string            // finalization order (closest first)
	sigma map[string]float64  // number of shortest paths from source
	preds map[string][]string // DAG predecessors per vertex
}

// bfsSweep grows the shortest-path DAG by hop count.
func (s *snapshot) bfsSweep(src string) *sweep {
	n := len(s.order)
	sw := &sweep{
		stack: make([]string, 0, n),
		sigma: make(map[string]float64, n),
		preds: make(map[string][]string, n),
	}
	dist := make(map[string]int, n)

	sw.sigma[src] = 1
	dist[src] = 0

	queue := []string{src}
	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		sw.stack = append(sw.stack, v)

		for _, e := range s.adj[v] {
			w := e.to
			if _, seen := dist[w]; !seen {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			// Every shortest path to v extends to w one hop further on.
			if dist[w] == dist[v]+1 {
				sw.sigma[w] += sw.sigma[v]
				sw.preds[w] = append(sw.preds[w], v)
			}
		}
	}

	return sw
}

// dijkstraSweep grows the shortest-path DAG by total weight, using the
// lazy-decrease-key strategy: shorter rediscoveries push duplicates and
// stale entries are skipped when popped.
func (s *snapshot) dijkstraSweep(src string) *sweep {
	n := len(s.order)
	sw := &sweep{
		stack: make([]string, 0, n),
		sigma: make(map[string]float64, n),
		preds: make(map[string][]string, n),
	}
	dist := make(map[string]int64, n)
	for _, v := range s.order {
		dist[v] = math.MaxInt64
	}
	final := make(map[string]bool, n)

	sw.sigma[src] = 1
	dist[src] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if final[u] {
			continue // stale duplicate
		}
		final[u] = true
		sw.stack = append(sw.stack, u)

		for _, e := range s.adj[u] {
			v := e.to
			if final[v] {
				continue
			}
			nd := dist[u] + e.weight
			switch {
			case nd < dist[v]:
				// Strictly shorter: restart v's path counting from u.
				dist[v] = nd
				sw.sigma[v] = sw.sigma[u]
				sw.preds[v] = append(sw.preds[v][:0], u)
				heap.Push(&pq, &nodeItem{id: v, dist: nd})
			case nd == dist[v]:
				// Equally short: u joins v's predecessor set.
				sw.sigma[v] += sw.sigma[u]
				sw.preds[v] = append(sw.preds[v], u)
			}
		}
	}

	return sw
}

// accumulate back-propagates dependency credit from the DAG's leaves
// toward the source, adding each predecessor's share onto its edge.
func (sw *sweep) accumulate(eb map[EdgeKey]float64) {
	delta := make(map[string]float64, len(sw.stack))
	for i := len(sw.stack) - 1; i >= 0; i-- {
		w := sw.stack[i]
		for _, p := range sw.preds[w] {
			c := (sw.sigma[p] / sw.sigma[w]) * (1 + delta[w])
			delta[p] += c
			eb[NewEdgeKey(p, w)] += c
		}
	}
}

// nodeItem pairs a vertex with its tentative distance in the priority
// queue.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used
// with the lazy-decrease-key pattern.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
