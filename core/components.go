package core

import "sort"

// ConnectedComponents enumerates the connected components of the graph
// by breadth-first search. Each component is returned as a sorted slice
// of vertex IDs, and components are ordered by their smallest member, so
// the result is fully deterministic for a given graph state.
//
// An isolated vertex forms its own singleton component; an empty graph
// yields a nil slice.
//
// Time:   O(V + E + V log V)
// Memory: O(V) for the visited set and queue.
func (g *Graph) ConnectedComponents() [][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// Seed BFS from vertices in sorted order so component discovery
	// order matches "ordered by smallest member" without a final sort
	// of the outer slice.
	seeds := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		seeds = append(seeds, id)
	}
	sort.Strings(seeds)

	seen := make(map[string]bool, len(seeds))
	var comps [][]string

	for _, start := range seeds {
		if seen[start] {
			continue
		}
		// BFS to collect the component containing start.
		queue := []string{start}
		seen[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}

		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}
