package hypergraph

import "sort"

// Reachable returns every node reachable from start through the
// co-occurrence relation (two nodes are adjacent when they share at least
// one hyperedge), including start itself, sorted ascending.
//
// Traversal algorithms use this to detect when the component containing
// start is exhausted while other components still hold unvisited nodes.
// Returns ErrNodeOutOfRange if start is invalid.
//
// Time:   O(V + Σ edge sizes).
// Memory: O(V) for seen flags and the queue.
func (g *Hypergraph) Reachable(start int) ([]int, error) {
	if !g.InRange(start) {
		return nil, ErrNodeOutOfRange
	}

	seen := make(map[int]struct{}, g.numNodes)
	seen[start] = struct{}{}
	queue := []int{start}

	// BFS over hyperedges: expanding an edge once per visit is enough,
	// every member becomes adjacent to every other member.
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for id := range g.nodeIndex[u] {
			for m := range g.edges[id].members {
				if _, ok := seen[m]; !ok {
					seen[m] = struct{}{}
					queue = append(queue, m)
				}
			}
		}
	}

	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)

	return out, nil
}
