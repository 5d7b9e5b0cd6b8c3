// Package hypergraph provides an indexed hypergraph container over an
// integer node universe. It supports:
//
//   - Incremental construction via AddHyperedge
//   - Co-occurrence neighbor queries with deterministic ascending order
//   - Reverse lookups from a node to the hyperedges containing it
//   - Reachability over the co-occurrence relation
//
// Node identity is the integer itself: valid ids lie in [0, numNodes).
package hypergraph

import (
	"fmt"
	"sort"
)

// New constructs an empty Hypergraph over the node universe [0, numNodes).
// Returns ErrNoNodes if numNodes < 1.
// Complexity: O(numNodes) to pre-seed the index.
func New(numNodes int) (*Hypergraph, error) {
	if numNodes < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoNodes, numNodes)
	}
	idx := make(map[int]map[int]struct{}, numNodes)
	for n := 0; n < numNodes; n++ {
		idx[n] = make(map[int]struct{})
	}
	return &Hypergraph{
		numNodes:  numNodes,
		edges:     nil,
		nodeIndex: idx,
	}, nil
}

// NumNodes returns the fixed size of the node universe.
func (g *Hypergraph) NumNodes() int { return g.numNodes }

// EdgeCount returns the number of hyperedges added so far.
func (g *Hypergraph) EdgeCount() int { return len(g.edges) }

// InRange reports whether node is a valid id in [0, numNodes).
// Complexity: O(1).
func (g *Hypergraph) InRange(node int) bool {
	return node >= 0 && node < g.numNodes
}

// AddHyperedge stores a new hyperedge over the given member nodes and
// assigns it the next sequential id (the i-th added edge has id i).
// Duplicate ids in members collapse into the set.
//
// Validation happens before any mutation: on error the edge list and the
// node index are left exactly as they were.
// Returns the assigned edge id, or ErrEmptyHyperedge / ErrNodeOutOfRange.
// Complexity: O(len(members)).
func (g *Hypergraph) AddHyperedge(members []int) (int, error) {
	if len(members) == 0 {
		return 0, ErrEmptyHyperedge
	}
	for _, n := range members {
		if !g.InRange(n) {
			return 0, fmt.Errorf("%w: member %d not in [0,%d)", ErrNodeOutOfRange, n, g.numNodes)
		}
	}

	id := len(g.edges)
	set := make(map[int]struct{}, len(members))
	for _, n := range members {
		set[n] = struct{}{}
	}
	g.edges = append(g.edges, Hyperedge{id: id, members: set})
	for n := range set {
		g.nodeIndex[n][id] = struct{}{}
	}

	return id, nil
}

// Edges returns a copy of the hyperedge sequence in insertion order.
// The Hyperedge values themselves are immutable.
func (g *Hypergraph) Edges() []Hyperedge {
	out := make([]Hyperedge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns all distinct nodes that co-occur with node in at least
// one hyperedge, excluding node itself, sorted ascending. The ascending
// order is a contract: traversal algorithms rely on it for reproducible
// candidate enumeration.
// Returns ErrNodeOutOfRange if node is invalid.
// Complexity: O(Σ sizes of incident edges + d log d), d = neighbor count.
func (g *Hypergraph) Neighbors(node int) ([]int, error) {
	if !g.InRange(node) {
		return nil, fmt.Errorf("%w: node %d not in [0,%d)", ErrNodeOutOfRange, node, g.numNodes)
	}
	seen := make(map[int]struct{})
	for id := range g.nodeIndex[node] {
		for m := range g.edges[id].members {
			if m != node {
				seen[m] = struct{}{}
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

// EdgesContaining returns the ids of all hyperedges whose members contain
// node, sorted ascending. The returned slice is a copy of the index entry.
// Returns ErrNodeOutOfRange if node is invalid.
// Complexity: O(k log k), k = incident edge count.
func (g *Hypergraph) EdgesContaining(node int) ([]int, error) {
	if !g.InRange(node) {
		return nil, fmt.Errorf("%w: node %d not in [0,%d)", ErrNodeOutOfRange, node, g.numNodes)
	}
	out := make([]int, 0, len(g.nodeIndex[node]))
	for id := range g.nodeIndex[node] {
		out = append(out, id)
	}
	sort.Ints(out)

	return out, nil
}
