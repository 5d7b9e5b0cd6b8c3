// Package hypergraph defines core types and sentinel errors
// for the hypergraph subpackage of github.com/katalvlaran/hyperwalk.
package hypergraph

import (
	"errors"
	"sort"
)

// Sentinel errors for hypergraph operations.
var (
	// ErrNoNodes indicates a requested node count below one.
	ErrNoNodes = errors.New("hypergraph: node count must be at least one")
	// ErrEmptyHyperedge indicates an attempt to add a hyperedge with no members.
	ErrEmptyHyperedge = errors.New("hypergraph: hyperedge must contain at least one node")
	// ErrNodeOutOfRange indicates a node id outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("hypergraph: node id out of range")
	// ErrEdgeCount indicates a negative hyperedge count passed to Random.
	ErrEdgeCount = errors.New("hypergraph: hyperedge count must be non-negative")
	// ErrEdgeSizeRange indicates invalid size bounds passed to Random.
	ErrEdgeSizeRange = errors.New("hypergraph: hyperedge size bounds out of range")
)

// Hyperedge groups an arbitrary non-empty set of nodes as one relation,
// distinct from a simple pairwise edge. It is immutable after creation and
// owned by the Hypergraph that created it.
type Hyperedge struct {
	id      int
	members map[int]struct{}
}

// ID returns the edge identifier. Ids are dense and monotonic:
// the i-th added hyperedge has id i.
func (e Hyperedge) ID() int { return e.id }

// Size returns the number of member nodes.
func (e Hyperedge) Size() int { return len(e.members) }

// Contains reports whether node is a member of this hyperedge.
func (e Hyperedge) Contains(node int) bool {
	_, ok := e.members[node]
	return ok
}

// Members returns the member node ids sorted ascending.
// The returned slice is a copy; mutating it does not affect the edge.
func (e Hyperedge) Members() []int {
	out := make([]int, 0, len(e.members))
	for n := range e.members {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Hypergraph owns an ordered collection of Hyperedges over a fixed node
// universe [0, numNodes), plus a derived index from node id to the set of
// hyperedge ids containing it. The index is maintained incrementally on
// each AddHyperedge; all other operations are pure reads.
//
// A Hypergraph is not locked internally: build it first, then treat it as
// read-only. A fully built Hypergraph is safe for concurrent readers.
type Hypergraph struct {
	numNodes  int
	edges     []Hyperedge
	nodeIndex map[int]map[int]struct{}
}

// RandomOptions contains tunable parameters for Random hypergraph sampling.
type RandomOptions struct {
	// MinEdgeSize and MaxEdgeSize bound the member count of each sampled
	// hyperedge: size is uniform in [MinEdgeSize, MaxEdgeSize].
	MinEdgeSize int
	MaxEdgeSize int
	// Seed drives the deterministic RNG. Seed 0 resolves to a fixed
	// default seed, so the zero value still reproduces.
	Seed int64
}

// DefaultRandomOptions returns a RandomOptions with default settings:
// MinEdgeSize=2, MaxEdgeSize=4, Seed=0 (fixed default stream).
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		MinEdgeSize: defaultMinEdgeSize,
		MaxEdgeSize: defaultMaxEdgeSize,
		Seed:        0,
	}
}
