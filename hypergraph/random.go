package hypergraph

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Default hyperedge size bounds used by DefaultRandomOptions.
const (
	defaultMinEdgeSize = 2
	defaultMaxEdgeSize = 4
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// Random samples a hypergraph with numEdges hyperedges over the node
// universe [0, numNodes). Each hyperedge draws its size uniformly from
// [opts.MinEdgeSize, opts.MaxEdgeSize] and fills its member set by uniform
// draws without replacement.
//
// Determinism: same (numNodes, numEdges, opts) ⇒ identical hypergraph.
// Edge sampling order is the insertion order, so edge ids are stable too.
//
// Errors:
//   - ErrNoNodes: numNodes < 1.
//   - ErrEdgeCount: numEdges < 0.
//   - ErrEdgeSizeRange: MinEdgeSize < 1, MinEdgeSize > MaxEdgeSize,
//     or MaxEdgeSize > numNodes.
//
// Complexity: expected O(numEdges × MaxEdgeSize) draws.
func Random(numNodes, numEdges int, opts RandomOptions) (*Hypergraph, error) {
	if numEdges < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEdgeCount, numEdges)
	}
	g, err := New(numNodes)
	if err != nil {
		return nil, err
	}
	if opts.MinEdgeSize < 1 || opts.MinEdgeSize > opts.MaxEdgeSize || opts.MaxEdgeSize > numNodes {
		return nil, fmt.Errorf("%w: [%d,%d] over %d nodes",
			ErrEdgeSizeRange, opts.MinEdgeSize, opts.MaxEdgeSize, numNodes)
	}

	rng := rngFromSeed(opts.Seed)
	span := opts.MaxEdgeSize - opts.MinEdgeSize + 1

	for e := 0; e < numEdges; e++ {
		size := opts.MinEdgeSize + rng.Intn(span)
		set := make(map[int]struct{}, size)
		for len(set) < size {
			set[rng.Intn(numNodes)] = struct{}{}
		}
		members := make([]int, 0, size)
		for n := range set {
			members = append(members, n)
		}
		// Members are validated in-range by construction; duplicates are
		// impossible because set membership gated every draw.
		if _, err = g.AddHyperedge(members); err != nil {
			return nil, fmt.Errorf("hypergraph: Random edge %d: %w", e, err)
		}
	}

	return g, nil
}
