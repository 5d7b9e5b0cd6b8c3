package walk_test

import (
	"testing"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/walk"
)

// BenchmarkWalk_Random measures a full walk over a seeded random
// hypergraph (N nodes, N hyperedges of 2–4 members).
func BenchmarkWalk_Random(b *testing.B) {
	const N = 500
	opts := hypergraph.DefaultRandomOptions()
	opts.Seed = 1

	g, err := hypergraph.Random(N, N, opts)
	if err != nil {
		b.Fatalf("Random error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = walk.Walk(g, 0)
	}
}

// BenchmarkWalk_SingleHyperedge measures the frontier-only fast path:
// one hyperedge over all nodes, no revisit phase at all.
func BenchmarkWalk_SingleHyperedge(b *testing.B) {
	const N = 500
	g, err := hypergraph.New(N)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	members := make([]int, N)
	for i := range members {
		members[i] = i
	}
	if _, err = g.AddHyperedge(members); err != nil {
		b.Fatalf("AddHyperedge error: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = walk.Walk(g, 0)
	}
}
