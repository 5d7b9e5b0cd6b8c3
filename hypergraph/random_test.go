package hypergraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/hyperwalk/hypergraph"
)

// edgeMembers flattens a graph into per-edge sorted member lists for
// deterministic comparison.
func edgeMembers(g *hypergraph.Hypergraph) [][]int {
	out := make([][]int, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, e.Members())
	}
	return out
}

// TestRandom_Determinism verifies that the same seed reproduces the same
// hypergraph, and that distinct seeds are actually used.
func TestRandom_Determinism(t *testing.T) {
	opts := hypergraph.DefaultRandomOptions()
	opts.Seed = 42

	g1, err := hypergraph.Random(8, 6, opts)
	if err != nil {
		t.Fatalf("Random error: %v", err)
	}
	g2, err := hypergraph.Random(8, 6, opts)
	if err != nil {
		t.Fatalf("Random error: %v", err)
	}
	if !reflect.DeepEqual(edgeMembers(g1), edgeMembers(g2)) {
		t.Errorf("same seed produced different graphs:\n%v\n%v", edgeMembers(g1), edgeMembers(g2))
	}

	// Seed 0 resolves to the fixed default stream and must reproduce too.
	d1, _ := hypergraph.Random(8, 6, hypergraph.DefaultRandomOptions())
	d2, _ := hypergraph.Random(8, 6, hypergraph.DefaultRandomOptions())
	if !reflect.DeepEqual(edgeMembers(d1), edgeMembers(d2)) {
		t.Error("default seed must be deterministic")
	}
}

// TestRandom_SizeBounds verifies edge count and per-edge size bounds.
func TestRandom_SizeBounds(t *testing.T) {
	opts := hypergraph.RandomOptions{MinEdgeSize: 3, MaxEdgeSize: 5, Seed: 7}
	g, err := hypergraph.Random(10, 12, opts)
	if err != nil {
		t.Fatalf("Random error: %v", err)
	}
	if g.EdgeCount() != 12 {
		t.Fatalf("EdgeCount = %d; want 12", g.EdgeCount())
	}
	for _, e := range g.Edges() {
		if e.Size() < 3 || e.Size() > 5 {
			t.Errorf("edge %d size = %d; want within [3,5]", e.ID(), e.Size())
		}
	}
}

// TestRandom_Errors verifies parameter validation.
func TestRandom_Errors(t *testing.T) {
	cases := []struct {
		name     string
		numNodes int
		numEdges int
		opts     hypergraph.RandomOptions
		err      error
	}{
		{"NegativeEdges", 5, -1, hypergraph.DefaultRandomOptions(), hypergraph.ErrEdgeCount},
		{"NoNodes", 0, 3, hypergraph.DefaultRandomOptions(), hypergraph.ErrNoNodes},
		{"MinBelowOne", 5, 3, hypergraph.RandomOptions{MinEdgeSize: 0, MaxEdgeSize: 2}, hypergraph.ErrEdgeSizeRange},
		{"MinAboveMax", 5, 3, hypergraph.RandomOptions{MinEdgeSize: 4, MaxEdgeSize: 2}, hypergraph.ErrEdgeSizeRange},
		{"MaxAboveNodes", 5, 3, hypergraph.RandomOptions{MinEdgeSize: 2, MaxEdgeSize: 6}, hypergraph.ErrEdgeSizeRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hypergraph.Random(tc.numNodes, tc.numEdges, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("Random(%d,%d,%+v) error = %v; want %v",
					tc.numNodes, tc.numEdges, tc.opts, err, tc.err)
			}
		})
	}
}

// TestDefaultRandomOptions pins the documented defaults.
func TestDefaultRandomOptions(t *testing.T) {
	opts := hypergraph.DefaultRandomOptions()
	if opts.MinEdgeSize != 2 || opts.MaxEdgeSize != 4 || opts.Seed != 0 {
		t.Errorf("DefaultRandomOptions = %+v; want {2 4 0}", opts)
	}
}
