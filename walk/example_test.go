package walk_test

import (
	"fmt"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/walk"
)

// ExampleWalk demonstrates full coverage on a single hyperedge: every pair
// of nodes are mutual neighbors, so the walk never needs a revisit.
func ExampleWalk() {
	g, _ := hypergraph.New(3)
	g.AddHyperedge([]int{0, 1, 2})

	res, err := walk.Walk(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("path:", res.Path)
	fmt.Println("complete:", res.Complete)
	fmt.Println("transitions:", res.TotalTransitions(), "repeated:", res.RepeatedTransitions())
	// Output:
	// path: [0 1 2]
	// complete: true
	// transitions: 2 repeated: 0
}

// ExampleWalk_partialCoverage demonstrates the disconnected-graph outcome:
// the walk stops once its component is exhausted and reports what is left.
func ExampleWalk_partialCoverage() {
	g, _ := hypergraph.New(4)
	g.AddHyperedge([]int{0, 1})
	g.AddHyperedge([]int{2, 3})

	res, _ := walk.Walk(g, 0)

	fmt.Println("path:", res.Path)
	fmt.Println("complete:", res.Complete)
	fmt.Println("unvisited:", res.Unvisited)
	// Output:
	// path: [0 1]
	// complete: false
	// unvisited: [2 3]
}

// ExampleWalk_hooks shows how a presentation layer can animate the walk
// step by step without touching the core loop.
func ExampleWalk_hooks() {
	g, _ := hypergraph.New(3)
	g.AddHyperedge([]int{0, 1})
	g.AddHyperedge([]int{1, 2})

	_, _ = walk.Walk(g, 0, walk.WithOnTransition(func(from, to, count int) {
		fmt.Printf("%d→%d (use #%d)\n", from, to, count)
	}))
	// Output:
	// 0→1 (use #1)
	// 1→2 (use #1)
}
