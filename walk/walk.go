// Package walk provides a greedy, revisit-minimizing traversal over a
// hypergraph, returning the visited path and per-transition statistics.
//
// The walk moves between co-occurrence neighbors and tries to visit every
// node. While unvisited neighbors exist it picks the one opening the most
// further exploration (one-step lookahead); once the local frontier is
// exhausted it retreats along the least-used directed transition, spreading
// unavoidable revisits instead of hammering a single edge.
package walk

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperwalk/hypergraph"
)

// walker encapsulates mutable walk state. A fresh walker is allocated per
// Walk call, so the package exposes no shared mutable state at all.
type walker struct {
	graph   *hypergraph.Hypergraph
	opts    Options
	visited map[int]bool
	res     *Result
	current int
	reach   int // nodes reachable from the start, visited never exceeds this
	steps   int
}

// Walk runs the greedy traversal on g starting from start, applying any
// number of functional Options. It is a pure function: concurrent calls on
// the same (read-only) hypergraph are safe.
//
// The walk terminates when all nodes are visited, when the component
// containing start is fully visited (partial coverage on disconnected
// graphs — never an infinite loop), when the start node has no neighbors,
// or when an optional step bound is reached.
//
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func Walk(g *hypergraph.Hypergraph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.InRange(start) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, g.NumNodes())
	}

	// The set of nodes reachable from start is fixed once the graph is
	// built, so one upfront sweep gives the stuck-detection bound.
	reachable, err := g.Reachable(start)
	if err != nil {
		return nil, err
	}

	n := g.NumNodes()
	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[int]bool, n),
		res: &Result{
			Path:        make([]int, 0, n),
			Transitions: make(map[Transition]int),
		},
		reach: len(reachable),
	}
	w.res.Visited = w.visited

	// Seed the path with the start node.
	if err = w.visit(start); err != nil {
		return w.res, err
	}
	if err = w.loop(); err != nil {
		return w.res, err
	}
	w.finish()

	return w.res, nil
}

// loop executes greedy steps until full coverage, component exhaustion,
// the no-move sentinel, the step bound, an error, or cancellation.
func (w *walker) loop() error {
	for len(w.visited) < w.graph.NumNodes() {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// Stuck guard: every node reachable from the start is already
		// visited, so no candidate neighbor belongs to a component that
		// still holds unvisited nodes. The revisit policy would cycle
		// forever here; stop with partial coverage instead.
		if len(w.visited) == w.reach {
			break
		}
		if w.opts.MaxSteps > 0 && w.steps >= w.opts.MaxSteps {
			break
		}

		next, err := w.selectNext()
		if err != nil {
			return err
		}
		if next == noMove {
			break
		}

		w.record(w.current, next)
		if err = w.visit(next); err != nil {
			return err
		}
	}
	return nil
}

// visit marks node visited (a no-op for revisits), appends it to the path,
// makes it current, and calls the OnVisit hook.
func (w *walker) visit(node int) error {
	w.visited[node] = true
	w.res.Path = append(w.res.Path, node)
	w.current = node
	if err := w.opts.OnVisit(node); err != nil {
		return fmt.Errorf("walk: OnVisit error at node %d: %w", node, err)
	}
	return nil
}

// record increments the count of the directed transition (from, to) and
// calls the OnTransition hook with the updated count.
func (w *walker) record(from, to int) {
	t := Transition{From: from, To: to}
	w.res.Transitions[t]++
	w.steps++
	w.opts.OnTransition(from, to, w.res.Transitions[t])
}

// selectNext evaluates the greedy policy for the current node:
//
//  1. Unvisited neighbors exist → exploration tie-break: the candidate
//     with the most unvisited neighbors of its own wins (one-step
//     lookahead); ties resolve to the lowest node id.
//  2. Only visited neighbors remain → revisit tie-break: the neighbor
//     whose transition (current, neighbor) has the lowest recorded count
//     wins (unseen counts as 0); ties resolve to the lowest node id.
//  3. No neighbors at all → the no-move sentinel.
//
// Candidates are enumerated in ascending node id (Neighbors guarantees the
// order), so selection is fully deterministic.
func (w *walker) selectNext() (int, error) {
	neighbors, err := w.graph.Neighbors(w.current)
	if err != nil {
		return noMove, err
	}
	if len(neighbors) == 0 {
		return noMove, nil
	}

	unvisited := make([]int, 0, len(neighbors))
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			unvisited = append(unvisited, nbr)
		}
	}
	if len(unvisited) > 0 {
		return w.bestUnvisited(unvisited)
	}

	return w.leastUsed(neighbors), nil
}

// bestUnvisited applies the exploration tie-break over candidates, which
// must be non-empty and in ascending node-id order. The first candidate is
// the running best until another strictly beats its lookahead score.
func (w *walker) bestUnvisited(candidates []int) (int, error) {
	best := candidates[0]
	bestScore := 0

	for _, c := range candidates {
		nbrs, err := w.graph.Neighbors(c)
		if err != nil {
			return noMove, err
		}
		score := 0
		for _, n := range nbrs {
			if !w.visited[n] {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	return best, nil
}

// leastUsed applies the revisit tie-break over neighbors, which must be
// non-empty and in ascending node-id order: the transition
// (current, neighbor) with the lowest count so far wins.
func (w *walker) leastUsed(neighbors []int) int {
	best := noMove
	minCount := math.MaxInt

	for _, nbr := range neighbors {
		if c := w.res.Transitions[Transition{From: w.current, To: nbr}]; c < minCount {
			minCount, best = c, nbr
		}
	}

	return best
}

// finish derives the coverage outcome of a completed run.
func (w *walker) finish() {
	w.res.Complete = len(w.visited) == w.graph.NumNodes()
	if w.res.Complete {
		return
	}
	for n := 0; n < w.graph.NumNodes(); n++ {
		if !w.visited[n] {
			w.res.Unvisited = append(w.res.Unvisited, n)
		}
	}
}
