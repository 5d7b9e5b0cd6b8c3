// Package walk defines tunable options, sentinel errors, and result types
// for the greedy minimal-revisit walk over a hypergraph.
package walk

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for walk execution.
var (
	// ErrGraphNil is returned if a nil hypergraph pointer is passed.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrStartOutOfRange is returned when the start node id is invalid.
	ErrStartOutOfRange = errors.New("walk: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// noMove is the sentinel "no further move exists" value returned by the
// selection step when the current node has no neighbors at all.
const noMove = -1

// Option configures walk behavior via functional arguments.
// If an Option is invalid (e.g. negative step bound), it is recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize walk execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called every time a node is appended to the path,
	// including revisits. If it returns an error, the walk aborts and
	// propagates that error.
	OnVisit func(node int) error

	// OnTransition is called after a transition (from, to) is recorded;
	// count is its updated occurrence count (1 on first use).
	OnTransition func(from, to, count int)

	// MaxSteps, if > 0, bounds the number of transitions taken.
	// A value of 0 explicitly disables the bound.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no-op hooks (OnVisit, OnTransition)
//   - no step bound (MaxSteps == 0)
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnVisit:      func(int) error { return nil },
		OnTransition: func(int, int, int) {},
		MaxSteps:     0,
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on every path append; returning
// an error from this callback stops the walk.
func WithOnVisit(fn func(node int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnTransition registers a callback to run after each recorded transition.
func WithOnTransition(fn func(from, to, count int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTransition = fn
		}
	}
}

// WithMaxSteps bounds the walk to at most n transitions.
//
//	n > 0: stop after n transitions
//	n == 0: explicit no bound
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no bound"
			o.MaxSteps = 0
		default:
			o.MaxSteps = n
		}
	}
}

// Transition is an ordered pair (From, To) representing one directed step
// of the walk. It keys the transition-count table directly; no composite
// string keys are involved.
type Transition struct {
	From, To int
}

// Result holds the outcome of a walk:
//   - Path: node ids in visit sequence, revisits included; Path[0] is the start.
//   - Visited: set of distinct nodes reached.
//   - Transitions: occurrence count per directed (from, to) step.
//   - Complete: whether every node of the graph was visited.
//   - Unvisited: nodes never reached, sorted ascending; nil when Complete.
//
// Invariants for a finished walk: every consecutive Path pair has a
// positive Transitions entry, and the counts sum to len(Path)-1.
type Result struct {
	Path        []int
	Visited     map[int]bool
	Transitions map[Transition]int
	Complete    bool
	Unvisited   []int
}

// TotalTransitions returns the number of steps taken, i.e. the sum of all
// recorded transition counts; equal to len(Path)-1 for a finished walk.
func (r *Result) TotalTransitions() int {
	total := 0
	for _, c := range r.Transitions {
		total += c
	}
	return total
}

// RepeatedTransitions returns the number of extra traversals of directed
// steps already used before: Σ (count-1) over every transition with
// count > 1. It measures how much the heuristic had to backtrack.
func (r *Result) RepeatedTransitions() int {
	repeated := 0
	for _, c := range r.Transitions {
		if c > 1 {
			repeated += c - 1
		}
	}
	return repeated
}
