// Package walk implements a greedy, stateless traversal of a hypergraph
// that tries to visit every node while minimizing repeated directed
// transitions.
//
// What:
//
//   - Walk(g, start, opts...) runs one traversal and returns a fresh Result.
//   - Exploration: among unvisited neighbors, a one-step lookahead picks
//     the candidate opening the most further exploration.
//   - Revisit: with the local frontier exhausted, the least-used directed
//     transition is taken, spreading backtracks across available edges.
//   - Statistics: TotalTransitions and RepeatedTransitions summarize a run.
//
// Why:
//
//   - Patrol/inspection routes: cover every station with few repeated legs.
//   - Crawl ordering: prioritize pages that expose the most unseen links.
//   - Test-input replay: deterministic coverage walks over relation groups.
//
// Guarantees:
//
//   - Determinism: candidates are enumerated in ascending node id, so the
//     same graph and start reproduce the same path on every run.
//   - Termination: the walk stops once the component containing the start
//     is fully visited; disconnected graphs yield partial coverage
//     (Result.Complete == false, Result.Unvisited populated), never a hang.
//   - Purity: no shared mutable state; concurrent Walk calls on the same
//     read-only hypergraph are safe.
//
// The policy is a heuristic: the produced tour is not guaranteed to be a
// minimum-revisit tour.
//
// Errors:
//
//   - ErrGraphNil: nil graph pointer.
//   - ErrStartOutOfRange: start node id outside [0, numNodes).
//   - ErrOptionViolation: invalid Option (e.g. negative MaxSteps).
package walk
