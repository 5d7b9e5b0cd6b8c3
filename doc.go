// Package hyperwalk is an in-memory toolkit for building hypergraphs and
// walking them with a greedy, revisit-minimizing heuristic.
//
// 🚀 What is hyperwalk?
//
//	A small, deterministic library built around two packages:
//		• hypergraph/ — Hyperedge & Hypergraph primitives, node→edge indexing,
//		  co-occurrence neighbor queries, reachability, random generation
//		• walk/       — a greedy traversal that visits every reachable node
//		  while spreading unavoidable revisits across the least-used transitions
//
// ✨ Why choose hyperwalk?
//
//   - Deterministic by contract – candidates are always enumerated in
//     ascending node id, so the same graph and start node reproduce the
//     same path on every run
//   - Safe on disconnected graphs – the walk detects an exhausted component
//     and reports partial coverage instead of spinning forever
//   - Pure Go – no cgo, no hidden deps in the library packages
//   - Extensible – hooks (OnVisit, OnTransition…) let callers animate or
//     audit every step without touching the core loop
//
// Quick ASCII example:
//
//	    0───┐
//	    1───┼──(e0)──2──(e1)──3
//
//	two hyperedges e0={0,1,2} and e1={2,3} over four nodes;
//	node 2 is the articulation between them.
//
// A demo driver lives under cmd/hyperwalk: it samples a random hypergraph
// and prints the resulting path and transition statistics.
//
//	go get github.com/katalvlaran/hyperwalk
package hyperwalk
