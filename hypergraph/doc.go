// Package hypergraph models a hypergraph over an integer node universe:
// nodes are ids in [0, numNodes), hyperedges are arbitrary non-empty
// subsets of nodes.
//
// What:
//
//   - Hypergraph owns an ordered sequence of Hyperedges plus a node→edges index.
//   - Neighbors(n) derives co-occurrence adjacency: every node sharing an edge with n.
//   - EdgesContaining(n) exposes the reverse index entry.
//   - Reachable(n) walks the co-occurrence relation for component analysis.
//   - Random(...) samples reproducible fixtures for demos and tests.
//
// Why:
//
//   - Group relations: a hyperedge captures “these k nodes belong together”
//     without expanding to O(k²) pairwise edges.
//   - Traversal substrate: the walk package consumes Neighbors/Reachable.
//
// Determinism:
//
//   - All query results are sorted ascending by node (or edge) id.
//   - Random is seeded; Seed 0 maps to a fixed default stream.
//
// Errors:
//
//   - ErrNoNodes: node universe smaller than one.
//   - ErrEmptyHyperedge: AddHyperedge with no members.
//   - ErrNodeOutOfRange: node id outside [0, numNodes).
//   - ErrEdgeCount, ErrEdgeSizeRange: invalid Random parameters.
package hypergraph
