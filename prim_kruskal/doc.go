// Package prim_kruskal computes Minimum Spanning Trees (MST) over undirected,
// int-indexed, weighted edge lists: Kruskal's algorithm and Prim's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why it matters here:
//     The network stabilization puzzle asks the player to prune a redundant relay network down to
//     its cheapest spanning tree. The MST weight of the authored table is the optimality bound the
//     player's pruned network is judged against; it is computed once per table and cached.
//
// Algorithms Provided
//
//   - MinimumSpanningWeight(edges, nodeCount) (int64, error)
//     The optimality bound only. Thin wrapper over Kruskal.
//
//   - Kruskal(nodeCount, edges) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort all edges by cost, then merge components with a DSU (union-find)
//     with path compression and union by rank, skipping edges whose endpoints are already joined.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Determinism: the stable sort keeps input order among equal costs, so the chosen tree is
//     reproducible. The total weight does not depend on tie-breaking or input order at all.
//
//   - Prim(nodeCount, edges, root) ([]core.Edge, int64, error)
//
//   - Strategy: grow one tree from root, keeping for every outside node the cheapest known link into
//     the tree in an indexed min-heap (decrease-key via Put).
//
//   - Complexity: O(E log V) time, O(V + E) memory.
//
// Error Conditions
//
//   - ErrInvalidGraph: nodeCount < 1, or an edge endpoint outside [0, nodeCount).
//   - ErrRootOutOfRange (Prim only): root ∉ [0, nodeCount).
//   - ErrDisconnected: the edges do not span every node.
//
// For examples of usage, see example_test.go in this package.
package prim_kruskal
