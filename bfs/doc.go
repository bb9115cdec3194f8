// Package bfs provides breadth-first search over an int-indexed edge list,
// returning visit order and hop depth from a start node.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Edges are undirected core.Edge values; nodes are ints in [0, nodeCount).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Individual edges can be skipped via WithFilterEdge, which is how callers
//     restrict a walk to the currently active links of a puzzle network.
//
// Why
//
//	The puzzle validator asks a single question of the player's network:
//	does a walk from node 0 reach every node? Unreached returns the answer
//	and, when it is "no", the nodes that were cut off.
//
// Determinism
//
//	Neighbors are expanded in the order the edges were supplied, so the visit
//	sequence is reproducible for a fixed input slice.
//
// Complexity (V = nodeCount, E = len(edges))
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the incidence lists, queue and depth map.
//
// Errors
//
//   - ErrStartOutOfRange  if start ∉ [0, nodeCount).
//   - ErrInvalidEdge      if an edge references a node outside the range.
package bfs
