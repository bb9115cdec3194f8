// Package dfs implements depth-first cycle detection over undirected,
// int-indexed edge lists.
//
// What:
//
//   - FindCycle: returns the edge IDs of one simple cycle, if any. Parallel
//     links between the same pair of nodes form a 2-cycle; a self-loop is a
//     1-cycle.
//   - IsForest: reports whether the edges contain no cycle at all.
//
// Why:
//
//	When a player's network is connected but still has too many links, the
//	validator reports a cycle. FindCycle names the exact links in one such
//	loop so the presentation layer can highlight them.
//
// How:
//
//	Nodes are coloured White (unvisited), Gray (on the recursion stack) and
//	Black (finished). Walking an edge other than the one we arrived by into a
//	Gray node closes a cycle. The arrival edge is tracked by ID, not by parent
//	node, so parallel links are detected.
//
// Determinism:
//
//	Roots are tried in ascending node order and incident edges in input
//	order, so the reported cycle is stable for a fixed input slice.
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) (recursion stack + colour slice).
//
// Errors:
//
//   - ErrInvalidEdge: an edge endpoint is outside [0, nodeCount).
package dfs
