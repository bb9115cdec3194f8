// File: adjacency.go
// Role: Int-indexed incidence lists for traversal packages (bfs, dfs, prim_kruskal).
// Determinism:
//   - Within each node's list, edges appear in the order they were supplied.

package core

import "fmt"

// Adjacency returns, for each node in [0, nodeCount), the edges incident to it.
// An undirected edge a-b is listed under both a and b.
//
// Returns ErrNodeOutOfRange if any edge endpoint is outside [0, nodeCount).
//
// Complexity: O(V + E) time and memory.
func Adjacency(nodeCount int, edges []Edge) ([][]Edge, error) {
	if nodeCount < 0 {
		nodeCount = 0
	}
	adj := make([][]Edge, nodeCount)
	for _, e := range edges {
		if e.A < 0 || e.A >= nodeCount || e.B < 0 || e.B >= nodeCount {
			return nil, fmt.Errorf("%w: edge #%d (%d-%d) with %d nodes", ErrNodeOutOfRange, e.ID, e.A, e.B, nodeCount)
		}
		adj[e.A] = append(adj[e.A], e)
		if e.A != e.B {
			adj[e.B] = append(adj[e.B], e)
		}
	}

	return adj, nil
}
