// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/escaperoom/netstab/core"
)

// Kruskal computes the Minimum Spanning Tree of the undirected edges over
// nodes [0, nodeCount).
//
// Error Conditions:
//   - ErrInvalidGraph : nodeCount < 1 or an endpoint out of range.
//   - ErrDisconnected : the edges do not span every node.
//
// Steps:
//  1. Validate input. A single node yields the empty tree with weight 0.
//  2. Copy the edges, dropping self-loops, and stable-sort by ascending Cost so equal costs keep input order.
//  3. Walk the sorted edges; whenever the endpoints lie in different DSU sets, union them and keep the edge.
//  4. Stop at |V|-1 kept edges. Fewer than that after the walk means the graph is disconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(nodeCount int, edges []core.Edge) ([]core.Edge, int64, error) {
	if err := validate(nodeCount, edges); err != nil {
		return nil, 0, err
	}
	if nodeCount == 1 {
		return []core.Edge{}, 0, nil
	}

	sorted := make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		if e.A == e.B {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost < sorted[j].Cost
	})

	var (
		dsu   = NewDSU(nodeCount)
		mst   = make([]core.Edge, 0, nodeCount-1)
		total int64
	)
	for _, e := range sorted {
		if !dsu.Union(e.A, e.B) {
			continue // would close a cycle
		}
		mst = append(mst, e)
		total += e.Cost
		if len(mst) == nodeCount-1 {
			break
		}
	}

	if len(mst) < nodeCount-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// MinimumSpanningWeight returns the total cost of a minimum spanning tree of
// edges over nodes [0, nodeCount). The result is independent of edge order.
//
// Errors are those of Kruskal.
func MinimumSpanningWeight(edges []core.Edge, nodeCount int) (int64, error) {
	_, total, err := Kruskal(nodeCount, edges)
	if err != nil {
		return 0, err
	}

	return total, nil
}
