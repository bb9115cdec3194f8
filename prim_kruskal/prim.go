// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"fmt"

	"github.com/rhartert/yagh"

	"github.com/escaperoom/netstab/core"
)

// Prim computes the Minimum Spanning Tree of the undirected edges over nodes
// [0, nodeCount) by growing outwards from root.
//
// Error Conditions:
//   - ErrInvalidGraph   : nodeCount < 1 or an endpoint out of range.
//   - ErrRootOutOfRange : root ∉ [0, nodeCount).
//   - ErrDisconnected   : some node cannot be reached from root.
//
// Steps:
//  1. Validate input and build incidence lists.
//  2. best[v] holds the cheapest known link from the tree to v once via[v] >= 0; the heap is keyed by it.
//  3. Pop the cheapest outside node, attach it through its best link, relax its neighbours.
//  4. Fewer than |V|-1 tree edges once the heap drains means the graph is disconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(nodeCount int, edges []core.Edge, root int) ([]core.Edge, int64, error) {
	if err := validate(nodeCount, edges); err != nil {
		return nil, 0, err
	}
	if root < 0 || root >= nodeCount {
		return nil, 0, fmt.Errorf("%w: %d not in [0, %d)", ErrRootOutOfRange, root, nodeCount)
	}
	if nodeCount == 1 {
		return []core.Edge{}, 0, nil
	}

	adj, err := core.Adjacency(nodeCount, edges)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
	}

	best := make([]int64, nodeCount)
	via := make([]int, nodeCount) // ID of the edge behind best[v]; -1 while unseen
	link := make([]core.Edge, nodeCount)
	inTree := make([]bool, nodeCount)
	for i := range via {
		via[i] = -1
	}

	h := yagh.New[int64](nodeCount)
	h.Put(root, 0)
	best[root] = 0

	var (
		mst   = make([]core.Edge, 0, nodeCount-1)
		total int64
	)
	for h.Size() > 0 {
		entry := h.Pop()
		u := entry.Elem
		inTree[u] = true
		if via[u] >= 0 {
			mst = append(mst, link[u])
			total += link[u].Cost
		}

		for _, e := range adj[u] {
			v := e.Other(u)
			if inTree[v] || (via[v] >= 0 && e.Cost >= best[v]) {
				continue
			}
			best[v] = e.Cost
			via[v] = e.ID
			link[v] = e
			h.Put(v, e.Cost)
		}
	}

	if len(mst) < nodeCount-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
