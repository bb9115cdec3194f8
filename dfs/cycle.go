package dfs

import (
	"fmt"

	"github.com/escaperoom/netstab/core"
)

// FindCycle inspects the undirected edges over nodes [0, nodeCount) and
// returns the IDs of the edges forming one simple cycle, in walk order.
// Returns (false, nil, nil) when the edges form a forest.
func FindCycle(nodeCount int, edges []core.Edge) (bool, []int, error) {
	adj, err := core.Adjacency(nodeCount, edges)
	if err != nil {
		return false, nil, fmt.Errorf("%w: %v", ErrInvalidEdge, err)
	}

	f := &finder{
		adj:   adj,
		state: make([]int, len(adj)),
		path:  make([]int, 0, len(adj)),
		via:   make([]int, 0, len(adj)),
	}
	for v := range adj {
		if f.state[v] != White {
			continue
		}
		if f.visit(v, -1) {
			return true, f.cycle, nil
		}
	}

	return false, nil, nil
}

// IsForest reports whether the edges contain no cycle.
func IsForest(nodeCount int, edges []core.Edge) (bool, error) {
	has, _, err := FindCycle(nodeCount, edges)
	if err != nil {
		return false, err
	}

	return !has, nil
}

// finder carries DFS state for FindCycle.
type finder struct {
	adj   [][]core.Edge
	state []int
	path  []int // nodes on the recursion stack
	via   []int // via[i] is the edge ID that led to path[i]; -1 for the root
	cycle []int
}

// visit explores from node id, which was reached through edge arrival
// (-1 for a root). It reports true as soon as a cycle has been recorded.
func (f *finder) visit(id, arrival int) bool {
	f.state[id] = Gray
	f.path = append(f.path, id)
	f.via = append(f.via, arrival)

	for _, e := range f.adj[id] {
		// Walking back along the arrival edge is not a cycle; a parallel
		// edge to the parent is.
		if e.ID == arrival {
			continue
		}
		nbr := e.Other(id)
		switch f.state[nbr] {
		case White:
			if f.visit(nbr, e.ID) {
				return true
			}
		case Gray:
			f.record(nbr, e.ID)
			return true
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.via = f.via[:len(f.via)-1]
	f.state[id] = Black

	return false
}

// record stores the cycle that starts at the Gray node start and is closed by
// edge closing from the node on top of the stack.
func (f *finder) record(start, closing int) {
	idx := indexOf(f.path, start)
	cycle := append([]int(nil), f.via[idx+1:]...)
	f.cycle = append(cycle, closing)
}

// indexOf returns the position of v in s, or -1.
func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}
