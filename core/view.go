// File: view.go
// Role: Read-only snapshots of a Network for renderers.
// Policy:
//   - A View shares no memory with the Network it was taken from.

package core

// EdgeState pairs an edge with whether it is currently part of the network.
type EdgeState struct {
	Edge
	Active bool
}

// View is a detached snapshot of a Network.
type View struct {
	Nodes      int
	Edges      []EdgeState // all edges, sorted by ID
	ActiveCost int64
	History    []int // oldest first
	Solved     bool
}

// View captures the current state of n.
//
// Complexity: O(E + H).
func (n *Network) View() View {
	states := make([]EdgeState, len(n.edges))
	for i, e := range n.edges {
		states[i] = EdgeState{Edge: e, Active: n.active.Contains(e.ID)}
	}

	return View{
		Nodes:      n.table.Nodes,
		Edges:      states,
		ActiveCost: n.total,
		History:    n.History(),
		Solved:     n.solved,
	}
}

// ActiveCount returns how many edges of the snapshot are active.
func (v View) ActiveCount() int {
	c := 0
	for _, s := range v.Edges {
		if s.Active {
			c++
		}
	}

	return c
}
