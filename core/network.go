// File: network.go
// Role: The player's editable network: active set, undo history, running cost.
// Determinism:
//   - ActiveEdges() and Edges() return edges sorted by Edge.ID asc.
//   - History() returns removals oldest-first, most recent last.
// Policy:
//   - Player operations are silent no-ops when invalid and report false.
//   - A frozen (solved) network rejects every mutation until Initialize.

package core

import (
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/rhartert/sparsesets"
)

// Network is the mutable state of one puzzle attempt over a fixed Table.
//
// Invariants (hold after every exported call):
//   - active ⊆ all edges;
//   - every ID on the history stack is inactive;
//   - total == sum of Cost over active edges.
type Network struct {
	table Table
	opts  networkOptions

	edges   []Edge            // immutable for the lifetime of the Network
	active  *sparsesets.Set   // IDs of edges still present
	history *arraystack.Stack // removed edge IDs (int), top = most recent
	total   int64             // running cost of the active set
	solved  bool              // terminal lock
}

// NewNetwork validates table and returns a Network initialised with every edge
// active. The table is copied; later changes to the caller's slice have no
// effect.
//
// Errors: any error from Table.Validate.
//
// Complexity: O(E).
func NewNetwork(table Table, opts ...NetworkOption) (*Network, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	o := networkOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	specs := make([]EdgeSpec, len(table.Edges))
	copy(specs, table.Edges)
	table.Edges = specs

	n := &Network{
		table:   table,
		opts:    o,
		edges:   table.BuildEdges(),
		active:  sparsesets.New(len(specs)),
		history: arraystack.New(),
	}
	n.Initialize()

	return n, nil
}

// Initialize starts a fresh attempt: every edge active, history cleared,
// running cost reset to the table total and the solved lock released.
//
// Complexity: O(E).
func (n *Network) Initialize() {
	n.active.Clear()
	for _, e := range n.edges {
		n.active.Insert(e.ID)
	}
	n.history.Clear()
	n.total = SumCost(n.edges)
	n.solved = false
}

// Reset is Initialize for an unsolved network. On a solved network it does
// nothing and returns false.
func (n *Network) Reset() bool {
	if n.solved {
		return false
	}
	n.Initialize()

	return true
}

// RemoveEdge prunes the edge with the given ID from the active set and pushes
// it on the removal history.
//
// It is a no-op returning false if the ID is unknown, the edge is already
// inactive, or the network is solved.
//
// Complexity: O(1) amortised, O(H) when a history limit evicts the oldest entry.
func (n *Network) RemoveEdge(id int) bool {
	if n.solved || !n.known(id) || !n.active.Contains(id) {
		return false
	}

	n.active.Remove(id)
	n.pushHistory(id)
	n.total -= n.edges[id].Cost

	return true
}

// UndoLastRemoval restores the most recently pruned edge.
//
// It is a no-op returning false if the history is empty or the network is
// solved.
//
// Complexity: O(1).
func (n *Network) UndoLastRemoval() bool {
	if n.solved {
		return false
	}
	top, ok := n.history.Pop()
	if !ok {
		return false
	}

	id := top.(int)
	n.active.Insert(id)
	n.total += n.edges[id].Cost

	return true
}

// Freeze sets the terminal solved lock. Only Initialize releases it.
func (n *Network) Freeze() { n.solved = true }

// Solved reports whether the network is frozen.
func (n *Network) Solved() bool { return n.solved }

// NodeCount returns the number of nodes of the underlying table.
func (n *Network) NodeCount() int { return n.table.Nodes }

// Table returns a copy of the table this network was built from.
func (n *Network) Table() Table {
	specs := make([]EdgeSpec, len(n.table.Edges))
	copy(specs, n.table.Edges)

	return Table{Nodes: n.table.Nodes, Edges: specs}
}

// ActiveTotalCost returns the summed cost of the active edges.
func (n *Network) ActiveTotalCost() int64 { return n.total }

// ActiveCount returns the number of active edges.
func (n *Network) ActiveCount() int { return n.active.Size() }

// IsActive reports whether the edge with the given ID is currently present.
// Unknown IDs report false.
func (n *Network) IsActive(id int) bool {
	return n.known(id) && n.active.Contains(id)
}

// Edge returns the edge with the given ID.
func (n *Network) Edge(id int) (Edge, bool) {
	if !n.known(id) {
		return Edge{}, false
	}

	return n.edges[id], true
}

// Edges returns every edge of the table, sorted by ID.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// ActiveEdges returns the edges currently present, sorted by ID.
//
// Complexity: O(A log A) for A active edges.
func (n *Network) ActiveEdges() []Edge {
	// Content() aliases the set's dense array; copy before sorting.
	ids := append([]int(nil), n.active.Content()...)
	sort.Ints(ids)

	out := make([]Edge, len(ids))
	for i, id := range ids {
		out[i] = n.edges[id]
	}

	return out
}

// History returns the removal history, oldest first and most recent last.
func (n *Network) History() []int {
	vals := n.history.Values() // LIFO order
	out := make([]int, len(vals))
	for i, v := range vals {
		out[len(vals)-1-i] = v.(int)
	}

	return out
}

// known reports whether id addresses an edge of this network.
func (n *Network) known(id int) bool {
	return id >= 0 && id < len(n.edges)
}

// pushHistory records id as the most recent removal, evicting the oldest
// entry when a history limit is configured and reached.
func (n *Network) pushHistory(id int) {
	limit := n.opts.historyLimit
	if limit > 0 && n.history.Size() >= limit {
		kept := n.History()[1:] // drop oldest
		n.history.Clear()
		for _, old := range kept {
			n.history.Push(old)
		}
	}
	n.history.Push(id)
}
