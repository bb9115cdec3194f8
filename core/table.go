// File: table.go
// Role: The built-in station table plus table-level validation and helpers.

package core

import "fmt"

// StationNodes is the node count of the built-in station network.
const StationNodes = 8

// stationEdges is the authored link table of the relay station puzzle.
// Order matters: it defines edge IDs and Kruskal's tie-breaking.
var stationEdges = []EdgeSpec{
	{0, 1, 25}, {0, 2, 30}, {0, 4, 50}, {0, 7, 95},
	{1, 2, 20}, {1, 3, 35}, {2, 3, 20}, {2, 4, 25},
	{2, 6, 40}, {3, 5, 30}, {4, 6, 30}, {4, 7, 60},
	{5, 6, 20}, {5, 7, 70}, {6, 7, 45},
}

// StationTable returns a fresh copy of the built-in 8-node, 15-link table.
func StationTable() Table {
	edges := make([]EdgeSpec, len(stationEdges))
	copy(edges, stationEdges)

	return Table{Nodes: StationNodes, Edges: edges}
}

// Validate checks the structural contract of t:
// at least one node, every endpoint in range, no self-loops, no negative costs.
// Parallel links between the same pair of nodes are allowed.
//
// Connectivity of the full table is not checked here; an MST computation over
// the table reports it.
//
// Complexity: O(E).
func (t Table) Validate() error {
	if t.Nodes < 1 {
		return fmt.Errorf("%w: got %d", ErrTooFewNodes, t.Nodes)
	}
	for i, s := range t.Edges {
		if s.A < 0 || s.A >= t.Nodes || s.B < 0 || s.B >= t.Nodes {
			return fmt.Errorf("%w: edge %d (%d-%d) with %d nodes", ErrNodeOutOfRange, i, s.A, s.B, t.Nodes)
		}
		if s.A == s.B {
			return fmt.Errorf("%w: edge %d on node %d", ErrSelfLoop, i, s.A)
		}
		if s.Cost < 0 {
			return fmt.Errorf("%w: edge %d cost %d", ErrNegativeCost, i, s.Cost)
		}
	}

	return nil
}

// BuildEdges materialises the table rows into Edges whose IDs are row indices.
// The table is not validated.
func (t Table) BuildEdges() []Edge {
	out := make([]Edge, len(t.Edges))
	for i, s := range t.Edges {
		out[i] = Edge{ID: i, A: s.A, B: s.B, Cost: s.Cost}
	}

	return out
}

// TotalCost returns the sum of every link cost in the table.
func (t Table) TotalCost() int64 {
	var sum int64
	for _, s := range t.Edges {
		sum += s.Cost
	}

	return sum
}

// SumCost returns the total cost of edges.
func SumCost(edges []Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Cost
	}

	return sum
}
