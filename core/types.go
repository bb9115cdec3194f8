// File: types.go
// Role: Edge, EdgeSpec, Table, sentinel errors and NetworkOption.
// Determinism:
//   - Edge.ID equals the row index of the EdgeSpec it was built from.
// Policy:
//   - Tables are validated once, at NewNetwork time; player operations never error.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for table validation.
var (
	// ErrTooFewNodes indicates a table that declares no nodes at all.
	ErrTooFewNodes = errors.New("core: table needs at least one node")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, Nodes).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop edge")

	// ErrNegativeCost indicates an edge with a cost below zero.
	ErrNegativeCost = errors.New("core: negative edge cost")
)

// EdgeSpec is one authored row of a Table: an undirected link between nodes
// A and B with the given Cost.
type EdgeSpec struct {
	A    int
	B    int
	Cost int64
}

// Edge is an EdgeSpec bound to its identity inside a Network.
//
// ID is the index of the originating row in Table.Edges and is the handle the
// presentation layer uses to prune or restore a link.
type Edge struct {
	// ID uniquely identifies this edge in its Table.
	ID int

	// A and B are the endpoints. The pair is unordered.
	A int
	B int

	// Cost is the immutable weight of the link.
	Cost int64
}

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint of e, Other returns -1.
func (e Edge) Other(v int) int {
	switch v {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		return -1
	}
}

// String renders the edge as "#id a-b (cost)".
func (e Edge) String() string {
	return fmt.Sprintf("#%d %d-%d (%d)", e.ID, e.A, e.B, e.Cost)
}

// Table is the static topology of one puzzle: the number of nodes and the
// ordered list of weighted links between them.
type Table struct {
	Nodes int
	Edges []EdgeSpec
}

// NetworkOption configures a Network at construction time.
type NetworkOption func(*networkOptions)

// networkOptions holds construction-time settings for a Network.
type networkOptions struct {
	// historyLimit caps the undo stack; 0 means unlimited.
	historyLimit int
}

// WithHistoryLimit caps how many removals UndoLastRemoval can walk back.
// When the cap is reached the oldest history entry is forgotten; the edge it
// referred to stays removed. n <= 0 means unlimited.
func WithHistoryLimit(n int) NetworkOption {
	return func(o *networkOptions) {
		if n < 0 {
			n = 0
		}
		o.historyLimit = n
	}
}
