package dfs

import "errors"

// Visitation states of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are finished.
)

// ErrInvalidEdge indicates an edge endpoint outside [0, nodeCount).
var ErrInvalidEdge = errors.New("dfs: edge endpoint out of range")
