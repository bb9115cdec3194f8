// Package bfs provides tunable options and error definitions
// for breadth-first search over an int-indexed edge list.
package bfs

import (
	"errors"

	"github.com/escaperoom/netstab/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start node is not in [0, nodeCount).
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrInvalidEdge is returned when an edge references a node outside the range.
	ErrInvalidEdge = errors.New("bfs: edge endpoint out of range")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// FilterEdge can skip edges by returning false.
	FilterEdge func(e core.Edge) bool
}

// DefaultOptions returns a BFSOptions that follows every edge.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		FilterEdge: func(core.Edge) bool { return true },
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	Start int
	Order []int
	Depth map[int]int
}

// Reached reports whether node v was visited.
func (r *BFSResult) Reached(v int) bool {
	_, ok := r.Depth[v]
	return ok
}

// Unreached lists the nodes in [0, nodeCount) that the walk never reached,
// in ascending order. A nil result means the walk spans every node.
func (r *BFSResult) Unreached(nodeCount int) []int {
	var out []int
	for v := 0; v < nodeCount; v++ {
		if !r.Reached(v) {
			out = append(out, v)
		}
	}
	return out
}
