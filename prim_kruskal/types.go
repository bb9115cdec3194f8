// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/escaperoom/netstab/core"
)

// ErrInvalidGraph indicates that the node count or an edge endpoint is invalid.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph")

// ErrRootOutOfRange indicates that Prim's start node is not in [0, nodeCount).
var ErrRootOutOfRange = errors.New("prim_kruskal: root node out of range")

// ErrDisconnected indicates that the edges do not connect every node, so no
// spanning tree exists.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting node to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, root 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
// An unknown method returns ErrInvalidGraph.
func Compute(nodeCount int, edges []core.Edge, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(nodeCount, edges)
	case MethodPrim:
		return Prim(nodeCount, edges, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: unknown method %q", ErrInvalidGraph, opts.Method)
	}
}

// validate checks nodeCount and endpoints shared by both algorithms.
func validate(nodeCount int, edges []core.Edge) error {
	if nodeCount < 1 {
		return fmt.Errorf("%w: node count %d", ErrInvalidGraph, nodeCount)
	}
	for _, e := range edges {
		if e.A < 0 || e.A >= nodeCount || e.B < 0 || e.B >= nodeCount {
			return fmt.Errorf("%w: edge %v with %d nodes", ErrInvalidGraph, e, nodeCount)
		}
	}

	return nil
}
