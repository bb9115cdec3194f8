// Package bfs provides breadth-first search over an int-indexed edge list,
// returning hop distances and visit order.
package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/escaperoom/netstab/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     [][]core.Edge
	opts    BFSOptions
	queue   []queueItem
	visited mapset.Set[int]
	res     *BFSResult
}

// BFS runs breadth-first search over edges on nodes [0, nodeCount), starting
// from start and applying any number of functional Options.
// Returns ErrStartOutOfRange or ErrInvalidEdge for invalid input.
func BFS(nodeCount int, edges []core.Edge, start int, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if start < 0 || start >= nodeCount {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfRange, start, nodeCount)
	}

	adj, err := core.Adjacency(nodeCount, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEdge, err)
	}

	w := &walker{
		adj:     adj,
		opts:    o,
		queue:   make([]queueItem, 0, nodeCount),
		visited: mapset.New[int](),
		res: &BFSResult{
			Start: start,
			Order: make([]int, 0, nodeCount),
			Depth: make(map[int]int, nodeCount),
		},
	}

	w.enqueue(start, 0)
	w.loop()

	return w.res, nil
}

// Reachable is a convenience wrapper returning the nodes of [0, nodeCount)
// that BFS from start does not reach. A nil result means every node is reached.
func Reachable(nodeCount int, edges []core.Edge, start int, opts ...Option) (unreached []int, err error) {
	res, err := BFS(nodeCount, edges, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Unreached(nodeCount), nil
}

// enqueue marks node visited at depth d and adds it to the queue.
func (w *walker) enqueue(node, d int) {
	w.visited.Put(node)
	w.res.Depth[node] = d
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)
		w.enqueueNeighbors(item)
	}
}

// enqueueNeighbors applies filtering to every incident edge and enqueues
// each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, e := range w.adj[item.node] {
		if !w.opts.FilterEdge(e) {
			continue
		}
		nbr := e.Other(item.node)
		if !w.visited.Has(nbr) {
			w.enqueue(nbr, item.depth+1)
		}
	}
}
