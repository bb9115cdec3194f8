package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/escaperoom/netstab/bfs"
	"github.com/escaperoom/netstab/core"
)

// edgesOf builds edges with IDs equal to their position from (a, b) pairs.
func edgesOf(pairs ...[2]int) []core.Edge {
	out := make([]core.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = core.Edge{ID: i, A: p[0], B: p[1], Cost: 1}
	}

	return out
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(3, nil, 3); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("start past range: want ErrStartOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(0, nil, 0); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("empty graph: want ErrStartOutOfRange, got %v", err)
	}
	if _, err := bfs.BFS(2, edgesOf([2]int{0, 5}), 0); !errors.Is(err, bfs.ErrInvalidEdge) {
		t.Errorf("bad endpoint: want ErrInvalidEdge, got %v", err)
	}
}

// TestBFS_SingleNode covers the trivial one-node graph.
func TestBFS_SingleNode(t *testing.T) {
	res, err := bfs.BFS(1, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if got := res.Unreached(1); got != nil {
		t.Errorf("Unreached = %v; want nil", got)
	}
}

// TestBFS_CycleAndDepths covers a square cycle 0-1-2-3-0 and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	edges := edgesOf([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	res, err := bfs.BFS(4, edges, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[int]int{0: 0, 1: 1, 3: 1, 2: 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
}

// TestBFS_FilterEdge skips pruned links, which is how the validator checks connectivity.
func TestBFS_FilterEdge(t *testing.T) {
	edges := edgesOf([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	pruned := map[int]bool{1: true}

	res, err := bfs.BFS(4, edges, 0, bfs.WithFilterEdge(func(e core.Edge) bool { return !pruned[e.ID] }))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Unreached(4), []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Unreached = %v; want %v", got, want)
	}
	if res.Reached(2) {
		t.Error("Reached(2) = true; want false behind the pruned link")
	}
}

// TestBFS_ParallelEdges ensures a multigraph visits each node once.
func TestBFS_ParallelEdges(t *testing.T) {
	edges := edgesOf([2]int{0, 1}, [2]int{1, 0}, [2]int{0, 1})
	res, err := bfs.BFS(2, edges, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestReachable_Station checks that cutting every link of node 7 isolates it.
func TestReachable_Station(t *testing.T) {
	edges := core.StationTable().BuildEdges()
	var kept []core.Edge
	for _, e := range edges {
		if e.A != 7 && e.B != 7 {
			kept = append(kept, e)
		}
	}

	unreached, err := bfs.Reachable(8, kept, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{7}; !reflect.DeepEqual(unreached, want) {
		t.Errorf("Reachable = %v; want %v", unreached, want)
	}

	all, err := bfs.Reachable(8, edges, 0)
	if err != nil || all != nil {
		t.Errorf("full table: got %v, %v; want nil, nil", all, err)
	}
}

// TestReachable_FilterActive restricts the walk to the links a player kept.
func TestReachable_FilterActive(t *testing.T) {
	edges := core.StationTable().BuildEdges()
	cut := map[int]bool{3: true, 11: true, 13: true, 14: true} // every link of node 7

	unreached, err := bfs.Reachable(8, edges, 0, bfs.WithFilterEdge(func(e core.Edge) bool { return !cut[e.ID] }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{7}; !reflect.DeepEqual(unreached, want) {
		t.Errorf("Reachable = %v; want %v", unreached, want)
	}
}
