package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escaperoom/netstab/core"
)

// newStation builds a Network over the built-in station table.
func newStation(t *testing.T, opts ...core.NetworkOption) *core.Network {
	t.Helper()
	n, err := core.NewNetwork(core.StationTable(), opts...)
	require.NoError(t, err)

	return n
}

// TestNetwork_Initialize verifies the fresh state: all 15 links active, full cost, empty history.
func TestNetwork_Initialize(t *testing.T) {
	n := newStation(t)

	assert.Equal(t, 8, n.NodeCount())
	assert.Equal(t, 15, n.ActiveCount())
	assert.Len(t, n.ActiveEdges(), 15)
	assert.Equal(t, int64(595), n.ActiveTotalCost())
	assert.Empty(t, n.History())
	assert.False(t, n.Solved())

	// ActiveEdges is sorted by ID and mirrors the table rows.
	for i, e := range n.ActiveEdges() {
		assert.Equal(t, i, e.ID)
	}
}

// TestNetwork_RemoveEdge covers the happy path and running-cost bookkeeping.
func TestNetwork_RemoveEdge(t *testing.T) {
	n := newStation(t)

	require.True(t, n.RemoveEdge(3)) // 0-7 (95)
	assert.False(t, n.IsActive(3))
	assert.Equal(t, 14, n.ActiveCount())
	assert.Equal(t, int64(595-95), n.ActiveTotalCost())
	assert.Equal(t, []int{3}, n.History())

	require.True(t, n.RemoveEdge(13)) // 5-7 (70)
	assert.Equal(t, []int{3, 13}, n.History())
	assert.Equal(t, int64(595-95-70), n.ActiveTotalCost())
}

// TestNetwork_InvalidOpsAreNoOps ensures invalid requests leave the state untouched.
func TestNetwork_InvalidOpsAreNoOps(t *testing.T) {
	n := newStation(t)
	before := n.View()

	assert.False(t, n.UndoLastRemoval(), "undo on empty history")
	assert.False(t, n.RemoveEdge(-1), "negative id")
	assert.False(t, n.RemoveEdge(15), "id past the end")
	assert.Equal(t, before, n.View())

	require.True(t, n.RemoveEdge(0))
	afterFirst := n.View()
	assert.False(t, n.RemoveEdge(0), "already removed")
	assert.Equal(t, afterFirst, n.View())
}

// TestNetwork_UndoIsInverse checks RemoveEdge followed by UndoLastRemoval for every edge.
func TestNetwork_UndoIsInverse(t *testing.T) {
	n := newStation(t)
	// Start from a partially pruned state so history is non-trivial.
	require.True(t, n.RemoveEdge(3))
	require.True(t, n.RemoveEdge(8))

	for _, e := range n.ActiveEdges() {
		cost := n.ActiveTotalCost()
		active := n.ActiveEdges()
		history := n.History()

		require.True(t, n.RemoveEdge(e.ID))
		require.True(t, n.UndoLastRemoval())

		assert.Equal(t, cost, n.ActiveTotalCost(), "cost after undo of %v", e)
		assert.Equal(t, active, n.ActiveEdges(), "active set after undo of %v", e)
		assert.Equal(t, history, n.History(), "history after undo of %v", e)
	}
}

// TestNetwork_UndoOrder verifies LIFO restoration.
func TestNetwork_UndoOrder(t *testing.T) {
	n := newStation(t)
	for _, id := range []int{1, 5, 9} {
		require.True(t, n.RemoveEdge(id))
	}

	require.True(t, n.UndoLastRemoval())
	assert.True(t, n.IsActive(9))
	assert.False(t, n.IsActive(5))
	assert.Equal(t, []int{1, 5}, n.History())

	require.True(t, n.UndoLastRemoval())
	require.True(t, n.UndoLastRemoval())
	assert.False(t, n.UndoLastRemoval())
	assert.Equal(t, int64(595), n.ActiveTotalCost())
}

// TestNetwork_FreezeLocksMutation checks the terminal solved lock.
func TestNetwork_FreezeLocksMutation(t *testing.T) {
	n := newStation(t)
	require.True(t, n.RemoveEdge(2))
	n.Freeze()
	frozen := n.View()

	assert.False(t, n.RemoveEdge(4))
	assert.False(t, n.UndoLastRemoval())
	assert.False(t, n.Reset())
	assert.Equal(t, frozen, n.View())
	assert.True(t, n.Solved())

	// Initialize is the explicit new-attempt path and releases the lock.
	n.Initialize()
	assert.False(t, n.Solved())
	assert.Equal(t, 15, n.ActiveCount())
}

// TestNetwork_Reset restores the initial state.
func TestNetwork_Reset(t *testing.T) {
	n := newStation(t)
	initial := n.View()
	for _, id := range []int{0, 1, 2, 3} {
		require.True(t, n.RemoveEdge(id))
	}

	require.True(t, n.Reset())
	assert.Equal(t, initial, n.View())
}

// TestNetwork_HistoryLimit verifies that the oldest entry is forgotten but stays removed.
func TestNetwork_HistoryLimit(t *testing.T) {
	n := newStation(t, core.WithHistoryLimit(2))
	for _, id := range []int{0, 1, 2} {
		require.True(t, n.RemoveEdge(id))
	}
	assert.Equal(t, []int{1, 2}, n.History())

	require.True(t, n.UndoLastRemoval())
	require.True(t, n.UndoLastRemoval())
	assert.False(t, n.UndoLastRemoval())
	assert.False(t, n.IsActive(0), "evicted entry is not restored")
	assert.Equal(t, int64(595-25), n.ActiveTotalCost())
}

// TestNetwork_TableIsCopied guards against aliasing of the caller's slice.
func TestNetwork_TableIsCopied(t *testing.T) {
	table := core.StationTable()
	n, err := core.NewNetwork(table)
	require.NoError(t, err)

	table.Edges[0].Cost = 1000
	e, ok := n.Edge(0)
	require.True(t, ok)
	assert.Equal(t, int64(25), e.Cost)
	assert.Equal(t, int64(25), n.Table().Edges[0].Cost)
}

// TestNetwork_View checks the snapshot is detached and consistent.
func TestNetwork_View(t *testing.T) {
	n := newStation(t)
	require.True(t, n.RemoveEdge(14))

	v := n.View()
	assert.Equal(t, 8, v.Nodes)
	assert.Len(t, v.Edges, 15)
	assert.Equal(t, 14, v.ActiveCount())
	assert.False(t, v.Edges[14].Active)
	assert.Equal(t, int64(595-45), v.ActiveCost)
	assert.Equal(t, []int{14}, v.History)

	require.True(t, n.UndoLastRemoval())
	assert.False(t, v.Edges[14].Active, "snapshot must not follow later mutations")
}
