// Package core holds the data model of the network stabilization puzzle:
// a fixed, authored table of weighted links between numbered relay nodes, and
// the player's editable view of it.
//
// The model is intentionally plain data. Nodes are ints in [0, NodeCount),
// edges are identified by their row index in the authored Table, and nothing
// here knows about rendering or input.
//
// A Network tracks three things on top of the immutable edge list:
//
//   - the active set: edges still present in the player's network,
//   - the removal history: a LIFO stack of pruned edge IDs used by undo,
//   - the running total cost of the active set.
//
// Player operations (RemoveEdge, UndoLastRemoval, Reset) never fail: invalid
// requests are silent no-ops and report false. Once Freeze is called (the
// puzzle was solved) every mutation is rejected until Initialize starts a new
// attempt.
//
// Errors:
//
//	ErrTooFewNodes    - table declares fewer than one node.
//	ErrNodeOutOfRange - an edge references a node outside [0, Nodes).
//	ErrSelfLoop       - an edge connects a node to itself.
//	ErrNegativeCost   - an edge carries a negative cost.
//
// Concurrency: a Network has exactly one writer (the puzzle session) and is not
// safe for concurrent mutation.
package core
