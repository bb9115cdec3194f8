// Package puzzle grades a player's pruned network and drives one puzzle
// session from setup to the solved lock.
//
// A session owns exactly one core.Network. The player removes links and
// undoes removals; Validate classifies the remaining active links, checking
// in a fixed order:
//
//  1. Connectivity: a BFS from node 0 must reach every node (Disconnected).
//  2. Tree size: exactly nodeCount-1 active links (HasCycles).
//  3. Optimality: the active cost must not exceed the minimum spanning
//     weight computed once at setup (SuboptimalCost).
//
// Passing all three yields Solved, which freezes the network until the next
// Initialize. Everything runs synchronously on the caller's goroutine; a
// Session is not safe for concurrent use.
//
// Errors:
//
//	ErrUnsolvableTable - the table has no spanning tree (wraps prim_kruskal.ErrDisconnected).
//	ErrInvalidOption   - an option carries an unusable value.
package puzzle
