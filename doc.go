// Package netstab is the standalone core of the Network Stabilization
// console: a weighted station network the player prunes until only a
// minimum spanning tree remains.
//
// What is in the box?
//
//	core/          the fixed link table, the editable Network (active set,
//	               undo history, running load) and read-only Views
//	prim_kruskal/  minimum spanning weight via Kruskal (union-find) or Prim
//	bfs/           connectivity from node 0, with an edge filter
//	dfs/           locating one redundant loop for diagnostics
//	puzzle/        verdicts (Disconnected, HasCycles, SuboptimalCost,
//	               Solved), the Validator and the Session state machine
//	config/        YAML settings for the console
//	cmd/netstab    a terminal front-end with colours and translations
//
// The shipped station has 8 nodes and 15 links; core.StationTable lists the
// rows. All links weigh 595 together and the optimal backbone weighs 185.
//
// Everything is synchronous and single-owner: a puzzle.Session is driven
// by one caller and holds no global state.
//
//	go run github.com/escaperoom/netstab/cmd/netstab -v 2
package netstab
