package core_test

import (
	"fmt"

	"github.com/escaperoom/netstab/core"
)

// ExampleNetwork_RemoveEdge prunes two links, then walks one back.
func ExampleNetwork_RemoveEdge() {
	n, err := core.NewNetwork(core.StationTable())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	n.RemoveEdge(3)  // 0-7 (95)
	n.RemoveEdge(13) // 5-7 (70)
	fmt.Println("load:", n.ActiveTotalCost(), "links:", n.ActiveCount())

	n.UndoLastRemoval()
	fmt.Println("load:", n.ActiveTotalCost(), "history:", n.History())
	// Output:
	// load: 430 links: 13
	// load: 500 history: [3]
}
