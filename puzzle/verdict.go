package puzzle

import "fmt"

// Verdict classifies one validation attempt.
type Verdict int

const (
	// VerdictDisconnected: some node is not reachable from node 0.
	VerdictDisconnected Verdict = iota + 1
	// VerdictHasCycles: connected, but not exactly nodeCount-1 links.
	VerdictHasCycles
	// VerdictSuboptimalCost: a spanning tree, but heavier than the minimum.
	VerdictSuboptimalCost
	// VerdictSolved: a minimum spanning tree.
	VerdictSolved
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case VerdictDisconnected:
		return "Disconnected"
	case VerdictHasCycles:
		return "HasCycles"
	case VerdictSuboptimalCost:
		return "SuboptimalCost"
	case VerdictSolved:
		return "Solved"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// State is the session-level phase.
type State int

const (
	// StateSetup: constructed but never initialised.
	StateSetup State = iota
	// StateEditing: the player may prune and undo.
	StateEditing
	// StateSolved: terminal until the next Initialize.
	StateSolved
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "Setup"
	case StateEditing:
		return "Editing"
	case StateSolved:
		return "Solved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Report is the detailed outcome of a validation.
type Report struct {
	Verdict Verdict

	// Cost is the summed cost of the active links; Minimum the optimal bound.
	Cost    int64
	Minimum int64

	// EdgeCount is the number of active links.
	EdgeCount int

	// Unreached lists nodes BFS could not reach from node 0, ascending.
	// Only set for VerdictDisconnected.
	Unreached []int

	// Cycle holds the IDs of one redundant loop among the active links.
	// Only set for VerdictHasCycles.
	Cycle []int
}

// Excess returns how far the active cost lies above the minimum.
func (r Report) Excess() int64 { return r.Cost - r.Minimum }

// Solved reports whether the verdict is VerdictSolved.
func (r Report) Solved() bool { return r.Verdict == VerdictSolved }
