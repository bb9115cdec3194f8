package puzzle

import (
	"errors"
	"fmt"

	"github.com/escaperoom/netstab/bfs"
	"github.com/escaperoom/netstab/core"
	"github.com/escaperoom/netstab/dfs"
	"github.com/escaperoom/netstab/prim_kruskal"
)

// Validate classifies the active links over nodes [0, nodeCount) against
// minimumWeight. Checks run in a fixed order: connectivity from node 0, then
// link count, then cost. Input that BFS rejects (nodeCount < 1 or an endpoint
// out of range) is reported as VerdictDisconnected.
//
// Complexity: O(V + E).
func Validate(nodeCount int, active []core.Edge, minimumWeight int64) Verdict {
	unreached, err := bfs.Reachable(nodeCount, active, 0)
	return grade(nodeCount, active, minimumWeight, unreached, err, false).Verdict
}

// grade builds a Report from the active links and the outcome of the
// connectivity walk. With diagnose set, Unreached and Cycle are filled.
func grade(nodeCount int, active []core.Edge, minimumWeight int64, unreached []int, walkErr error, diagnose bool) Report {
	r := Report{
		Cost:      core.SumCost(active),
		Minimum:   minimumWeight,
		EdgeCount: len(active),
	}

	if walkErr != nil || len(unreached) > 0 {
		r.Verdict = VerdictDisconnected
		if diagnose {
			r.Unreached = unreached
		}
		return r
	}

	if len(active) != nodeCount-1 {
		r.Verdict = VerdictHasCycles
		if diagnose {
			// Connected with too many links, so a cycle always exists.
			if _, cycle, err := dfs.FindCycle(nodeCount, active); err == nil {
				r.Cycle = cycle
			}
		}
		return r
	}

	if r.Cost > minimumWeight {
		r.Verdict = VerdictSuboptimalCost
		return r
	}

	r.Verdict = VerdictSolved

	return r
}

// Validator grades selections against one table. The minimum spanning
// weight is computed once, at construction.
type Validator struct {
	nodes   int
	minimum int64
	tree    []core.Edge
}

// NewValidator validates table and computes its optimal bound with the
// configured MST method. Hook options are ignored.
//
// Errors:
//   - any error from core.Table.Validate;
//   - ErrInvalidOption for an unknown method;
//   - ErrUnsolvableTable (also matching prim_kruskal.ErrDisconnected) when
//     the table has no spanning tree.
func NewValidator(table core.Table, opts ...Option) (*Validator, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return newValidator(table, o)
}

func newValidator(table core.Table, o Options) (*Validator, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	mst := prim_kruskal.NewOptions(prim_kruskal.WithMethod(o.Method))
	tree, total, err := prim_kruskal.Compute(table.Nodes, table.BuildEdges(), mst)
	if errors.Is(err, prim_kruskal.ErrDisconnected) {
		return nil, fmt.Errorf("%w: %w", ErrUnsolvableTable, err)
	}
	if err != nil {
		return nil, err
	}

	return &Validator{nodes: table.Nodes, minimum: total, tree: tree}, nil
}

// Validate grades active with diagnostics.
func (v *Validator) Validate(active []core.Edge) Report {
	unreached, err := bfs.Reachable(v.nodes, active, 0)
	return grade(v.nodes, active, v.minimum, unreached, err, true)
}

// ValidateNetwork grades the active links of n with diagnostics. The
// connectivity walk runs over the whole table and skips pruned links.
func (v *Validator) ValidateNetwork(n *core.Network) Report {
	unreached, err := bfs.Reachable(n.NodeCount(), n.Edges(), 0,
		bfs.WithFilterEdge(func(e core.Edge) bool { return n.IsActive(e.ID) }))
	return grade(n.NodeCount(), n.ActiveEdges(), v.minimum, unreached, err, true)
}

// MinimumWeight returns the cached optimal bound.
func (v *Validator) MinimumWeight() int64 { return v.minimum }

// NodeCount returns the number of nodes of the graded table.
func (v *Validator) NodeCount() int { return v.nodes }

// OptimalTree returns one minimum spanning tree of the table, in the order
// the MST algorithm selected its links.
func (v *Validator) OptimalTree() []core.Edge {
	out := make([]core.Edge, len(v.tree))
	copy(out, v.tree)

	return out
}
