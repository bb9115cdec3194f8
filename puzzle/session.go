// File: session.go
// Role: One player's pass over a puzzle console, from setup
// to the solved lock.
// Policy:
//   - Player operations never error; invalid ones are no-ops reporting false.
//   - Hooks run synchronously, after the state change they describe.

package puzzle

import (
	"github.com/plan-systems/klog"

	"github.com/escaperoom/netstab/core"
)

// Session owns the network and validator of one puzzle console.
type Session struct {
	opts      Options
	validator *Validator
	network   *core.Network

	state    State
	attempts int
	last     Report
	graded   bool
}

// NewSession validates table, computes its optimal bound and returns a
// session in StateSetup. Call Initialize to start editing.
//
// Errors are those of NewValidator.
func NewSession(table core.Table, opts ...Option) (*Session, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	v, err := newValidator(table, o)
	if err != nil {
		return nil, err
	}
	n, err := core.NewNetwork(table, core.WithHistoryLimit(o.HistoryLimit))
	if err != nil {
		return nil, err
	}

	return &Session{opts: o, validator: v, network: n, state: StateSetup}, nil
}

// Initialize starts a fresh attempt: every link active, empty history,
// attempt counter cleared and any solved lock released.
func (s *Session) Initialize() {
	s.network.Initialize()
	s.state = StateEditing
	s.attempts = 0
	s.last, s.graded = Report{}, false
	klog.V(1).Infof("puzzle: initialised %d nodes, %d links, load %d, target %d",
		s.network.NodeCount(), s.network.ActiveCount(), s.network.ActiveTotalCost(), s.validator.MinimumWeight())
}

// Reset is Initialize while the puzzle is unsolved. It returns false,
// changing nothing, once the puzzle is solved.
func (s *Session) Reset() bool {
	if s.state == StateSolved {
		return false
	}
	s.network.Initialize()
	s.state = StateEditing
	s.attempts = 0
	s.last, s.graded = Report{}, false
	klog.V(1).Infof("puzzle: reset, load %d", s.network.ActiveTotalCost())

	return true
}

// RemoveEdge prunes the link with the given ID. It returns false if the
// session is not editing, the ID is unknown, or the link is already pruned.
func (s *Session) RemoveEdge(id int) bool {
	if s.state != StateEditing || !s.network.RemoveEdge(id) {
		return false
	}
	e, _ := s.network.Edge(id)
	klog.V(2).Infof("puzzle: pruned %v, load %d", e, s.network.ActiveTotalCost())
	if s.opts.OnPrune != nil {
		s.opts.OnPrune(e)
	}

	return true
}

// UndoLastRemoval restores the most recently pruned link. It returns false
// if the session is not editing or there is nothing to undo.
func (s *Session) UndoLastRemoval() bool {
	if s.state != StateEditing {
		return false
	}
	history := s.network.History()
	if !s.network.UndoLastRemoval() {
		return false
	}
	e, _ := s.network.Edge(history[len(history)-1])
	klog.V(2).Infof("puzzle: restored %v, load %d", e, s.network.ActiveTotalCost())
	if s.opts.OnRestore != nil {
		s.opts.OnRestore(e)
	}

	return true
}

// Validate grades the active links. Reaching VerdictSolved freezes the
// session; afterwards Validate returns the solving report unchanged and
// does not count as an attempt.
//
// Before Initialize the untouched network is graded without any state
// change.
func (s *Session) Validate() Report {
	switch s.state {
	case StateSolved:
		return s.last
	case StateSetup:
		return s.validator.ValidateNetwork(s.network)
	}

	s.attempts++
	r := s.validator.ValidateNetwork(s.network)
	s.last, s.graded = r, true

	if r.Solved() {
		s.network.Freeze()
		s.state = StateSolved
		klog.V(1).Infof("puzzle: solved after %d attempt(s), load %d", s.attempts, r.Cost)
		if s.opts.OnSolved != nil {
			s.opts.OnSolved(r)
		}
		return r
	}

	klog.V(2).Infof("puzzle: attempt %d rejected: %v (load %d, target %d)", s.attempts, r.Verdict, r.Cost, r.Minimum)
	if s.opts.OnReject != nil {
		s.opts.OnReject(r)
	}

	return r
}

// Confirm is Validate under the console's button name.
func (s *Session) Confirm() Report { return s.Validate() }

// MarkSolved restores a console that was solved earlier: the network is set
// to the optimal tree and frozen. No hooks run.
func (s *Session) MarkSolved() {
	s.network.Initialize()
	keep := make(map[int]bool, len(s.validator.tree))
	for _, e := range s.validator.tree {
		keep[e.ID] = true
	}
	for _, e := range s.network.Edges() {
		if !keep[e.ID] {
			s.network.RemoveEdge(e.ID)
		}
	}
	s.network.Freeze()
	s.state = StateSolved
	s.last, s.graded = s.validator.ValidateNetwork(s.network), true
	klog.V(1).Infof("puzzle: restored as solved, load %d", s.last.Cost)
}

// LastReport returns the report of the most recent counted validation.
func (s *Session) LastReport() (Report, bool) { return s.last, s.graded }

// State returns the current session phase.
func (s *Session) State() State { return s.state }

// Attempts returns how many validations were counted since Initialize.
func (s *Session) Attempts() int { return s.attempts }

// MinimumWeight returns the optimal bound of the table.
func (s *Session) MinimumWeight() int64 { return s.validator.MinimumWeight() }

// Hint returns one optimal set of links. It does not change the session.
func (s *Session) Hint() []core.Edge { return s.validator.OptimalTree() }

// ActiveTotalCost returns the current load.
func (s *Session) ActiveTotalCost() int64 { return s.network.ActiveTotalCost() }

// ActiveEdges returns the links still present, sorted by ID.
func (s *Session) ActiveEdges() []core.Edge { return s.network.ActiveEdges() }

// Edges returns every link of the table, sorted by ID.
func (s *Session) Edges() []core.Edge { return s.network.Edges() }

// View returns a detached snapshot for rendering.
func (s *Session) View() core.View { return s.network.View() }
