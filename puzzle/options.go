package puzzle

import (
	"errors"
	"fmt"

	"github.com/escaperoom/netstab/core"
	"github.com/escaperoom/netstab/prim_kruskal"
)

// Sentinel errors returned by NewValidator and NewSession.
var (
	// ErrUnsolvableTable indicates a table whose links cannot span every node.
	ErrUnsolvableTable = errors.New("puzzle: table has no spanning tree")

	// ErrInvalidOption indicates an option with an unusable value.
	ErrInvalidOption = errors.New("puzzle: invalid option")
)

// Option configures a Validator or Session.
type Option func(*Options)

// Options holds construction settings. Hooks only apply to a Session.
type Options struct {
	// Method is the MST algorithm used for the optimal bound.
	Method string

	// HistoryLimit caps the undo history; 0 means unlimited.
	HistoryLimit int

	// OnPrune runs after a link is removed.
	OnPrune func(e core.Edge)

	// OnRestore runs after UndoLastRemoval brings a link back.
	OnRestore func(e core.Edge)

	// OnReject runs after a validation that did not solve the puzzle.
	OnReject func(r Report)

	// OnSolved runs once, when a validation first reaches VerdictSolved.
	OnSolved func(r Report)
}

// DefaultOptions returns Kruskal, unlimited history and no hooks.
func DefaultOptions() Options {
	return Options{Method: prim_kruskal.MethodKruskal}
}

// WithMethod selects the MST algorithm (prim_kruskal.MethodKruskal or
// prim_kruskal.MethodPrim).
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithHistoryLimit caps how many removals can be undone.
func WithHistoryLimit(n int) Option {
	return func(o *Options) { o.HistoryLimit = n }
}

// WithOnPrune registers a callback for every successful removal.
func WithOnPrune(fn func(e core.Edge)) Option {
	return func(o *Options) { o.OnPrune = fn }
}

// WithOnRestore registers a callback for every successful undo.
func WithOnRestore(fn func(e core.Edge)) Option {
	return func(o *Options) { o.OnRestore = fn }
}

// WithOnReject registers a callback for failed validations.
func WithOnReject(fn func(r Report)) Option {
	return func(o *Options) { o.OnReject = fn }
}

// WithOnSolved registers a callback for the solving validation.
func WithOnSolved(fn func(r Report)) Option {
	return func(o *Options) { o.OnSolved = fn }
}

// newOptions applies opts over the defaults and checks the result.
func newOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return o, fmt.Errorf("%w: unknown method %q", ErrInvalidOption, o.Method)
	}
	if o.HistoryLimit < 0 {
		return o, fmt.Errorf("%w: history limit %d", ErrInvalidOption, o.HistoryLimit)
	}

	return o, nil
}
