// Package backtrack defines the problem contract and options for generic
// depth-first backtracking: candidate callbacks, run statistics,
// cancellation, and node budgets.
package backtrack

import (
	"context"
)

// Problem describes a backtracking search space over candidates of type C.
//
// The engine never inspects C itself; it only calls these four methods.
// Implementations must be pure with respect to the candidate argument:
// a candidate passed in is never mutated by the engine, and extending a
// candidate (First) must not alias state reachable from its parent.
type Problem[C any] interface {
	// Reject reports whether candidate c cannot be completed to a valid
	// solution. A rejected candidate is pruned together with its entire
	// subtree; its siblings are still visited.
	Reject(c C) bool

	// Accept reports whether candidate c is a solution. Accepted
	// candidates are yielded to the consumer and then extended further,
	// since an accepted candidate may still have accepted descendants.
	Accept(c C) bool

	// First returns the first extension of candidate c, or ok=false when
	// c has no extensions (it is a leaf of the search tree).
	First(c C) (next C, ok bool)

	// Next returns the sibling immediately after candidate s in the fixed
	// branching order, or ok=false when s is the last sibling.
	Next(s C) (next C, ok bool)
}

// Funcs bundles plain functions into a Problem. It is the lightweight
// alternative to defining a named type when the callbacks are closures.
//
// All four fields are mandatory; a nil field panics on first use.
type Funcs[C any] struct {
	RejectFunc func(c C) bool
	AcceptFunc func(c C) bool
	FirstFunc  func(c C) (C, bool)
	NextFunc   func(s C) (C, bool)
}

// Reject implements Problem.
func (f Funcs[C]) Reject(c C) bool {
	if f.RejectFunc == nil {
		panic("backtrack: Funcs.RejectFunc is nil")
	}

	return f.RejectFunc(c)
}

// Accept implements Problem.
func (f Funcs[C]) Accept(c C) bool {
	if f.AcceptFunc == nil {
		panic("backtrack: Funcs.AcceptFunc is nil")
	}

	return f.AcceptFunc(c)
}

// First implements Problem.
func (f Funcs[C]) First(c C) (C, bool) {
	if f.FirstFunc == nil {
		panic("backtrack: Funcs.FirstFunc is nil")
	}

	return f.FirstFunc(c)
}

// Next implements Problem.
func (f Funcs[C]) Next(s C) (C, bool) {
	if f.NextFunc == nil {
		panic("backtrack: Funcs.NextFunc is nil")
	}

	return f.NextFunc(s)
}

// Stats accumulates counters for one engine run. Install with WithStats;
// the engine increments the fields in place while the sequence is consumed.
// Counters are not synchronized: read them only after the walk finished.
type Stats struct {
	// Visited counts candidates entered by the walk, the root included.
	Visited uint64

	// Rejected counts candidates pruned by Reject.
	Rejected uint64

	// Accepted counts candidates reported as solutions, even if the
	// consumer stopped before draining the sequence.
	Accepted uint64
}

// Option configures optional behavior of a backtracking walk.
// Use with All(root, p, opts...) or First(root, p, opts...).
type Option func(*Options)

// Options holds configurable parameters for a backtracking walk.
// The zero value is not ready for use; start from DefaultOptions.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// When Ctx is done the sequence simply stops yielding. Callers that
	// need to distinguish exhaustion from cancellation check ctx.Err().
	Ctx context.Context

	// Stats, if non-nil, receives visit/reject/accept counters.
	Stats *Stats

	// MaxNodes, if positive, bounds how many candidates the walk may
	// enter before it stops. Zero means no bound.
	MaxNodes uint64
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - no statistics collection
//   - no node budget
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Stats:    nil,
		MaxNodes: 0,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStats returns an Option that installs st as the counter sink.
// The engine adds to the existing field values rather than resetting them,
// so one Stats value may aggregate several runs.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

// WithMaxNodes returns an Option that bounds the walk to n candidates.
// The bound counts every candidate entered, not only accepted ones.
func WithMaxNodes(n uint64) Option {
	return func(o *Options) {
		o.MaxNodes = n
	}
}
