// Package backtrack implements the classical recursive backtracking
// procedure as a lazy, generic, depth-first enumeration.
//
// The walk starts at a root candidate and explores the search tree induced
// by First (first child) and Next (next sibling), left to right. Reject
// prunes a subtree before it is entered; Accept marks a candidate as a
// solution. Accepted candidates are yielded in discovery order and the walk
// then continues into their extensions, because in the general contract a
// solution may have solution descendants.
package backtrack

import (
	"iter"
)

// walker carries the per-run state of one backtracking enumeration.
type walker[C any] struct {
	prob    Problem[C] // callback bundle describing the search space
	opts    Options    // resolved run options
	visited uint64     // candidates entered so far, for MaxNodes
}

// All returns a lazy sequence of every accepted candidate reachable from
// root, in depth-first, left-to-right order. The search runs only while the
// sequence is consumed: breaking out of the range loop abandons the
// remaining tree immediately.
//
// All panics if p is nil. It never mutates root; candidate values flow only
// through the Problem callbacks.
func All[C any](root C, p Problem[C], opts ...Option) iter.Seq[C] {
	// 1. Validate the callback set
	if p == nil {
		panic("backtrack: nil Problem")
	}

	// 2. Apply options
	bopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&bopts)
	}

	// 3. Defer the walk until the sequence is consumed
	return func(yield func(C) bool) {
		w := walker[C]{prob: p, opts: bopts}
		w.walk(root, yield)
	}
}

// First runs the enumeration only long enough to obtain its first element.
// It returns ok=false when the search space contains no accepted candidate
// (or the walk was cut short by context or node budget before finding one).
func First[C any](root C, p Problem[C], opts ...Option) (C, bool) {
	var (
		out   C
		found bool
	)
	for c := range All(root, p, opts...) {
		out, found = c, true

		break
	}

	return out, found
}

// walk visits candidate c and recurses into its extensions.
// It returns false when the whole enumeration must stop: the consumer broke
// out of the sequence, the context was cancelled, or the node budget ran out.
// Returning true after a Reject only abandons this subtree; siblings proceed.
func (w *walker[C]) walk(c C, yield func(C) bool) bool {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return false
	default:
	}

	// 2. Node budget
	if w.opts.MaxNodes > 0 && w.visited >= w.opts.MaxNodes {
		return false
	}
	w.visited++
	if w.opts.Stats != nil {
		w.opts.Stats.Visited++
	}

	// 3. Prune hopeless candidates together with their subtrees
	if w.prob.Reject(c) {
		if w.opts.Stats != nil {
			w.opts.Stats.Rejected++
		}

		return true
	}

	// 4. Report solutions, then keep extending them
	if w.prob.Accept(c) {
		if w.opts.Stats != nil {
			w.opts.Stats.Accepted++
		}
		if !yield(c) {
			return false
		}
	}

	// 5. Descend to the first extension; a leaf ends this branch
	s, ok := w.prob.First(c)
	if !ok {
		return true
	}

	// 6. Walk the sibling chain left to right
	for ok {
		if !w.walk(s, yield) {
			return false
		}
		s, ok = w.prob.Next(s)
	}

	return true
}
