// Package sudoku solving operations on top of the backtrack engine.
//
// The adapter fixes both orderings once and for all: the branching variable
// is always the lowest-index empty cell, and its candidate digits are tried
// in ascending order 1..9. No heuristics, no propagation; pruning happens
// exactly when a partial board already breaks a row, column or box. The
// payoff is bit-for-bit reproducible runs and an engine walk that is trivial
// to reason about.
package sudoku

import (
	"iter"

	"github.com/katalvlaran/sudoq/backtrack"
)

// state is one search candidate: a private copy of the board plus the index
// of the cell the latest step assigned. Next re-branches on that cell; the
// root's cell index is a placeholder the engine never reads, because Next is
// only ever invoked on states produced by First.
type state struct {
	board Board
	cell  int
}

// problem implements backtrack.Problem[state] for classic 9x9 Sudoku.
type problem struct{}

// Reject prunes any candidate whose board already violates a constraint.
// Rejecting on the full consistency predicate keeps the callback honest for
// arbitrary inputs: a root with conflicting givens is pruned immediately.
func (problem) Reject(s state) bool {
	return !s.board.Consistent()
}

// Accept recognizes a solution: all cells assigned, no conflicts.
func (problem) Accept(s state) bool {
	return s.board.Complete() && s.board.Consistent()
}

// First branches on the lowest-index empty cell, trying digit 1.
// A board with no empty cell is a leaf.
func (problem) First(s state) (state, bool) {
	var i int
	for i = 0; i < CellCount; i++ {
		if s.board[i] == Empty {
			break
		}
	}
	if i == CellCount {
		return state{}, false
	}

	// Struct assignment copies the board; the child owns its cells.
	next := s
	next.board[i] = 1
	next.cell = i

	return next, true
}

// Next advances the branched cell to the following digit, exhausting the
// chain after 9.
func (problem) Next(s state) (state, bool) {
	if s.board[s.cell] == Dimension {
		return state{}, false
	}

	next := s
	next.board[next.cell]++

	return next, true
}

// Solutions returns a lazy stream of every solution of b, in the fixed
// depth-first order. Consuming one element costs one engine walk up to that
// point; breaking out of the range abandons the rest of the search.
//
// Engine options (backtrack.WithContext, WithStats, WithMaxNodes) thread
// straight through. The only error is ErrCellRange for malformed input;
// an unsolvable board is a valid input whose stream is simply empty.
func Solutions(b Board, opts ...backtrack.Option) (iter.Seq[Board], error) {
	// 1. Preconditions: digits in range; consistency is the solver's job
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// 2. Adapt the state stream to plain boards
	states := backtrack.All(state{board: b}, problem{}, opts...)
	seq := func(yield func(Board) bool) {
		for s := range states {
			if !yield(s.board) {
				return
			}
		}
	}

	return seq, nil
}

// Solve returns the first solution of b in the fixed search order, which
// for a proper puzzle is its unique solution. It returns ErrNoSolution when
// the stream is empty and ErrCellRange for malformed input.
func Solve(b Board, opts ...backtrack.Option) (Board, error) {
	seq, err := Solutions(b, opts...)
	if err != nil {
		return Board{}, err
	}
	for s := range seq {
		return s, nil
	}

	return Board{}, ErrNoSolution
}

// SolveUnique is Solve with a properness check: it fails with ErrNotUnique
// when b admits a second solution, and ErrNoSolution when it admits none.
// It costs at most one extra engine step beyond finding the first solution.
func SolveUnique(b Board, opts ...backtrack.Option) (Board, error) {
	seq, err := Solutions(b, opts...)
	if err != nil {
		return Board{}, err
	}

	var (
		first Board
		n     int
	)
	for s := range seq {
		if n == 0 {
			first = s
		}
		n++
		if n == 2 {
			return Board{}, ErrNotUnique
		}
	}
	if n == 0 {
		return Board{}, ErrNoSolution
	}

	return first, nil
}

// CountSolutions counts the solutions of b, stopping once limit is reached;
// limit <= 0 counts them all. Counting to a small limit is the cheap way to
// answer "is there more than one" without materializing anything.
func CountSolutions(b Board, limit int, opts ...backtrack.Option) (int, error) {
	seq, err := Solutions(b, opts...)
	if err != nil {
		return 0, err
	}

	n := 0
	for range seq {
		n++
		if limit > 0 && n == limit {
			break
		}
	}

	return n, nil
}

// Unique reports whether b has exactly one solution.
func Unique(b Board, opts ...backtrack.Option) (bool, error) {
	n, err := CountSolutions(b, 2, opts...)
	if err != nil {
		return false, err
	}

	return n == 1, nil
}
