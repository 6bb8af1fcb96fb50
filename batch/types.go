// Package batch defines types, options, and sentinel errors for bulk
// Sudoku solving over collections of puzzles.
package batch

import (
	"errors"

	"github.com/katalvlaran/sudoq/backtrack"
	"github.com/katalvlaran/sudoq/sudoku"
)

// ErrFormat indicates puzzle input that is neither a "Grid NN" block file
// nor a one-puzzle-per-line file. The wrapping error names the line.
var ErrFormat = errors.New("batch: malformed puzzle input")

// Result is the outcome of solving one board of a batch. Index is the
// board's position in the input slice, so results stay attributable no
// matter which worker produced them or in which order they finished.
type Result struct {
	// Index is the position of the puzzle in the input.
	Index int

	// Puzzle is the input board as read.
	Puzzle sudoku.Board

	// Solution is the first solution in the fixed search order.
	// It is meaningful only when Err is nil.
	Solution sudoku.Board

	// Err is nil on success, sudoku.ErrNoSolution for unsolvable boards,
	// sudoku.ErrCellRange for malformed ones, or the context error when
	// the run was cancelled before this board finished.
	Err error

	// Stats holds the engine counters for this board's walk.
	Stats backtrack.Stats
}

// Option configures a batch run. Use with Run(ctx, boards, opts...).
type Option func(*Options)

// Options holds configurable parameters for a batch run.
type Options struct {
	// Workers is the number of concurrent solvers.
	// Values < 1 mean runtime.NumCPU().
	Workers int

	// Progress, if non-nil, is invoked once per finished board, serially,
	// from the collecting goroutine. Completion order is not input order.
	Progress func(Result)
}

// DefaultOptions returns an Options struct with one worker per CPU and no
// progress callback.
func DefaultOptions() Options {
	return Options{
		Workers:  0,
		Progress: nil,
	}
}

// WithWorkers returns an Option that sets the worker count. Values < 1
// fall back to runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithProgress returns an Option that installs fn as the per-board
// completion hook.
func WithProgress(fn func(Result)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}
