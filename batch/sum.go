// Package batch summary helpers in the style of Project Euler problem 96.
package batch

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/sudoq/sudoku"
)

// TopLeft returns the three-digit number spelled by a board's first row,
// the quantity Project Euler 96 sums over solved grids. Empty cells count
// as zero digits, so call it on solutions, not puzzles.
func TopLeft(b sudoku.Board) int {
	return int(b[0])*100 + int(b[1])*10 + int(b[2])
}

// SumTopLeft folds a batch into the Euler 96 checksum: the sum of TopLeft
// over every solution. Any failed result aborts the sum with an error
// naming the first offending board, so a partial batch cannot masquerade
// as a finished one.
func SumTopLeft(results []Result) (int, error) {
	failed := lo.Filter(results, func(r Result, _ int) bool {
		return r.Err != nil
	})
	if len(failed) > 0 {
		return 0, fmt.Errorf("batch: board %d failed: %w", failed[0].Index, failed[0].Err)
	}

	return lo.SumBy(results, func(r Result) int {
		return TopLeft(r.Solution)
	}), nil
}
