// Package batch worker-pool execution: independent solves fanned out over
// a bounded number of goroutines, results reassembled in input order.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/katalvlaran/sudoq/backtrack"
	"github.com/katalvlaran/sudoq/sudoku"
)

// Run solves every board concurrently and returns one Result per board, in
// input order. Boards share nothing, so workers need no locks; each solve
// is an isolated engine walk with its own counters.
//
// Cancelling ctx stops feeding the pool and interrupts in-flight solves;
// boards that never finished carry the context error in their Result. The
// returned error is ctx.Err() after a cancellation and nil otherwise:
// per-board failures (unsolvable or malformed boards) are data, not run
// failures, and live only in the results.
func Run(ctx context.Context, boards []sudoku.Board, opts ...Option) ([]Result, error) {
	// 1. Apply options
	ropts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&ropts)
	}
	workers := ropts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(boards) {
		workers = len(boards)
	}

	results := make([]Result, len(boards))
	if len(boards) == 0 {
		return results, ctx.Err()
	}

	// 2. Start the pool
	jobs := make(chan int)
	out := make(chan Result)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out <- solveOne(ctx, i, boards[i])
			}
		}()
	}

	// 3. Feed indices until done or cancelled
	go func() {
		defer close(jobs)
		for i := range boards {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	// 4. Close the result stream once every worker drained out
	go func() {
		wg.Wait()
		close(out)
	}()

	// 5. Collect; the single collector makes Progress callbacks serial
	filled := make([]bool, len(boards))
	for res := range out {
		results[res.Index] = res
		filled[res.Index] = true
		if ropts.Progress != nil {
			ropts.Progress(res)
		}
	}

	// 6. Boards the cancellation cut off still get attributable results
	if err := ctx.Err(); err != nil {
		for i := range results {
			if !filled[i] {
				results[i] = Result{Index: i, Puzzle: boards[i], Err: err}
			}
		}

		return results, err
	}

	return results, nil
}

// solveOne runs a single board through the solver with the run context and
// per-board counters attached.
func solveOne(ctx context.Context, i int, b sudoku.Board) Result {
	res := Result{Index: i, Puzzle: b}

	sol, err := sudoku.Solve(b,
		backtrack.WithContext(ctx),
		backtrack.WithStats(&res.Stats))
	if err != nil {
		// A cancelled walk surfaces as an empty stream; report the cause
		// rather than a misleading no-solution.
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		res.Err = err

		return res
	}
	res.Solution = sol

	return res
}
