// Package batch solves collections of Sudoku puzzles concurrently and
// summarizes the outcome, Project Euler style.
//
// What:
//
//   - Read / ReadFile: parse puzzle collections in the Project Euler 96
//     "Grid NN" block format or the one-puzzle-per-line format, mixed
//     freely.
//   - Run: fan the boards out over a worker pool (one goroutine per CPU
//     by default), solve each with the fixed-order engine, and return
//     per-board Results in input order.
//   - TopLeft / SumTopLeft: the Euler 96 checksum over a finished batch.
//
// Why:
//   - Solves are embarrassingly parallel: boards are value types, the
//     solver shares no state, so the pool needs no synchronization beyond
//     the channels themselves. The value of the package is bookkeeping:
//     stable attribution (Result.Index), per-board error capture, engine
//     counters per puzzle, and honest cancellation.
//
// Concurrency:
//
//   - Run(ctx, ...) owns all goroutines it starts and returns only after
//     they exited. Progress callbacks fire serially from the collector,
//     in completion order, which is not input order.
//   - Cancelling ctx stops feeding the pool, interrupts in-flight engine
//     walks, and marks unfinished boards with the context error.
//
// Errors:
//
//   - ErrFormat: input that is neither puzzle format; wraps a line number.
//   - sudoku.ErrNoSolution / sudoku.ErrCellRange: per-board outcomes,
//     recorded in Result.Err, never returned by Run.
//   - Run returns ctx.Err() after a cancellation, nil otherwise.
//
// Functions:
//
//   - Read(r io.Reader) ([]sudoku.Board, error)
//   - ReadFile(path string) ([]sudoku.Board, error)
//   - Run(ctx, boards, opts ...Option) ([]Result, error)
//   - TopLeft(b sudoku.Board) int
//   - SumTopLeft(results []Result) (int, error)
//   - DefaultOptions(), WithWorkers(), WithProgress()
package batch
