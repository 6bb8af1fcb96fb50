// Package sudoq is a small, deterministic toolkit for backtracking search,
// specialized out of the box for classic 9x9 Sudoku.
//
// 🚀 What is sudoq?
//
//	A library in two layers, plus batch tooling and a CLI:
//		• backtrack/ : a generic, lazy, depth-first backtracking engine.
//		  Describe a problem with four callbacks (Reject, Accept, First,
//		  Next) and the engine enumerates every accepted candidate as an
//		  iter.Seq, in a fixed left-to-right order.
//		• sudoku/    : the Sudoku domain on top of the engine. Parsing,
//		  validation, solving, uniqueness checks and puzzle generation
//		  for standard 9x9 boards.
//		• batch/     : bulk solving over a worker pool. Reads Project
//		  Euler style puzzle files and one-line-per-puzzle files.
//		• cmd/sudoq  : a command line front end (solve, sum, generate).
//
// ✨ Why choose sudoq?
//
//   - Deterministic by construction: fixed variable order, fixed value
//     order, no heuristics. The same input always walks the same tree.
//   - Lazy enumeration: solutions stream one at a time; stop consuming
//     and the search stops too.
//   - Honest pruning only: a branch is abandoned exactly when it already
//     violates a row, column or box. No propagation, no lookahead.
//   - Pure value-type boards: every search step works on its own copy,
//     so no undo bookkeeping and no shared mutable state.
//
// Quick taste:
//
//	b, _ := sudoku.Parse(
//		"53..7...." + "6..195..." + ".98....6." +
//			"8...6...3" + "4..8.3..1" + "7...2...6" +
//			".6....28." + "...419..5" + "....8..79")
//	s, err := sudoku.Solve(b)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(s)
//
// Dive into README.md for the full tour, and into each package's doc.go
// for contracts, complexity and error semantics.
//
//	go get github.com/katalvlaran/sudoq
package sudoq
