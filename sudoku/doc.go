// Package sudoku implements classic 9x9 Sudoku on top of the generic
// backtrack engine: parsing, validation, solving, solution counting,
// uniqueness checks, and puzzle generation.
//
// What:
//
//   - Board: a value array of 81 cells in row-major order, 0 = empty.
//     Assignment copies the whole board, which is the package's entire
//     concurrency and backtracking story: every search step works on a
//     private copy, so there is no undo stack and nothing to lock.
//   - Solve / SolveUnique: first solution in the fixed search order;
//     the Unique variant additionally fails on improper puzzles.
//   - Solutions / CountSolutions / Unique: lazy enumeration of all
//     solutions, bounded counting, and the exactly-one predicate.
//   - Parse / MustParse, String, Text: forgiving text input plus
//     box-drawn and one-line output, all mutually round-tripping.
//   - Generate + Difficulty: deterministic puzzle generation by carving
//     a random full grid while its solution stays unique.
//
// Why:
//   - The point of the package is the adapter, not the algorithm: four
//     small callbacks (Reject, Accept, First, Next) turn the generic
//     engine into a Sudoku solver. The engine walks, the domain judges.
//   - Fixed orderings everywhere. The branching cell is always the
//     lowest-index empty cell and digits are tried ascending, so the
//     first solution, the solution order and the node counts are stable
//     across runs and platforms. Reproducibility beats cleverness here;
//     if you want MRV, dancing links or propagation, this is deliberately
//     not that library.
//
// Geometry:
//
//   - Index(x, y) = y*Dimension + x; Coordinate is its inverse.
//   - 27 coordinate groups (9 rows, 9 columns, 9 boxes) are precomputed
//     at package load; every consistency question is "does any group
//     contain a duplicate digit", answered by one pass per group with a
//     stack-local tracker and zero heap traffic.
//
// Complexity:
//
//   - Consistent: O(Dimension^2) per call.
//   - Solve: exponential worst case (it is honest backtracking), with
//     per-node cost bounded by one board copy plus one consistency scan.
//
// Errors:
//
//   - ErrCellRange: input board holds a value outside [0, 9].
//   - ErrBoardSize: parsed text does not describe exactly 81 cells.
//   - ErrNoSolution: well-formed input with an empty solution stream.
//   - ErrNotUnique:  SolveUnique found a second solution.
//
// Out-of-range coordinates or digits in At/SetAt panic: those are
// programming errors at the call site, not data conditions.
//
// Functions:
//
//   - Solve(b, opts...) (Board, error)
//   - SolveUnique(b, opts...) (Board, error)
//   - Solutions(b, opts...) (iter.Seq[Board], error)
//   - CountSolutions(b, limit, opts...) (int, error)
//   - Unique(b, opts...) (bool, error)
//   - Parse(s) (Board, error), MustParse(s) Board
//   - Generate(rng, difficulty) (Board, error)
//   - Index(x, y) int, Coordinate(i) (int, int)
//
// Engine options (backtrack.WithContext, WithStats, WithMaxNodes) pass
// through every solving operation unchanged.
//
// See example_test.go for runnable examples, including the classic
// Wikipedia puzzle solved end to end.
package sudoku
