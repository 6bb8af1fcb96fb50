// Package sudoku defines the board type, geometry constants, and sentinel
// errors for the sudoku subpackage of github.com/katalvlaran/sudoq.
package sudoku

import (
	"errors"
)

// Board geometry. The three constants are tied together: a board is
// Dimension x Dimension cells, partitioned into GroupDimension x
// GroupDimension boxes, GroupDimension*GroupDimension cells each.
const (
	// Dimension is the side length of the board and the number of digits.
	Dimension = 9
	// GroupDimension is the side length of one box (and the number of
	// boxes per band).
	GroupDimension = 3
	// CellCount is the total number of cells, Dimension squared.
	CellCount = Dimension * Dimension
	// Empty is the cell value meaning "not assigned yet".
	Empty = 0
)

// Sentinel errors for sudoku operations.
var (
	// ErrBoardSize indicates parsed input that does not describe exactly
	// CellCount cells.
	ErrBoardSize = errors.New("sudoku: board must contain exactly 81 cells")
	// ErrCellRange indicates a cell value outside [0, 9].
	ErrCellRange = errors.New("sudoku: cell value out of range [0,9]")
	// ErrNoSolution indicates a well-formed board that no assignment of
	// the empty cells can complete. This is a normal outcome, not a bug:
	// check for it with errors.Is.
	ErrNoSolution = errors.New("sudoku: no solution")
	// ErrNotUnique indicates a board with more than one solution where
	// exactly one was required.
	ErrNotUnique = errors.New("sudoku: multiple solutions")
)

// Board is a complete or partial 9x9 Sudoku position in row-major order:
// cell (x, y) lives at index y*Dimension + x. Values 1..9 are digits and
// Empty (0) marks an unassigned cell.
//
// Board is a value type on purpose. Assignment copies all 81 cells, which
// is exactly the copy-on-write discipline the solver relies on: every
// search step owns a private board and no branch can observe another
// branch's writes. Keep boards on the stack and pass them by value; at one
// byte per cell a copy is cheaper than the bookkeeping it replaces.
type Board [CellCount]int8
