// Package sudoku board accessors and precondition checks.
package sudoku

import "fmt"

// At returns the digit at coordinates (x, y), or Empty for an unassigned
// cell. It panics when the coordinates are out of range.
func (b Board) At(x, y int) int {
	return int(b[Index(x, y)])
}

// SetAt returns a copy of the board with the digit v placed at (x, y).
// v must be in [0, 9] (Empty clears the cell); coordinates and value out
// of range panic. The receiver is never modified.
func (b Board) SetAt(x, y, v int) Board {
	if v < 0 || v > Dimension {
		panic(fmt.Sprintf("sudoku: digit %d out of range", v))
	}
	b[Index(x, y)] = int8(v)

	return b
}

// Clues counts the assigned cells.
func (b Board) Clues() int {
	n := 0
	for i := 0; i < CellCount; i++ {
		if b[i] != Empty {
			n++
		}
	}

	return n
}

// Validate checks the digit-range precondition shared by every solving
// operation: each cell holds a value in [0, 9]. A violation reports the
// first offending cell and wraps ErrCellRange.
//
// Validate does not check consistency; a board with conflicting digits is
// valid input whose solve simply ends in ErrNoSolution.
func (b Board) Validate() error {
	var x, y int
	for i := 0; i < CellCount; i++ {
		if b[i] < 0 || b[i] > Dimension {
			x, y = Coordinate(i)

			return fmt.Errorf("sudoku: cell (%d,%d) holds %d: %w", x, y, b[i], ErrCellRange)
		}
	}

	return nil
}
