// Package sudoku board geometry: the 2D/1D index mapping and the 27
// coordinate groups (rows, columns, boxes) every constraint check runs over.
package sudoku

import "fmt"

// groupCount is the number of coordinate groups: Dimension rows,
// Dimension columns and Dimension boxes.
const groupCount = 3 * Dimension

// groups holds the cell indices of every row, column and box, in that
// order: groups[0..8] rows top to bottom, groups[9..17] columns left to
// right, groups[18..26] boxes in reading order. Built once, never written
// afterwards.
var groups = buildGroups()

// Index converts board coordinates to the row-major cell index.
// Both coordinates must be in [0, Dimension); Index panics otherwise,
// since out-of-range coordinates are a programming error.
func Index(x, y int) int {
	if x < 0 || x >= Dimension || y < 0 || y >= Dimension {
		panic(fmt.Sprintf("sudoku: coordinate (%d,%d) out of range", x, y))
	}

	return y*Dimension + x
}

// Coordinate converts a row-major cell index back to (x, y).
// The index must be in [0, CellCount); Coordinate panics otherwise.
func Coordinate(i int) (x, y int) {
	if i < 0 || i >= CellCount {
		panic(fmt.Sprintf("sudoku: cell index %d out of range", i))
	}

	return i % Dimension, i / Dimension
}

// buildGroups precomputes the 27 groups from the geometry constants.
// Row and column groups are straight scans; box k covers the 3x3 block
// whose top-left corner is at (k%3*3, k/3*3).
func buildGroups() [groupCount][Dimension]int {
	var gs [groupCount][Dimension]int

	// 1. Rows and columns share the same double loop, transposed
	for a := 0; a < Dimension; a++ {
		for b := 0; b < Dimension; b++ {
			gs[a][b] = Index(b, a)
			gs[Dimension+a][b] = Index(a, b)
		}
	}

	// 2. Boxes in reading order
	var x0, y0, dx, dy int
	for k := 0; k < Dimension; k++ {
		x0 = (k % GroupDimension) * GroupDimension
		y0 = (k / GroupDimension) * GroupDimension
		for j := 0; j < Dimension; j++ {
			dx = j % GroupDimension
			dy = j / GroupDimension
			gs[2*Dimension+k][j] = Index(x0+dx, y0+dy)
		}
	}

	return gs
}
