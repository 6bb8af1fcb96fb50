// Package sudoku text formats: a forgiving reader and two writers
// (box-drawn for humans, 81 characters for files and flags).
package sudoku

import (
	"fmt"
	"strings"
)

// Parse reads a board from text. The digits 1..9 assign a cell, '0' and '.'
// leave a cell empty, and every other byte (spaces, newlines, box-drawing
// punctuation) is ignored. The text must describe exactly CellCount cells;
// anything else wraps ErrBoardSize.
//
// The convention makes Parse accept its own String and Text output as well
// as the common one-line and nine-line puzzle formats found in the wild.
func Parse(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			if n < CellCount {
				b[n] = int8(r - '0')
			}
			n++
		case r == '0' || r == '.':
			n++
		}
	}
	if n != CellCount {
		return Board{}, fmt.Errorf("sudoku: Parse: %d cells in input: %w", n, ErrBoardSize)
	}

	return b, nil
}

// MustParse is Parse for compile-time constants in tests and examples;
// it panics on malformed input.
func MustParse(s string) Board {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return b
}

// String renders the board as a box-drawn grid:
//
//	5 3 . | . 7 . | . . .
//	6 . . | 1 9 5 | . . .
//	. 9 8 | . . . | . 6 .
//	------+-------+------
//	...
//
// Empty cells print as '.'. The result ends with a newline; print it with
// fmt.Print. It round-trips through Parse.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((2*Dimension + 4) * (Dimension + GroupDimension))

	for y := 0; y < Dimension; y++ {
		if y > 0 && y%GroupDimension == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for x := 0; x < Dimension; x++ {
			if x > 0 {
				if x%GroupDimension == 0 {
					sb.WriteString(" |")
				}
				sb.WriteByte(' ')
			}
			sb.WriteByte(cellByte(b[Index(x, y)]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Text renders the board as a single 81-character line, row-major, with '.'
// for empty cells. It is the inverse of Parse for one-line puzzle files.
func (b Board) Text() string {
	var out [CellCount]byte
	for i := 0; i < CellCount; i++ {
		out[i] = cellByte(b[i])
	}

	return string(out[:])
}

// cellByte maps a cell value to its display byte.
func cellByte(v int8) byte {
	if v == Empty {
		return '.'
	}

	return byte('0' + v)
}
