// Package batch puzzle-collection readers for the two formats found in the
// wild: Project Euler 96 "Grid NN" blocks and one puzzle per line.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/sudoq/sudoku"
)

// Read parses a puzzle collection. Two shapes are accepted and may be
// mixed freely between puzzles:
//
//   - nine consecutive rows of 9 cells each, optionally preceded by a
//     "Grid NN" header line (the Project Euler 96 file format);
//   - one line of 81 cells (the common single-line format).
//
// Cells are the digits 0..9 and '.', zero and dot meaning empty; blank
// lines between puzzles are skipped. Anything else wraps ErrFormat with
// the offending line number. An empty input yields an empty slice.
func Read(r io.Reader) ([]sudoku.Board, error) {
	var (
		boards  []sudoku.Board
		pending strings.Builder // rows of the block being assembled
		rows    int             // how many rows pending holds
		ln      int             // current line number, 1-based
	)

	appendBlock := func() error {
		b, err := sudoku.Parse(pending.String())
		if err != nil {
			return fmt.Errorf("batch: puzzle ending at line %d: %w", ln, err)
		}
		boards = append(boards, b)
		pending.Reset()
		rows = 0

		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ln++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, "Grid"):
			// Headers separate blocks; one mid-block is a broken file.
			if rows != 0 {
				return nil, fmt.Errorf("batch: line %d: header inside a puzzle block: %w", ln, ErrFormat)
			}

			continue
		}

		n := countCells(line)
		switch {
		case n == sudoku.CellCount && rows == 0:
			b, err := sudoku.Parse(line)
			if err != nil {
				return nil, fmt.Errorf("batch: line %d: %w", ln, err)
			}
			boards = append(boards, b)

		case n == sudoku.Dimension:
			pending.WriteString(line)
			rows++
			if rows == sudoku.Dimension {
				if err := appendBlock(); err != nil {
					return nil, err
				}
			}

		default:
			return nil, fmt.Errorf("batch: line %d: %d cells on one line: %w", ln, n, ErrFormat)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch: read: %w", err)
	}
	if rows != 0 {
		return nil, fmt.Errorf("batch: input ends inside a puzzle block (%d of %d rows): %w",
			rows, sudoku.Dimension, ErrFormat)
	}

	return boards, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) ([]sudoku.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// countCells counts the cell characters on a line: digits and '.'.
func countCells(line string) int {
	n := 0
	for _, r := range line {
		if (r >= '0' && r <= '9') || r == '.' {
			n++
		}
	}

	return n
}
