// Package sudoku puzzle generation: a random full grid carved down to a
// puzzle with exactly one solution, deterministic for a given rng.
package sudoku

import (
	"fmt"
	"math/rand"
	"time"
)

// Difficulty selects how many clues a generated puzzle keeps.
// Fewer clues means a deeper search for the human (and for the machine).
type Difficulty int

const (
	// Easy keeps 40 clues.
	Easy Difficulty = iota
	// Medium keeps 32 clues.
	Medium
	// Hard keeps 26 clues.
	Hard
	// Expert keeps 22 clues.
	Expert
)

// seedAttempts bounds how many times Generate reseeds the diagonal boxes.
// A fresh seeding practically always completes on the first try; the bound
// only keeps the loop finite.
const seedAttempts = 16

// Clues returns the clue target for the difficulty.
func (d Difficulty) Clues() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 32
	case Hard:
		return 26
	case Expert:
		return 22
	default:
		panic(fmt.Sprintf("sudoku: unknown difficulty %d", int(d)))
	}
}

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a name accepted on the command line back to its
// Difficulty value.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return 0, fmt.Errorf("sudoku: unknown difficulty %q", s)
	}
}

// Generate produces a puzzle with exactly one solution and roughly
// d.Clues() clues. Generation is deterministic for a given rng; passing a
// nil rng picks a time-based seed.
//
// The procedure is the classic one: fill the three diagonal boxes with
// random permutations (they share no row, column or box, so any filling is
// consistent), complete the grid with the fixed-order solver, then remove
// cells in random order, keeping a removal only when the puzzle still has
// exactly one solution. Carving stops at the clue target; when no removable
// cell remains the puzzle keeps a few extra clues, so Clues() is a floor on
// difficulty, not a promise.
func Generate(rng *rand.Rand, d Difficulty) (Board, error) {
	// 1. Resolve inputs
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	target := d.Clues() // panics on an unknown difficulty

	// 2. Build a full grid: seed the independent diagonal boxes, then let
	//    the solver finish. A reseed on ErrNoSolution keeps the loop total.
	var full Board
	var err error
	for attempt := 0; ; attempt++ {
		full, err = Solve(seedDiagonal(rng))
		if err == nil {
			break
		}
		if attempt+1 == seedAttempts {
			return Board{}, fmt.Errorf("sudoku: Generate: seeding failed after %d attempts: %w", seedAttempts, err)
		}
	}

	// 3. Carve clues in shuffled order while the solution stays unique
	puzzle := full
	clues := CellCount
	var saved int8
	var ok bool
	for _, i := range rng.Perm(CellCount) {
		if clues == target {
			break
		}
		saved = puzzle[i]
		puzzle[i] = Empty
		if ok, err = Unique(puzzle); err != nil {
			return Board{}, err
		}
		if !ok {
			puzzle[i] = saved

			continue
		}
		clues--
	}

	return puzzle, nil
}

// seedDiagonal fills the three boxes on the main diagonal with independent
// random permutations of 1..9 and leaves everything else empty.
func seedDiagonal(rng *rand.Rand) Board {
	var b Board
	var x0, y0 int
	for k := 0; k < GroupDimension; k++ {
		x0 = k * GroupDimension
		y0 = k * GroupDimension
		for j, v := range rng.Perm(Dimension) {
			b[Index(x0+j%GroupDimension, y0+j/GroupDimension)] = int8(v + 1)
		}
	}

	return b
}
