package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White-box checks of the precomputed group tables and the duplicate scan;
// the exported predicates are exercised through the black-box suite.

func TestGroups_EveryCellInExactlyThreeGroups(t *testing.T) {
	var hits [CellCount]int
	for gi := range groups {
		for _, i := range groups[gi] {
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, CellCount)
			hits[i]++
		}
	}

	for i, n := range hits {
		assert.Equal(t, 3, n, "cell %d must sit in one row, one column, one box", i)
	}
}

func TestGroups_KnownRows(t *testing.T) {
	assert.Equal(t, [Dimension]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, groups[0])
	assert.Equal(t, [Dimension]int{72, 73, 74, 75, 76, 77, 78, 79, 80}, groups[8])
}

func TestGroups_KnownColumns(t *testing.T) {
	assert.Equal(t, [Dimension]int{0, 9, 18, 27, 36, 45, 54, 63, 72}, groups[Dimension])
	assert.Equal(t, [Dimension]int{8, 17, 26, 35, 44, 53, 62, 71, 80}, groups[2*Dimension-1])
}

func TestGroups_KnownBoxes(t *testing.T) {
	assert.Equal(t, [Dimension]int{0, 1, 2, 9, 10, 11, 18, 19, 20}, groups[2*Dimension])
	assert.Equal(t, [Dimension]int{60, 61, 62, 69, 70, 71, 78, 79, 80}, groups[groupCount-1])
}

func TestHasDuplicate(t *testing.T) {
	var b Board
	assert.False(t, hasDuplicate(&b, &groups[0]), "empty cells are never duplicates")

	b[0] = 5
	assert.False(t, hasDuplicate(&b, &groups[0]))

	b[7] = 5
	assert.True(t, hasDuplicate(&b, &groups[0]))

	// The column through cell 0 sees only one 5.
	assert.False(t, hasDuplicate(&b, &groups[Dimension]))
}

func TestProblem_FirstBranchesOnLowestEmptyCell(t *testing.T) {
	b := Board{}.SetAt(0, 0, 5).SetAt(1, 0, 3) // first empty cell is index 2

	next, ok := problem{}.First(state{board: b})
	require.True(t, ok)
	assert.Equal(t, 2, next.cell)
	assert.Equal(t, int8(1), next.board[2])

	// Everything else is untouched.
	next.board[2] = Empty
	assert.Equal(t, b, next.board)
}

func TestProblem_FirstOnCompleteBoardIsLeaf(t *testing.T) {
	solved, err := Solve(Board{})
	require.NoError(t, err)

	_, ok := problem{}.First(state{board: solved})
	assert.False(t, ok)
}

func TestProblem_NextWalksDigitsAscending(t *testing.T) {
	s, ok := problem{}.First(state{board: Board{}})
	require.True(t, ok)

	seen := []int8{s.board[0]}
	for {
		s, ok = problem{}.Next(s)
		if !ok {
			break
		}
		seen = append(seen, s.board[0])
	}

	assert.Equal(t, []int8{1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)
}

func TestProblem_RejectAndAccept(t *testing.T) {
	p := problem{}

	assert.False(t, p.Reject(state{board: Board{}}))
	assert.False(t, p.Accept(state{board: Board{}}))

	dup := Board{}.SetAt(0, 0, 5).SetAt(8, 0, 5)
	assert.True(t, p.Reject(state{board: dup}))

	solved, err := Solve(Board{})
	require.NoError(t, err)
	assert.False(t, p.Reject(state{board: solved}))
	assert.True(t, p.Accept(state{board: solved}))
}
