package backtrack_test

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sudoq/backtrack"
)

// binStrings builds a Problem enumerating binary strings over {"0","1"} up
// to maxLen characters. The root is ""; children of c are c+"0" and c+"1".
// Every non-empty string is accepted, so interior candidates yield too.
func binStrings(maxLen int) backtrack.Funcs[string] {
	return backtrack.Funcs[string]{
		RejectFunc: func(string) bool { return false },
		AcceptFunc: func(c string) bool { return len(c) > 0 },
		FirstFunc: func(c string) (string, bool) {
			if len(c) == maxLen {
				return "", false
			}

			return c + "0", true
		},
		NextFunc: func(s string) (string, bool) {
			if s == "" || s[len(s)-1] == '1' {
				return "", false
			}

			return s[:len(s)-1] + "1", true
		},
	}
}

// queens builds a Problem for the N-queens puzzle. A candidate is the list
// of column indices of queens placed on rows 0..len-1. Slices are extended
// with a forced copy so siblings never share a backing array.
func queens(n int) backtrack.Funcs[[]int] {
	attacked := func(c []int) bool {
		last := len(c) - 1
		for row := 0; row < last; row++ {
			dc := c[last] - c[row]
			if dc == 0 || dc == last-row || dc == row-last {
				return true
			}
		}

		return false
	}

	return backtrack.Funcs[[]int]{
		RejectFunc: func(c []int) bool {
			return len(c) > 0 && attacked(c)
		},
		AcceptFunc: func(c []int) bool { return len(c) == n },
		FirstFunc: func(c []int) ([]int, bool) {
			if len(c) == n {
				return nil, false
			}

			return append(c[:len(c):len(c)], 0), true
		},
		NextFunc: func(s []int) ([]int, bool) {
			last := len(s) - 1
			if s[last] == n-1 {
				return nil, false
			}
			next := append([]int(nil), s...)
			next[last]++

			return next, true
		},
	}
}

// collect drains a sequence into a slice.
func collect[C any](seq iter.Seq[C]) []C {
	var out []C
	for c := range seq {
		out = append(out, c)
	}

	return out
}

func TestAll_DepthFirstOrder(t *testing.T) {
	got := collect(backtrack.All("", binStrings(2)))
	want := []string{"0", "00", "01", "1", "10", "11"}
	assert.Equal(t, want, got, "expected depth-first, left-to-right discovery order")
}

func TestAll_AcceptedCandidatesKeepExtending(t *testing.T) {
	// "0" is accepted and still has descendants "00" and "01"; the walk
	// must yield all three rather than turning back at the first hit.
	got := collect(backtrack.All("", binStrings(2)))
	assert.Contains(t, got, "0")
	assert.Contains(t, got, "00")
	assert.Contains(t, got, "01")
}

func TestAll_RejectPrunesSubtree(t *testing.T) {
	p := binStrings(2)
	p.RejectFunc = func(c string) bool {
		return len(c) > 0 && c[0] == '1'
	}

	var st backtrack.Stats
	got := collect(backtrack.All("", p, backtrack.WithStats(&st)))

	assert.Equal(t, []string{"0", "00", "01"}, got)
	assert.Equal(t, uint64(1), st.Rejected, "only the subtree root %q is rejected", "1")
	// Entered: "", "0", "00", "01", "1". The strings "10" and "11" are
	// never constructed.
	assert.Equal(t, uint64(5), st.Visited)
	assert.Equal(t, uint64(3), st.Accepted)
}

func TestAll_ConsumerBreakStopsWalk(t *testing.T) {
	var st backtrack.Stats
	var got []string
	for c := range backtrack.All("", binStrings(2), backtrack.WithStats(&st)) {
		got = append(got, c)

		break
	}

	assert.Equal(t, []string{"0"}, got)
	assert.Equal(t, uint64(2), st.Visited, "breaking must abandon the rest of the tree")
}

func TestAll_MaxNodesBudget(t *testing.T) {
	var st backtrack.Stats
	got := collect(backtrack.All("", binStrings(3),
		backtrack.WithStats(&st), backtrack.WithMaxNodes(4)))

	// Budget of 4 admits "", "0", "00", "000" and nothing more.
	assert.Equal(t, []string{"0", "00", "000"}, got)
	assert.Equal(t, uint64(4), st.Visited)
}

func TestAll_ContextCancelledBeforeWalk(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := collect(backtrack.All("", binStrings(2), backtrack.WithContext(ctx)))
	assert.Empty(t, got, "a cancelled context must yield nothing")
}

func TestAll_ContextCancelledMidWalk(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := binStrings(2)
	accepts := 0
	p.AcceptFunc = func(c string) bool {
		accepts++
		if accepts == 2 {
			cancel()
		}

		return len(c) > 0
	}

	got := collect(backtrack.All("", p, backtrack.WithContext(ctx)))

	// Cancellation lands inside Accept("0" then "00"); the walk notices at
	// the next candidate entry, so at most two strings come out.
	assert.LessOrEqual(t, len(got), 2)
	assert.NotEmpty(t, got)
}

func TestFirst_ReturnsFirstAccepted(t *testing.T) {
	c, ok := backtrack.First("", binStrings(2))
	assert.True(t, ok)
	assert.Equal(t, "0", c)
}

func TestFirst_EmptySearchSpace(t *testing.T) {
	p := backtrack.Funcs[string]{
		RejectFunc: func(string) bool { return false },
		AcceptFunc: func(string) bool { return false },
		FirstFunc:  func(string) (string, bool) { return "", false },
		NextFunc:   func(string) (string, bool) { return "", false },
	}

	_, ok := backtrack.First("", p)
	assert.False(t, ok)
}

func TestAll_NilProblemPanics(t *testing.T) {
	assert.PanicsWithValue(t, "backtrack: nil Problem", func() {
		backtrack.All[int](0, nil)
	})
}

func TestFuncs_NilCallbackPanics(t *testing.T) {
	p := backtrack.Funcs[int]{}
	assert.PanicsWithValue(t, "backtrack: Funcs.RejectFunc is nil", func() {
		for range backtrack.All(0, p) {
			t.Fatal("must panic before yielding")
		}
	})
}

func TestAll_NQueensFirstSolution(t *testing.T) {
	sol, ok := backtrack.First([]int(nil), queens(4))
	assert.True(t, ok)
	assert.Equal(t, []int{1, 3, 0, 2}, sol,
		"ascending column order fixes which of the two 4-queens solutions comes first")
}

func TestAll_NQueensSolutionCounts(t *testing.T) {
	assert.Len(t, collect(backtrack.All([]int(nil), queens(4))), 2)
	assert.Len(t, collect(backtrack.All([]int(nil), queens(6))), 4)
}

func TestAll_NQueensSolutionsAreValid(t *testing.T) {
	for sol := range backtrack.All([]int(nil), queens(6)) {
		assert.Len(t, sol, 6)
		for i := 0; i < len(sol); i++ {
			for j := i + 1; j < len(sol); j++ {
				assert.NotEqual(t, sol[i], sol[j], "columns must differ")
				assert.NotEqual(t, j-i, sol[j]-sol[i], "diagonals must differ")
				assert.NotEqual(t, i-j, sol[j]-sol[i], "antidiagonals must differ")
			}
		}
	}
}

func TestWithStats_AggregatesAcrossRuns(t *testing.T) {
	var st backtrack.Stats
	collect(backtrack.All("", binStrings(1), backtrack.WithStats(&st)))
	first := st.Visited
	collect(backtrack.All("", binStrings(1), backtrack.WithStats(&st)))

	assert.Equal(t, 2*first, st.Visited, "counters add up, they are not reset per run")
}
