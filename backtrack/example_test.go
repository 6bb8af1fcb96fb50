package backtrack_test

import (
	"fmt"

	"github.com/katalvlaran/sudoq/backtrack"
)

// ExampleAll enumerates all binary strings of length one or two.
// The search tree below is walked depth-first, left to right:
//
//	        ""
//	      /    \
//	    "0"    "1"
//	   /  \    /  \
//	 "00" "01" "10" "11"
//
// Both interior strings and leaves are accepted, so accepted candidates
// keep extending after they are reported.
func ExampleAll() {
	const maxLen = 2

	p := backtrack.Funcs[string]{
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

	for c := range backtrack.All("", p) {
		fmt.Println(c)
	}
	// Output:
	// 0
	// 00
	// 01
	// 1
	// 10
	// 11
}

// ExampleFirst places four queens on a 4x4 board. A candidate is the list
// of queen columns, one per row; the first solution under ascending column
// order is printed.
func ExampleFirst() {
	const n = 4

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

	p := backtrack.Funcs[[]int]{
		RejectFunc: func(c []int) bool { return len(c) > 0 && attacked(c) },
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

	sol, ok := backtrack.First([]int(nil), p)
	fmt.Println(ok, sol)
	// Output:
	// true [1 3 0 2]
}
