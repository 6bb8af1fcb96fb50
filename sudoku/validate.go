// Package sudoku constraint predicates: the single-pass duplicate scan and
// the Complete/Consistent pair the solver's callbacks are built from.
package sudoku

// hasDuplicate reports whether the group g contains a non-empty digit
// twice on board b. One pass, one stack-local tracker indexed by digit;
// empty cells are never counted. No heap allocation.
func hasDuplicate(b *Board, g *[Dimension]int) bool {
	var seen [Dimension + 1]bool
	var v int8
	for _, i := range g {
		v = b[i]
		if v == Empty {
			continue
		}
		if seen[v] {
			return true
		}
		seen[v] = true
	}

	return false
}

// Complete reports whether every cell is assigned. It says nothing about
// validity; pair it with Consistent for "solved".
func (b Board) Complete() bool {
	for i := 0; i < CellCount; i++ {
		if b[i] == Empty {
			return false
		}
	}

	return true
}

// Consistent reports whether no row, column or box contains a duplicate
// digit. Empty cells never conflict, so every partial board that can still
// be extended is consistent, and a consistent complete board is a solution.
// Cost is one duplicate scan per group: O(Dimension^2) with small constants.
func (b Board) Consistent() bool {
	for gi := range groups {
		if hasDuplicate(&b, &groups[gi]) {
			return false
		}
	}

	return true
}
