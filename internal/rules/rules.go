package rules

import "svw.info/sudoku-game/internal/domain"

// CanPlace reports whether v may be written at (r, c) without
// duplicating it in the row, the column, or the containing 3x3 box.
// Pure; at most 27 comparisons.
func CanPlace(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// full is the bitmask of digits 1..9 all present.
const full = 0x3FE

// IsSolved reports whether every cell is filled and every row, column
// and 3x3 box holds each of 1..9 exactly once.
func IsSolved(g *domain.Grid) bool {
	// rows & cols
	for i := 0; i < 9; i++ {
		rm, cm := 0, 0
		for j := 0; j < 9; j++ {
			rm |= 1 << g[i][j]
			cm |= 1 << g[j][i]
		}
		if rm != full || cm != full {
			return false
		}
	}
	// boxes
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					m |= 1 << g[br+dr][bc+dc]
				}
			}
			if m != full {
				return false
			}
		}
	}
	return true
}
