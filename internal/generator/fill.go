package generator

import (
	"context"
	"math/rand"

	"svw.info/sudoku-game/internal/domain"
	"svw.info/sudoku-game/internal/rules"
)

// Fill completes grid in place into a full valid solution by recursive
// backtracking over cells in row-major order, trying candidates in a
// fresh random order at every cell. Every failed branch restores its
// cell to empty before returning. Reports the number of placements
// tried; ok is false only when ctx is canceled (recursion depth is at
// most 81, and an empty board always succeeds).
func Fill(ctx context.Context, rng *rand.Rand, grid *domain.Grid) (nodes int, ok bool) {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		if grid[r][c] != 0 {
			return dfs(nr, nc)
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			nodes++
			if rules.CanPlace(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return nodes, dfs(0, 0)
}
