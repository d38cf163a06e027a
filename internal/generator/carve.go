package generator

import (
	"math/rand"

	"svw.info/sudoku-game/internal/domain"
)

// ClampRemoved bounds a removal count to the 81 cells of the board.
func ClampRemoved(removed int) int {
	if removed < 0 {
		return 0
	}
	if removed > 81 {
		return 81
	}
	return removed
}

// Carve blanks `removed` distinct cells of a copy of solution, chosen
// uniformly by shuffling the 81 position indices. Walking a shuffled
// index list blanks exactly `removed` distinct cells in 81 steps, so
// there is no retry loop to bound.
func Carve(rng *rand.Rand, solution domain.Grid, removed int) domain.Grid {
	removed = ClampRemoved(removed)
	positions := make([]int, 81)
	for i := 0; i < 81; i++ {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	puz := solution
	for _, pos := range positions[:removed] {
		puz[pos/9][pos%9] = 0
	}
	return puz
}
