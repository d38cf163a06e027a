package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-game/internal/domain"
	"svw.info/sudoku-game/internal/ports"
)

// Random generates solved grids by randomized backtracking and carves
// puzzles from them. Stateless; the rand source is derived per call
// from the seed, so a fixed seed reproduces the same puzzle.
type Random struct{}

func NewRandom() *Random { return &Random{} }

// Generate fills a full solution, then blanks `removed` cells of a copy
// to form the initial playable board.
func (g *Random) Generate(ctx context.Context, seed int64, removed int) (domain.Grid, domain.Grid, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var solution domain.Grid
	nodes, ok := Fill(ctx, rng, &solution)
	if !ok {
		// Only cancellation can get here: an empty 9x9 board always fills.
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		return domain.Grid{}, domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	givens := Carve(rng, solution, removed)
	return solution, givens, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
