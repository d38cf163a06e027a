package ports

import (
	"context"
	"time"

	"svw.info/sudoku-game/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator produces a solved grid plus the carved puzzle over it.
// removed is the number of cells blanked; implementations clamp it to
// [0, 81]. Deterministic for a fixed seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, removed int) (solution, givens domain.Grid, st Stats, err error)
}

// Verifier checks player progress against the solution and scans for
// row/col/box rule conflicts.
type Verifier interface {
	Matches(current, solution *domain.Grid) bool
	Conflicts(g *domain.Grid) []domain.CellCoord
}

// Hinter returns the next logical placement, if one is found.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzle definitions as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
