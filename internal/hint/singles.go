package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-game/internal/domain"
	"svw.info/sudoku-game/internal/rules"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first empty cell where exactly one digit fits.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			v, ok := soleCandidate(g, r, c)
			if ok {
				return domain.Hint{
					Cell:    domain.CellCoord{Row: r, Col: c},
					Value:   v,
					Message: fmt.Sprintf("Single: only %d fits here", v),
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(g *domain.Grid, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if rules.CanPlace(g, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
