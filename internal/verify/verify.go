package verify

import "svw.info/sudoku-game/internal/domain"

// Checker implements ports.Verifier over the package functions.
type Checker struct{}

func New() *Checker { return &Checker{} }

func (c *Checker) Matches(current, solution *domain.Grid) bool {
	return Matches(current, solution)
}

func (c *Checker) Conflicts(g *domain.Grid) []domain.CellCoord {
	return Conflicts(g)
}

// Matches reports whether every one of the 81 cells of current equals
// the corresponding solution cell. An empty cell never matches a
// filled one. Grid is a comparable array type, so this is exactly
// cell-by-cell equality.
func Matches(current, solution *domain.Grid) bool {
	return *current == *solution
}

// Conflicts scans rows, columns and 3x3 boxes for duplicated digits
// and returns the cell of each later duplicate. Empty cells never
// conflict. Intended for on-demand UI feedback; an empty result does
// not mean the board is solved.
func Conflicts(g *domain.Grid) []domain.CellCoord {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return conf
}
