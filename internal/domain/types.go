package domain

// Grid is a 9x9 board; 0 marks an empty cell, filled cells hold 1..9.
// It is an array type: assignment copies the whole board, which is what
// makes history snapshots plain value copies.
type Grid [9][9]uint8

// Filled counts the non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// InRange reports whether (row, col) addresses a cell on the board.
func InRange(row, col int) bool {
	return row >= 0 && row < 9 && col >= 0 && col < 9
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested placement for the UI.
type Hint struct {
	Cell    CellCoord `json:"cell"`
	Value   uint8     `json:"value"`
	Message string    `json:"message,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata. Givens is the initial
// board (the given-cell mask); Solution is the full grid it was carved
// from. Player progress is never persisted.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Givens     Grid       `json:"givens"`
	Solution   Grid       `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
