package hint

import (
	"context"
	"testing"

	"svw.info/sudoku-game/internal/domain"
)

var solved = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestHintFindsNakedSingle(t *testing.T) {
	g := solved
	g[4][4] = 0 // the only empty cell: exactly one digit fits

	h, found, err := NewSingles().Hint(context.Background(), &g)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if !found {
		t.Fatal("expected a naked single")
	}
	if h.Cell != (domain.CellCoord{Row: 4, Col: 4}) || h.Value != 5 {
		t.Fatalf("hint = %+v, want value 5 at (4,4)", h)
	}
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	var g domain.Grid
	_, found, err := NewSingles().Hint(context.Background(), &g)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if found {
		t.Fatal("an empty board has no naked singles")
	}
}
