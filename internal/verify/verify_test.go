package verify

import (
	"context"
	"testing"

	"svw.info/sudoku-game/internal/domain"
	"svw.info/sudoku-game/internal/generator"
)

func TestMatches(t *testing.T) {
	solution, givens, _, err := generator.NewRandom().Generate(context.Background(), 5, 40)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !Matches(&solution, &solution) {
		t.Fatal("a grid must match itself")
	}
	if Matches(&givens, &solution) {
		t.Fatal("a carved puzzle must not match its solution")
	}

	almost := solution
	almost[4][4] = 0
	if Matches(&almost, &solution) {
		t.Fatal("an empty cell must not match a filled one")
	}
}

func TestConflicts(t *testing.T) {
	var g domain.Grid
	if got := Conflicts(&g); len(got) != 0 {
		t.Fatalf("empty board reported conflicts: %v", got)
	}

	g[0][0] = 4
	g[0][7] = 4 // row duplicate
	g[5][0] = 4 // col duplicate
	g[1][1] = 9
	g[2][2] = 9 // box duplicate

	got := Conflicts(&g)
	want := map[domain.CellCoord]bool{
		{Row: 0, Col: 7}: true,
		{Row: 5, Col: 0}: true,
		{Row: 2, Col: 2}: true,
	}
	for _, c := range got {
		if !want[c] {
			t.Errorf("unexpected conflict at %v", c)
		}
		delete(want, c)
	}
	for c := range want {
		t.Errorf("missing conflict at %v", c)
	}
}
