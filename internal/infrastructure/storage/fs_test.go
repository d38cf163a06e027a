package storage

import (
	"context"
	"os"
	"testing"

	"svw.info/sudoku-game/internal/domain"
)

func samplePuzzle(id string, d domain.Difficulty) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:         id,
		Seed:       42,
		Difficulty: d,
		CreatedAt:  1700000000,
		Name:       "test puzzle",
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			p.Solution[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	p.Givens = p.Solution
	p.Givens[0][0] = 0
	p.Givens[8][8] = 0
	return p
}

func TestSaveLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	fs := NewFS(t.TempDir())

	p := samplePuzzle("abc-123", domain.Hard)
	if err := fs.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := fs.Load(ctx, "abc-123")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ID != p.ID || got.Difficulty != p.Difficulty || got.Name != p.Name {
		t.Fatalf("metadata mismatch: %+v", got)
	}
	if got.Givens != p.Givens || got.Solution != p.Solution {
		t.Fatal("boards did not roundtrip")
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	fs := NewFS(t.TempDir())
	if err := fs.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("expected error for puzzle without ID")
	}
}

func TestLoadUnknownID(t *testing.T) {
	fs := NewFS(t.TempDir())
	if _, err := fs.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestListAcrossDifficulties(t *testing.T) {
	ctx := context.Background()
	fs := NewFS(t.TempDir())

	for i, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard} {
		p := samplePuzzle(string(rune('a'+i)), d)
		if err := fs.Save(ctx, p); err != nil {
			t.Fatalf("Save %v: %v", d, err)
		}
	}

	metas, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 3 {
		t.Fatalf("listed %d puzzles, want 3", len(metas))
	}
	seen := map[domain.Difficulty]bool{}
	for _, m := range metas {
		if m.ID == "" {
			t.Fatalf("empty ID in listing: %+v", m)
		}
		seen[m.Difficulty] = true
	}
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard} {
		if !seen[d] {
			t.Errorf("difficulty %v missing from listing", d)
		}
	}
}
