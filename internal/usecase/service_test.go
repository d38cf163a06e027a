package usecase

import (
	"context"
	"errors"
	"testing"

	"svw.info/sudoku-game/internal/generator"
	"svw.info/sudoku-game/internal/hint"
	"svw.info/sudoku-game/internal/infrastructure/storage"
	"svw.info/sudoku-game/internal/verify"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(
		generator.NewRandom(),
		verify.New(),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
	)
}

func TestSessionRegistry(t *testing.T) {
	ctx := context.Background()
	u := newTestService(t)

	id, s, st, err := u.NewSession(ctx, 11, 40)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if id == "" || s == nil || st.Nodes == 0 {
		t.Fatalf("incomplete session: id=%q nodes=%d", id, st.Nodes)
	}

	got, err := u.Session(id)
	if err != nil || got != s {
		t.Fatalf("Session(%q) = %v, %v", id, got, err)
	}

	if _, err := u.Session("unknown"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("unknown ID: err = %v, want ErrSessionNotFound", err)
	}

	u.Drop(id)
	if _, err := u.Session(id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatal("dropped session still resolvable")
	}
}

func TestSaveAndLoadPuzzle(t *testing.T) {
	ctx := context.Background()
	u := newTestService(t)

	id, s, _, err := u.NewSession(ctx, 23, 40)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	puzzleID, err := u.SavePuzzle(ctx, id, "evening puzzle", "")
	if err != nil {
		t.Fatalf("SavePuzzle: %v", err)
	}

	metas, err := u.ListPuzzles(ctx)
	if err != nil || len(metas) != 1 {
		t.Fatalf("ListPuzzles = %v, %v; want one entry", metas, err)
	}
	if metas[0].ID != puzzleID || metas[0].Name != "evening puzzle" {
		t.Fatalf("listing mismatch: %+v", metas[0])
	}

	loadedID, loaded, err := u.LoadPuzzle(ctx, puzzleID, 77)
	if err != nil {
		t.Fatalf("LoadPuzzle: %v", err)
	}
	if loadedID == id {
		t.Fatal("loaded session must get its own ID")
	}
	if loaded.Givens() != s.Givens() || loaded.Solution() != s.Solution() {
		t.Fatal("loaded session boards differ from the saved puzzle")
	}
}

func TestConflictsAndHintResolveSession(t *testing.T) {
	ctx := context.Background()
	u := newTestService(t)

	if _, err := u.Conflicts("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Conflicts: err = %v, want ErrSessionNotFound", err)
	}
	if _, _, err := u.Hint(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Hint: err = %v, want ErrSessionNotFound", err)
	}

	id, _, _, err := u.NewSession(ctx, 31, 40)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	// a fresh carve has no duplicates
	conf, err := u.Conflicts(id)
	if err != nil || len(conf) != 0 {
		t.Fatalf("Conflicts on fresh board = %v, %v", conf, err)
	}
}
