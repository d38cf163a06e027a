package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-game/internal/domain"
	"svw.info/sudoku-game/internal/ports"
	"svw.info/sudoku-game/internal/session"
)

// Service wires the engine's providers and keeps the registry of live
// sessions, keyed by opaque IDs handed to the UI adapter.
type Service struct {
	Gen     ports.Generator
	Ver     ports.Verifier
	Hinter  ports.Hinter
	Storage ports.Storage

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

func NewService(g ports.Generator, v ports.Verifier, h ports.Hinter, st ports.Storage) *Service {
	return &Service{
		Gen:      g,
		Ver:      v,
		Hinter:   h,
		Storage:  st,
		sessions: make(map[string]*session.Session),
	}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrSessionNotFound rejects operations on unknown session IDs.
	ErrSessionNotFound = errors.New("session not found")
)

// NewSession generates a puzzle, opens a session over it and registers
// it under a fresh ID.
func (u *Service) NewSession(ctx context.Context, seed int64, removed int) (string, *session.Session, ports.Stats, error) {
	if u.Gen == nil {
		return "", nil, ports.Stats{}, errNotConfigured
	}
	s, st, err := session.New(ctx, u.Gen, seed, removed)
	if err != nil {
		return "", nil, st, err
	}
	id := uuid.NewString()
	u.mu.Lock()
	u.sessions[id] = s
	u.mu.Unlock()
	return id, s, st, nil
}

// Session resolves a live session by ID.
func (u *Service) Session(id string) (*session.Session, error) {
	u.mu.RLock()
	s, ok := u.sessions[id]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Drop forgets a session. Unknown IDs are a no-op.
func (u *Service) Drop(id string) {
	u.mu.Lock()
	delete(u.sessions, id)
	u.mu.Unlock()
}

// Conflicts scans a session's current board for rule conflicts.
func (u *Service) Conflicts(id string) ([]domain.CellCoord, error) {
	if u.Ver == nil {
		return nil, errNotConfigured
	}
	s, err := u.Session(id)
	if err != nil {
		return nil, err
	}
	g := s.Current()
	return u.Ver.Conflicts(&g), nil
}

// Hint suggests the next logical placement on a session's board.
func (u *Service) Hint(ctx context.Context, id string) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	s, err := u.Session(id)
	if err != nil {
		return domain.Hint{}, false, err
	}
	g := s.Current()
	return u.Hinter.Hint(ctx, &g)
}

// SavePuzzle persists a session's puzzle definition (givens and
// solution, never player progress) and returns the stored ID.
func (u *Service) SavePuzzle(ctx context.Context, id, name, notes string) (string, error) {
	if u.Storage == nil {
		return "", errNotConfigured
	}
	s, err := u.Session(id)
	if err != nil {
		return "", err
	}
	givens := s.Givens()
	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Difficulty: nearestDifficulty(81 - givens.Filled()),
		Givens:     givens,
		Solution:   s.Solution(),
		CreatedAt:  time.Now().UnixNano(),
		Name:       name,
		Notes:      notes,
	}
	if err := u.Storage.Save(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// LoadPuzzle opens a new session over a stored puzzle.
func (u *Service) LoadPuzzle(ctx context.Context, puzzleID string, seed int64) (string, *session.Session, error) {
	if u.Storage == nil || u.Gen == nil {
		return "", nil, errNotConfigured
	}
	p, err := u.Storage.Load(ctx, puzzleID)
	if err != nil {
		return "", nil, err
	}
	s := session.Resume(u.Gen, p, seed)
	id := uuid.NewString()
	u.mu.Lock()
	u.sessions[id] = s
	u.mu.Unlock()
	return id, s, nil
}

// ListPuzzles returns metadata for every stored puzzle.
func (u *Service) ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

// nearestDifficulty buckets a carve depth into the closest preset, for
// the storage layout and listings.
func nearestDifficulty(removed int) domain.Difficulty {
	best := domain.Medium
	bestDist := 82
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		dist := removed - d.Removed()
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
