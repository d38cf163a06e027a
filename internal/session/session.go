// Package session owns a player's editing state over one puzzle: the
// immutable solution, the given-cell mask, the current board, a linear
// undo/redo log of board snapshots, and the selected cell.
package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"svw.info/sudoku-game/internal/domain"
	"svw.info/sudoku-game/internal/generator"
	"svw.info/sudoku-game/internal/ports"
	"svw.info/sudoku-game/internal/verify"
)

var (
	// ErrOutOfRange rejects coordinates not on the 9x9 board.
	ErrOutOfRange = errors.New("cell out of range")
	// ErrGivenCell rejects selection of a pre-filled given cell.
	ErrGivenCell = errors.New("cell is a given")
	// ErrNoSelection rejects value entry with no cell selected.
	ErrNoSelection = errors.New("no cell selected")
	// ErrBadValue rejects entries outside 1..9.
	ErrBadValue = errors.New("value must be 1-9")
)

// Session is the state machine for one puzzle. Methods are serialized
// by an internal mutex; each operation runs to completion before the
// next is accepted.
type Session struct {
	mu sync.Mutex

	gen     ports.Generator
	rng     *rand.Rand
	removed int

	solution domain.Grid
	givens   domain.Grid
	current  domain.Grid
	history  []domain.Grid
	cursor   int
	selected *domain.CellCoord
}

// New generates a fresh puzzle and opens a session over it. removed is
// clamped to [0, 81]; the same seed reproduces the same session.
func New(ctx context.Context, gen ports.Generator, seed int64, removed int) (*Session, ports.Stats, error) {
	removed = generator.ClampRemoved(removed)
	solution, givens, st, err := gen.Generate(ctx, seed, removed)
	if err != nil {
		return nil, st, err
	}
	s := &Session{
		gen:     gen,
		rng:     rand.New(rand.NewSource(seed)),
		removed: removed,
	}
	s.install(solution, givens)
	return s, st, nil
}

// Resume opens a session over a previously generated puzzle, e.g. one
// loaded from storage. seed drives reset/regenerate randomness only.
func Resume(gen ports.Generator, p *domain.Puzzle, seed int64) *Session {
	removed := 81 - p.Givens.Filled()
	s := &Session{
		gen:     gen,
		rng:     rand.New(rand.NewSource(seed)),
		removed: removed,
	}
	s.install(p.Solution, p.Givens)
	return s
}

// install replaces the whole puzzle state: board, mask and history.
func (s *Session) install(solution, givens domain.Grid) {
	s.solution = solution
	s.givens = givens
	s.current = givens
	s.history = []domain.Grid{givens}
	s.cursor = 0
	s.selected = nil
}

// Select marks an editable cell as the target for the next Enter.
// Given cells and off-board coordinates are rejected and leave the
// previous selection untouched.
func (s *Session) Select(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !domain.InRange(row, col) {
		return ErrOutOfRange
	}
	if s.givens[row][col] != 0 {
		return ErrGivenCell
	}
	s.selected = &domain.CellCoord{Row: row, Col: col}
	return nil
}

// Selected returns the current selection, if any.
func (s *Session) Selected() (domain.CellCoord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return domain.CellCoord{}, false
	}
	return *s.selected, true
}

// Enter writes v into the selected cell as a new history snapshot and
// clears the selection. Snapshots past the cursor are discarded first,
// so entering after an undo truncates the redo branch. Entries are not
// checked against the solution or the placement rules.
func (s *Session) Enter(v uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v < 1 || v > 9 {
		return ErrBadValue
	}
	if s.selected == nil {
		return ErrNoSelection
	}
	next := s.current
	next[s.selected.Row][s.selected.Col] = v
	s.history = append(s.history[:s.cursor+1], next)
	s.cursor++
	s.current = next
	s.selected = nil
	return nil
}

// Undo steps the cursor back one snapshot. Reports false at the start
// of the log.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	s.current = s.history[s.cursor]
	return true
}

// Redo steps the cursor forward one snapshot. Reports false at the end
// of the log.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.history)-1 {
		return false
	}
	s.cursor++
	s.current = s.history[s.cursor]
	return true
}

// Reset carves a fresh puzzle from the same solution: a new random
// blank pattern, not a restore of the previous board. The given mask
// is replaced along with the board so givens always describe the
// puzzle actually on screen. History restarts at the new snapshot.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	givens := generator.Carve(s.rng, s.solution, s.removed)
	s.install(s.solution, givens)
}

// Clear blanks every editable cell, leaving the givens; the result
// equals the given mask exactly. History restarts at the cleared
// snapshot, so Clear is not undoable.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.givens[r][c] == 0 {
				next[r][c] = 0
			}
		}
	}
	s.current = next
	s.history = []domain.Grid{next}
	s.cursor = 0
	s.selected = nil
}

// Regenerate replaces the whole puzzle: a new solution, a new carve,
// fresh history. The only operation that changes the solution.
func (s *Session) Regenerate(ctx context.Context) (ports.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	solution, givens, st, err := s.gen.Generate(ctx, s.rng.Int63(), s.removed)
	if err != nil {
		return st, err
	}
	s.install(solution, givens)
	return st, nil
}

// Check reports whether the current board equals the solution in every
// cell. A single aggregate answer; empty cells fail the comparison.
func (s *Session) Check() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return verify.Matches(&s.current, &s.solution)
}

// Current returns the board the player sees.
func (s *Session) Current() domain.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Givens returns the given-cell mask of the active puzzle.
func (s *Session) Givens() domain.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.givens
}

// Solution returns the solved grid this puzzle was carved from.
func (s *Session) Solution() domain.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solution
}

// Removed returns the carve depth the session was opened with.
func (s *Session) Removed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removed
}

// HistoryLen and Cursor expose the log shape for the UI (e.g. graying
// out undo/redo buttons).
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}
