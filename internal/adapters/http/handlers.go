// Package httpadapter exposes the engine to a browser UI as a small
// JSON API. It owns no puzzle logic: every handler decodes a request,
// calls one session operation and encodes the outcome.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"svw.info/sudoku-game/internal/domain"
	"svw.info/sudoku-game/internal/session"
	"svw.info/sudoku-game/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// DefaultRemoved is the carve depth used when a request names
	// neither a difficulty nor a removal count.
	DefaultRemoved int
}

func New(uc *usecase.Service, defaultRemoved int) *Handler {
	return &Handler{UC: uc, DefaultRemoved: defaultRemoved}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/select", h.handleSelect)
	mux.HandleFunc("/api/enter", h.handleEnter)
	mux.HandleFunc("/api/undo", h.step("undo", (*session.Session).Undo))
	mux.HandleFunc("/api/redo", h.step("redo", (*session.Session).Redo))
	mux.HandleFunc("/api/reset", h.handleReset)
	mux.HandleFunc("/api/clear", h.handleClear)
	mux.HandleFunc("/api/regenerate", h.handleRegenerate)
	mux.HandleFunc("/api/check", h.handleCheck)
	mux.HandleFunc("/api/conflicts", h.handleConflicts)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// boardState is the session view every mutating endpoint returns.
type boardState struct {
	Board      domain.Grid `json:"board"`
	Givens     domain.Grid `json:"givens"`
	Cursor     int         `json:"cursor"`
	HistoryLen int         `json:"historyLen"`
}

func stateOf(s *session.Session) boardState {
	return boardState{
		Board:      s.Current(),
		Givens:     s.Givens(),
		Cursor:     s.Cursor(),
		HistoryLen: s.HistoryLen(),
	}
}

type errResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrOutOfRange),
		errors.Is(err, session.ErrGivenCell),
		errors.Is(err, session.ErrNoSelection),
		errors.Is(err, session.ErrBadValue):
		status = http.StatusConflict
	}
	writeJSON(w, status, errResp{Error: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// sessionReq is the common body of per-session endpoints.
type sessionReq struct {
	SessionID string `json:"sessionId"`
}

func (h *Handler) resolve(w http.ResponseWriter, id string) (*session.Session, bool) {
	s, err := h.UC.Session(id)
	if err != nil {
		writeErr(w, err)
		return nil, false
	}
	return s, true
}

// ---- New / Regenerate ----

type newReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Removed    int    `json:"removed,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type newResp struct {
	SessionID  string `json:"sessionId"`
	Seed       int64  `json:"seed"`
	DurationMs int64  `json:"durationMs"`
	Nodes      int    `json:"nodes"`
	boardState
}

func (h *Handler) removedFor(req newReq) int {
	if req.Removed != 0 {
		return req.Removed
	}
	if d := strings.ToLower(strings.TrimSpace(req.Difficulty)); d != "" {
		return domain.ParseDifficulty(d).Removed()
	}
	return h.DefaultRemoved
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newReq
	if !decode(w, r, &req) {
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	id, s, st, err := h.UC.NewSession(r.Context(), seed, h.removedFor(req))
	countOp("new", err)
	if err != nil {
		writeErr(w, err)
		return
	}
	puzzlesGeneratedTotal.Inc()
	generateSeconds.Observe(st.Duration.Seconds())
	writeJSON(w, http.StatusOK, newResp{
		SessionID:  id,
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
		boardState: stateOf(s),
	})
}

func (h *Handler) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	var req sessionReq
	if !decode(w, r, &req) {
		return
	}
	s, ok := h.resolve(w, req.SessionID)
	if !ok {
		return
	}
	st, err := s.Regenerate(r.Context())
	countOp("regenerate", err)
	if err != nil {
		writeErr(w, err)
		return
	}
	puzzlesGeneratedTotal.Inc()
	generateSeconds.Observe(st.Duration.Seconds())
	writeJSON(w, http.StatusOK, stateOf(s))
}

// ---- Select / Enter ----

type selectReq struct {
	SessionID string `json:"sessionId"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectReq
	if !decode(w, r, &req) {
		return
	}
	s, ok := h.resolve(w, req.SessionID)
	if !ok {
		return
	}
	err := s.Select(req.Row, req.Col)
	countOp("select", err)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateOf(s))
}

type enterReq struct {
	SessionID string `json:"sessionId"`
	Value     uint8  `json:"value"`
}

func (h *Handler) handleEnter(w http.ResponseWriter, r *http.Request) {
	var req enterReq
	if !decode(w, r, &req) {
		return
	}
	s, ok := h.resolve(w, req.SessionID)
	if !ok {
		return
	}
	err := s.Enter(req.Value)
	countOp("enter", err)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateOf(s))
}

// ---- Undo / Redo ----

type stepResp struct {
	Moved bool `json:"moved"`
	boardState
}

// step builds a handler for the cursor movements, which share a shape:
// they cannot fail, only report whether the cursor moved.
func (h *Handler) step(op string, move func(*session.Session) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionReq
		if !decode(w, r, &req) {
			return
		}
		s, ok := h.resolve(w, req.SessionID)
		if !ok {
			return
		}
		moved := move(s)
		countOp(op, nil)
		writeJSON(w, http.StatusOK, stepResp{Moved: moved, boardState: stateOf(s)})
	}
}

// ---- Reset / Clear ----

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var req sessionReq
	if !decode(w, r, &req) {
		return
	}
	s, ok := h.resolve(w, req.SessionID)
	if !ok {
		return
	}
	s.Reset()
	countOp("reset", nil)
	writeJSON(w, http.StatusOK, stateOf(s))
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	var req sessionReq
	if !decode(w, r, &req) {
		return
	}
	s, ok := h.resolve(w, req.SessionID)
	if !ok {
		return
	}
	s.Clear()
	countOp("clear", nil)
	writeJSON(w, http.StatusOK, stateOf(s))
}

// ---- Check / Conflicts / Hint ----

type checkResp struct {
	Solved bool `json:"solved"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req sessionReq
	if !decode(w, r, &req) {
		return
	}
	s, ok := h.resolve(w, req.SessionID)
	if !ok {
		return
	}
	countOp("check", nil)
	writeJSON(w, http.StatusOK, checkResp{Solved: s.Check()})
}

type conflictsResp struct {
	Conflicts []domain.CellCoord `json:"conflicts"`
}

func (h *Handler) handleConflicts(w http.ResponseWriter, r *http.Request) {
	var req sessionReq
	if !decode(w, r, &req) {
		return
	}
	conf, err := h.UC.Conflicts(req.SessionID)
	countOp("conflicts", err)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conflictsResp{Conflicts: conf})
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req sessionReq
	if !decode(w, r, &req) {
		return
	}
	hh, found, err := h.UC.Hint(r.Context(), req.SessionID)
	countOp("hint", err)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

type saveReq struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveReq
	if !decode(w, r, &req) {
		return
	}
	id, err := h.UC.SavePuzzle(r.Context(), req.SessionID, req.Name, req.Notes)
	countOp("save", err)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: id})
}

type loadReq struct {
	ID   string `json:"id"`
	Seed int64  `json:"seed,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if !decode(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeJSON(w, http.StatusBadRequest, errResp{Error: "missing id"})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	id, s, err := h.UC.LoadPuzzle(r.Context(), req.ID, seed)
	countOp("load", err)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, newResp{SessionID: id, Seed: seed, boardState: stateOf(s)})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{Error: "method not allowed"})
		return
	}
	ps, err := h.UC.ListPuzzles(r.Context())
	countOp("list", err)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
