package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fuzzyray/sudoku-solver/internal/domain"
	"github.com/fuzzyray/sudoku-solver/internal/solver"
	"github.com/fuzzyray/sudoku-solver/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/check", h.handleCheck)
}

// Caller-visible error messages. Solver-internal failure modes
// (invalid board, exhausted search, attempt ceiling) map to one
// uniform message at this boundary.
const (
	msgMissingField  = "Required field missing"
	msgMissingFields = "Required field(s) missing"
	msgBadLength     = "Expected puzzle to be 81 characters long"
	msgBadCharacters = "Invalid characters in puzzle"
	msgCannotSolve   = "Puzzle cannot be solved"
	msgBadCoordinate = "Invalid coordinate"
	msgBadCheckValue = "Invalid value"
)

func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidLength):
		return msgBadLength
	case errors.Is(err, domain.ErrInvalidCharacters):
		return msgBadCharacters
	case errors.Is(err, solver.ErrInvalidBoard),
		errors.Is(err, solver.ErrUnsolvable),
		errors.Is(err, solver.ErrTimeout):
		return msgCannotSolve
	case errors.Is(err, usecase.ErrInvalidCoordinate):
		return msgBadCoordinate
	case errors.Is(err, usecase.ErrInvalidValue):
		return msgBadCheckValue
	default:
		return err.Error()
	}
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Solve ----

type solveReq struct {
	Puzzle *string `json:"puzzle"`
}

type solveResp struct {
	Solution string `json:"solution"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Puzzle == nil {
		writeJSON(w, http.StatusOK, errorResp{Error: msgMissingField})
		return
	}
	solution, _, err := h.UC.SolvePuzzle(r.Context(), *req.Puzzle)
	if err != nil {
		writeJSON(w, http.StatusOK, errorResp{Error: errorMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{Solution: solution})
}

// ---- Check ----

type checkReq struct {
	Puzzle     *string `json:"puzzle"`
	Coordinate *string `json:"coordinate"`
	Value      *string `json:"value"`
}

type checkResp struct {
	Valid     bool     `json:"valid"`
	Conflicts []string `json:"conflicts,omitempty"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Puzzle == nil || req.Coordinate == nil || req.Value == nil {
		writeJSON(w, http.StatusOK, errorResp{Error: msgMissingFields})
		return
	}
	res, err := h.UC.CheckPlacement(r.Context(), *req.Puzzle, *req.Coordinate, *req.Value)
	if err != nil {
		writeJSON(w, http.StatusOK, errorResp{Error: errorMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, checkResp{Valid: res.Valid, Conflicts: res.Conflicts})
}
