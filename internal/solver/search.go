package solver

import (
	"context"
	"time"

	"github.com/fuzzyray/sudoku-solver/internal/domain"
	"github.com/fuzzyray/sudoku-solver/internal/ports"
)

// frame is one reversible decision point on the backtracking stack:
// the cell that was filled and the candidate values not yet tried
// there. Undo is a single Clear of the cell; no board snapshots.
type frame struct {
	row, col  int
	remaining []domain.Cell
}

// Solve fills the board in place using backtracking search with the
// minimum-remaining-values heuristic. Cell selection ties break to the
// first cell in row-major order and candidate values are tried in
// ascending order, so the result is deterministic for a given input.
//
// Outcomes: the solved board, or ErrInvalidBoard (givens already
// inconsistent, detected before any search), ErrUnsolvable (search
// space exhausted), ErrTimeout (attempt ceiling reached), or the
// context's error if it is canceled mid-search.
func (s *Solver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if !s.IsValidBoard(b) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrInvalidBoard
	}
	limit := s.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}

	var stack []frame
	nodes := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if s.IsSolved(b) {
			return b, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}

		row, col, cands := s.mostConstrained(b)
		if row < 0 {
			// Full but not solved: unreachable after the up-front
			// validity check, since every placement comes from a
			// candidate set.
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
		}

		if len(cands) == 0 {
			// Dead end: rewind to the nearest frame with untried
			// values, clearing each abandoned cell on the way.
			for len(stack) > 0 {
				f := &stack[len(stack)-1]
				_ = b.Clear(f.row, f.col)
				if len(f.remaining) > 0 {
					break
				}
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
			}
			f := &stack[len(stack)-1]
			v := f.remaining[0]
			f.remaining = f.remaining[1:]
			_ = b.Set(f.row, f.col, v)
		} else {
			v := cands[0]
			stack = append(stack, frame{row: row, col: col, remaining: cands[1:]})
			_ = b.Set(row, col, v)
		}

		nodes++
		if nodes > limit {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrTimeout
		}
	}
}

// mostConstrained returns the empty cell with the fewest candidates,
// scanning in row-major order so ties are broken deterministically.
// row == -1 means the board has no empty cell. A zero-length candidate
// slice signals a dead end and short-circuits the scan.
func (s *Solver) mostConstrained(b *domain.Board) (row, col int, cands []domain.Cell) {
	row = -1
	best := domain.Size + 1
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v, _ := b.Get(r, c)
			if v != domain.Empty {
				continue
			}
			cs, _ := s.Candidates(b, r, c)
			if len(cs) < best {
				row, col, cands, best = r, c, cs, len(cs)
				if best == 0 {
					return
				}
			}
		}
	}
	return
}
