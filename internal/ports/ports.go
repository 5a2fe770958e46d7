package ports

import (
	"context"
	"time"

	"github.com/fuzzyray/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs the backtracking search. The board is mutated in place
// during the search, so callers must not share one board across solves.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Checker tests a single placement and reports the constraint groups
// ("region", "column", "row") in which the value already occurs.
type Checker interface {
	CheckPlacement(ctx context.Context, b *domain.Board, row, col int, v domain.Cell) (bool, []string, error)
}
