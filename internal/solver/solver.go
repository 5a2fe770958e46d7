package solver

import (
	"errors"

	"github.com/fuzzyray/sudoku-solver/internal/domain"
)

// Terminal search outcomes. Callers distinguish them with errors.Is.
var (
	// ErrInvalidBoard means the givens already violate a Sudoku
	// constraint; no search is attempted.
	ErrInvalidBoard = errors.New("board violates sudoku constraints")
	// ErrUnsolvable means full backtracking proved no solution exists.
	ErrUnsolvable = errors.New("no solution exists")
	// ErrTimeout means the attempt ceiling was hit. It is a safety
	// valve, not a proof of unsolvability.
	ErrTimeout = errors.New("search exceeded attempt limit")
)

// DefaultMaxAttempts bounds the number of placements a single solve
// may make before giving up with ErrTimeout.
const DefaultMaxAttempts = 1_000_000

// Solver validates boards and runs the backtracking search.
// The zero value is ready to use with the default attempt ceiling.
// A Solver holds no board state, but a board being solved must not be
// shared across concurrent calls.
type Solver struct {
	MaxAttempts int
}

func New() *Solver { return &Solver{} }

// usedMask returns a bitmask of the digits occupied in the row, column
// and region of (row, col), excluding the target cell itself. Excluding
// the cell lets occupied cells be re-validated as if they were empty
// without mutating the board.
func usedMask(b *domain.Board, row, col int) uint16 {
	var m uint16
	rowCells, _ := b.Row(row)
	for i, v := range rowCells {
		if i != col && v != domain.Empty {
			m |= 1 << v
		}
	}
	colCells, _ := b.Column(col)
	for i, v := range colCells {
		if i != row && v != domain.Empty {
			m |= 1 << v
		}
	}
	regCells, _ := b.Region(row, col)
	self := (row%3)*3 + col%3
	for i, v := range regCells {
		if i != self && v != domain.Empty {
			m |= 1 << v
		}
	}
	return m
}

// Candidates returns the digits that may legally be placed at
// (row, col): {1..9} minus the values occupied in its row, column and
// region. For an occupied cell it returns the singleton of the cell's
// own value. The board is never mutated.
func (s *Solver) Candidates(b *domain.Board, row, col int) ([]domain.Cell, error) {
	v, err := b.Get(row, col)
	if err != nil {
		return nil, err
	}
	if v != domain.Empty {
		return []domain.Cell{v}, nil
	}
	m := usedMask(b, row, col)
	out := make([]domain.Cell, 0, domain.Size)
	for d := domain.Cell(1); d <= 9; d++ {
		if m&(1<<d) == 0 {
			out = append(out, d)
		}
	}
	return out, nil
}

// IsValidRowPlacement reports whether v may be placed at (row, col)
// as far as the row constraint is concerned. Placement on an occupied
// cell is never valid.
func (s *Solver) IsValidRowPlacement(b *domain.Board, row, col int, v domain.Cell) bool {
	cur, err := b.Get(row, col)
	if err != nil || cur != domain.Empty {
		return false
	}
	cells, _ := b.Row(row)
	return !contains(cells[:], col, v)
}

// IsValidColumnPlacement is the column counterpart of IsValidRowPlacement.
func (s *Solver) IsValidColumnPlacement(b *domain.Board, row, col int, v domain.Cell) bool {
	cur, err := b.Get(row, col)
	if err != nil || cur != domain.Empty {
		return false
	}
	cells, _ := b.Column(col)
	return !contains(cells[:], row, v)
}

// IsValidRegionPlacement is the 3x3-region counterpart of IsValidRowPlacement.
func (s *Solver) IsValidRegionPlacement(b *domain.Board, row, col int, v domain.Cell) bool {
	cur, err := b.Get(row, col)
	if err != nil || cur != domain.Empty {
		return false
	}
	cells, _ := b.Region(row, col)
	return !contains(cells[:], (row%3)*3+col%3, v)
}

func contains(cells []domain.Cell, skip int, v domain.Cell) bool {
	for i, c := range cells {
		if i != skip && c == v {
			return true
		}
	}
	return false
}

// IsValidBoard reports whether every occupied cell's value would still
// be a candidate if the cell were empty. The check is side-effect-free:
// the occupied set for each group excludes the cell under test instead
// of clearing and restoring it.
func (s *Solver) IsValidBoard(b *domain.Board) bool {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v, _ := b.Get(r, c)
			if v == domain.Empty {
				continue
			}
			if usedMask(b, r, c)&(1<<v) != 0 {
				return false
			}
		}
	}
	return true
}

// fullMask has bits 1..9 set: every digit present.
const fullMask = uint16(0b1111111110)

// IsSolved reports whether the board is completely and correctly
// filled: no empty cells, all nine digits present, and valid per
// IsValidBoard. The digit-set test alone cannot catch a per-group
// duplicate, so the validity check is load-bearing here.
func (s *Solver) IsSolved(b *domain.Board) bool {
	var seen uint16
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v, _ := b.Get(r, c)
			if v == domain.Empty {
				return false
			}
			seen |= 1 << v
		}
	}
	if seen != fullMask {
		return false
	}
	return s.IsValidBoard(b)
}
