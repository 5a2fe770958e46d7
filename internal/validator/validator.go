package validator

import (
	"context"

	"github.com/fuzzyray/sudoku-solver/internal/domain"
)

// Constraint group names reported by CheckPlacement, in check order.
const (
	GroupRegion = "region"
	GroupColumn = "column"
	GroupRow    = "row"
)

// FastChecker tests single-cell placements against a board.
type FastChecker struct{}

func New() *FastChecker { return &FastChecker{} }

// CheckPlacement reports whether v can go at (row, col) and, when it
// cannot, the groups in which v already occurs elsewhere. Groups are
// checked and reported in region, column, row order. The target cell
// itself is skipped, so re-checking a value already placed at the
// coordinate is consistent rather than self-conflicting.
func (fc *FastChecker) CheckPlacement(ctx context.Context, b *domain.Board, row, col int, v domain.Cell) (bool, []string, error) {
	if v < 1 || v > 9 {
		return false, nil, domain.ErrInvalidValue
	}
	region, err := b.Region(row, col)
	if err != nil {
		return false, nil, err
	}
	column, _ := b.Column(col)
	rowCells, _ := b.Row(row)

	var conflicts []string
	if occursExcept(region[:], (row%3)*3+col%3, v) {
		conflicts = append(conflicts, GroupRegion)
	}
	if occursExcept(column[:], row, v) {
		conflicts = append(conflicts, GroupColumn)
	}
	if occursExcept(rowCells[:], col, v) {
		conflicts = append(conflicts, GroupRow)
	}
	return len(conflicts) == 0, conflicts, nil
}

func occursExcept(cells []domain.Cell, skip int, v domain.Cell) bool {
	for i, c := range cells {
		if i != skip && c == v {
			return true
		}
	}
	return false
}
