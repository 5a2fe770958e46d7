package validator

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/fuzzyray/sudoku-solver/internal/domain"
)

const samplePuzzle = "..9..5.1.85.4....2432......1...69.83.9.....6.62.71...9......1945....4.37.4.3..6.."

func mustBoard(t *testing.T, s string) *domain.Board {
	t.Helper()
	b, err := domain.FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q) failed: %v", s, err)
	}
	return b
}

func TestCheckPlacement(t *testing.T) {
	ctx := context.Background()
	fc := New()

	// (0,0) sees 9 in its row at (0,5), 9 in its region at (1,1) and
	// 9 in its column at (5,0).
	tripleConflict := ".....9..." + ".9......." + strings.Repeat(".", 27) + "9........" + strings.Repeat(".", 27)

	cases := []struct {
		name      string
		board     string
		row, col  int
		v         domain.Cell
		valid     bool
		conflicts []string
	}{
		{"consistent placement", samplePuzzle, 0, 0, 7, true, nil},
		{"row conflict", samplePuzzle, 0, 1, 1, false, []string{GroupRow}},
		{"region conflict", samplePuzzle, 0, 1, 8, false, []string{GroupRegion}},
		{"all groups, check order", tripleConflict, 0, 0, 9, false, []string{GroupRegion, GroupColumn, GroupRow}},
		{"value matching own cell", samplePuzzle, 0, 2, 9, true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.board)
			ok, conflicts, err := fc.CheckPlacement(ctx, b, tc.row, tc.col, tc.v)
			if err != nil {
				t.Fatalf("CheckPlacement failed: %v", err)
			}
			if ok != tc.valid {
				t.Fatalf("valid = %v, want %v (conflicts %v)", ok, tc.valid, conflicts)
			}
			if !reflect.DeepEqual(conflicts, tc.conflicts) {
				t.Fatalf("conflicts = %v, want %v", conflicts, tc.conflicts)
			}
			if b.String() != tc.board {
				t.Fatalf("CheckPlacement mutated the board")
			}
		})
	}
}

func TestCheckPlacementErrors(t *testing.T) {
	ctx := context.Background()
	fc := New()
	b := mustBoard(t, samplePuzzle)

	if _, _, err := fc.CheckPlacement(ctx, b, 0, 0, 0); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("value 0: err = %v, want ErrInvalidValue", err)
	}
	if _, _, err := fc.CheckPlacement(ctx, b, 0, 0, 10); !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("value 10: err = %v, want ErrInvalidValue", err)
	}
	if _, _, err := fc.CheckPlacement(ctx, b, 9, 0, 1); !errors.Is(err, domain.ErrOutOfBounds) {
		t.Fatalf("row 9: err = %v, want ErrOutOfBounds", err)
	}
}
