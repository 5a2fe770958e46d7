package usecase

import (
	"context"
	"errors"

	"github.com/fuzzyray/sudoku-solver/internal/domain"
	"github.com/fuzzyray/sudoku-solver/internal/ports"
)

// Boundary parse errors for the check operation.
var (
	ErrInvalidCoordinate = errors.New("coordinate must be a row letter A-I followed by a column digit 1-9")
	ErrInvalidValue      = errors.New("value must be a digit 1-9")
)

// CheckResult is the outcome of testing one placement.
type CheckResult struct {
	Valid     bool
	Conflicts []string
}

// Service exposes the string-level solve and check operations shared
// by the HTTP adapter and the CLI. Each call parses a fresh Board, so
// concurrent requests never share mutable grid state.
type Service struct {
	Solver  ports.Solver
	Checker ports.Checker
}

func NewService(s ports.Solver, c ports.Checker) *Service {
	return &Service{Solver: s, Checker: c}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolvePuzzle parses the 81-character encoding, runs the search, and
// returns the solved board's encoding.
func (u *Service) SolvePuzzle(ctx context.Context, puzzle string) (string, ports.Stats, error) {
	if u.Solver == nil {
		return "", ports.Stats{}, errNotConfigured
	}
	b, err := domain.FromString(puzzle)
	if err != nil {
		return "", ports.Stats{}, err
	}
	out, st, err := u.Solver.Solve(ctx, b)
	if err != nil {
		return "", st, err
	}
	return out.String(), st, nil
}

// CheckPlacement parses the puzzle, coordinate and value strings and
// tests the placement against the board's constraint groups.
func (u *Service) CheckPlacement(ctx context.Context, puzzle, coordinate, value string) (CheckResult, error) {
	if u.Checker == nil {
		return CheckResult{}, errNotConfigured
	}
	b, err := domain.FromString(puzzle)
	if err != nil {
		return CheckResult{}, err
	}
	row, col, err := ParseCoordinate(coordinate)
	if err != nil {
		return CheckResult{}, err
	}
	v, err := parseValue(value)
	if err != nil {
		return CheckResult{}, err
	}
	ok, conflicts, err := u.Checker.CheckPlacement(ctx, b, row, col, v)
	if err != nil {
		return CheckResult{}, err
	}
	return CheckResult{Valid: ok, Conflicts: conflicts}, nil
}

// ParseCoordinate maps a board coordinate like "A1" to zero-based
// (row, col): the letter A-I selects the row, the digit 1-9 the
// column. The format is case-sensitive; lowercase letters are rejected.
func ParseCoordinate(s string) (row, col int, err error) {
	if len(s) != 2 {
		return 0, 0, ErrInvalidCoordinate
	}
	r, c := s[0], s[1]
	if r < 'A' || r > 'I' || c < '1' || c > '9' {
		return 0, 0, ErrInvalidCoordinate
	}
	return int(r - 'A'), int(c - '1'), nil
}

func parseValue(s string) (domain.Cell, error) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return domain.Empty, ErrInvalidValue
	}
	return domain.Cell(s[0] - '0'), nil
}
