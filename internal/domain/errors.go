package domain

import "errors"

// Input-shape and contract errors. All are detected before any search
// runs and are recoverable by resubmitting corrected input.
var (
	ErrInvalidLength     = errors.New("puzzle must be exactly 81 characters")
	ErrInvalidCharacters = errors.New("puzzle may only contain '.' and digits 1-9")
	ErrInvalidValue      = errors.New("cell value must be empty or a digit 1-9")
	ErrOutOfBounds       = errors.New("row and column must be in range 0-8")
)
