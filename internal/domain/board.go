package domain

import "strings"

// Cell holds one grid value: Empty, or a digit 1-9.
type Cell uint8

// Empty marks an unfilled cell.
const Empty Cell = 0

// Size is the grid edge length; the board always has Size*Size cells.
const (
	Size     = 9
	NumCells = Size * Size
)

// Board is a 9x9 Sudoku grid stored as a flat row-major array.
// Index i maps to row i/9, column i%9. Row, column and region views
// are index arithmetic over the same array.
type Board struct {
	cells [NumCells]Cell
}

// FromString parses the 81-character linear encoding: '.' for an empty
// cell, '1'-'9' for givens, row-major order.
func FromString(s string) (*Board, error) {
	if len(s) != NumCells {
		return nil, ErrInvalidLength
	}
	b := &Board{}
	for i := 0; i < NumCells; i++ {
		ch := s[i]
		switch {
		case ch == '.':
			// already Empty
		case ch >= '1' && ch <= '9':
			b.cells[i] = Cell(ch - '0')
		default:
			return nil, ErrInvalidCharacters
		}
	}
	return b, nil
}

// String renders the board back into its linear encoding. It is the
// inverse of FromString: FromString(b.String()) reproduces b.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(NumCells)
	for _, c := range b.cells {
		if c == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(c))
		}
	}
	return sb.String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Get returns the cell at (row, col), both 0-8.
func (b *Board) Get(row, col int) (Cell, error) {
	if !inBounds(row, col) {
		return Empty, ErrOutOfBounds
	}
	return b.cells[row*Size+col], nil
}

// Set writes v (Empty or 1-9) at (row, col). No other cell is touched.
func (b *Board) Set(row, col int, v Cell) error {
	if !inBounds(row, col) {
		return ErrOutOfBounds
	}
	if v != Empty && (v < 1 || v > 9) {
		return ErrInvalidValue
	}
	b.cells[row*Size+col] = v
	return nil
}

// Clear empties the cell at (row, col).
func (b *Board) Clear(row, col int) error {
	return b.Set(row, col, Empty)
}

// Row returns the 9 cells of row r. Only set membership is meaningful
// to callers; the order is the column order.
func (b *Board) Row(r int) ([Size]Cell, error) {
	var out [Size]Cell
	if r < 0 || r >= Size {
		return out, ErrOutOfBounds
	}
	copy(out[:], b.cells[r*Size:(r+1)*Size])
	return out, nil
}

// Column returns the 9 cells of column c.
func (b *Board) Column(c int) ([Size]Cell, error) {
	var out [Size]Cell
	if c < 0 || c >= Size {
		return out, ErrOutOfBounds
	}
	for r := 0; r < Size; r++ {
		out[r] = b.cells[r*Size+c]
	}
	return out, nil
}

// Region returns the 9 cells of the 3x3 block containing (row, col).
func (b *Board) Region(row, col int) ([Size]Cell, error) {
	var out [Size]Cell
	if !inBounds(row, col) {
		return out, ErrOutOfBounds
	}
	br, bc := (row/3)*3, (col/3)*3
	i := 0
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			out[i] = b.cells[(br+dr)*Size+bc+dc]
			i++
		}
	}
	return out, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
