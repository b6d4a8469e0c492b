package a1

import (
	"cmp"
	"fmt"
	"strconv"
)

// NumCell is a cell position as 0-indexed numeric coordinates.
type NumCell struct {
	Col uint32
	Row uint32
}

// IsValid reports whether both coordinates lie on the grid. The largest index of either axis is 4294967294.
func (n NumCell) IsValid() bool {
	return n.Col < maxCoord && n.Row < maxCoord
}

// Cell converts the numeric coordinates to an A1 cell (NumCell{0, 0} is A1).
// It panics if n is not [NumCell.IsValid].
func (n NumCell) Cell() Cell {
	if !n.IsValid() {
		panic(fmt.Sprintf("a1: %s is past the end of the grid", n))
	}
	return Cell{col: Letters{rank: n.Col + 1}, row: n.Row + 1}
}

// String returns the coordinates as "(col, row)".
func (n NumCell) String() string {
	return fmt.Sprintf("(%d, %d)", n.Col, n.Row)
}

// Cell is a cell reference in A1 notation: a column code and a 1-indexed row.
//
// The zero value is not a valid cell; use [NewCell], [MustCell] or [ParseCell].
type Cell struct {
	col Letters
	row uint32
}

// NewCell returns the cell at the given column and 1-indexed row.
// Returns [ErrInvalidCell] if the row is zero or the column is the zero [Letters].
func NewCell(col Letters, row uint32) (Cell, error) {
	if row == 0 || !col.IsValid() {
		return Cell{}, ErrInvalidCell{Input: fmt.Sprintf("%s%d", col, row)}
	}
	return Cell{col: col, row: row}, nil
}

// MustCell builds a cell from a column code and row number, panicking if either is invalid.
// It is intended for literals known to be valid:
//
//	a1.MustCell("B", 2)
func MustCell(col string, row uint32) Cell {
	c, err := NewCell(MustLetters(col), row)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCell parses a reference such as "A1" or "aa27".
//
// The reference must be one or more letters followed by a positive row number. Returns [ErrInvalidCell] otherwise.
func ParseCell(s string) (Cell, error) {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return Cell{}, ErrInvalidCell{Input: s}
	}
	for j := i; j < len(s); j++ {
		if s[j] < '0' || s[j] > '9' {
			return Cell{}, ErrInvalidCell{Input: s}
		}
	}
	col, err := ParseLetters(s[:i])
	if err != nil {
		return Cell{}, ErrInvalidCell{Input: s, err: err}
	}
	row, err := strconv.ParseUint(s[i:], 10, 32)
	if err != nil {
		return Cell{}, ErrInvalidCell{Input: s, err: err}
	}
	if row == 0 {
		return Cell{}, ErrInvalidCell{Input: s, err: fmt.Errorf("row numbers start at 1")}
	}
	return Cell{col: col, row: uint32(row)}, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Col returns the column code of the cell.
func (c Cell) Col() Letters {
	return c.col
}

// Row returns the 1-indexed row of the cell.
func (c Cell) Row() uint32 {
	return c.row
}

// IsValid reports whether c is a cell, i.e. not the zero value.
func (c Cell) IsValid() bool {
	return c.row > 0 && c.col.IsValid()
}

// String returns the A1 form of the cell, e.g. "AA27".
func (c Cell) String() string {
	return c.col.String() + strconv.FormatUint(uint64(c.row), 10)
}

// Num converts the cell to 0-indexed coordinates (A1 is NumCell{0, 0}).
func (c Cell) Num() NumCell {
	return NumCell{Col: c.col.rank - 1, Row: c.row - 1}
}

// Delta shifts the cell by a signed number of columns and rows.
// Returns [ErrOutOfBounds] if the result would lie before column A or row 1.
func (c Cell) Delta(cols, rows int) (Cell, error) {
	col := int64(c.col.rank) + int64(cols)
	row := int64(c.row) + int64(rows)
	if col < 1 || row < 1 || col > maxCoord || row > maxCoord {
		return Cell{}, ErrOutOfBounds{Cell: c.String(), Cols: cols, Rows: rows}
	}
	return Cell{col: Letters{rank: uint32(col)}, row: uint32(row)}, nil
}

const maxCoord = 1<<32 - 1

// Add combines two cells component-wise: column ranks are summed and row numbers are summed.
//
//	A1 + B2 = C3
//	Z26 + A1 = AA27
//
// It panics if either sum does not fit in a uint32.
func (c Cell) Add(other Cell) Cell {
	if other.row > maxCoord-c.row {
		panic(fmt.Sprintf("a1: %s + %s is past the last row", c, other))
	}
	return Cell{
		col: c.col.Add(other.col.rank),
		row: c.row + other.row,
	}
}

// Compare orders cells by row first and column second. It returns -1, 0 or +1.
//
//	A1 < B2
//	A3 > B2
func (c Cell) Compare(other Cell) int {
	if r := cmp.Compare(c.row, other.row); r != 0 {
		return r
	}
	return c.col.Compare(other.col)
}

// Less reports whether c sorts before other.
func (c Cell) Less(other Cell) bool {
	return c.Compare(other) < 0
}
