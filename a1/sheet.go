package a1

import (
	"fmt"
	"strings"
)

// SheetCell is a cell qualified by the name of the sheet it belongs to.
type SheetCell struct {
	Sheet string
	Cell  Cell
}

// NewSheetCell builds a sheet-qualified cell from primitives, panicking on an invalid column or a zero row.
// It is intended for literals known to be valid:
//
//	a1.NewSheetCell("users", "A", 1) // users!A1
func NewSheetCell(sheet, col string, row uint32) SheetCell {
	return SheetCell{Sheet: sheet, Cell: MustCell(col, row)}
}

// ParseSheetCell parses a reference such as "users!A1" or "'My Sheet'!B2".
func ParseSheetCell(s string) (SheetCell, error) {
	sheet, ref, err := splitSheet(s)
	if err != nil {
		return SheetCell{}, err
	}
	cell, err := ParseCell(ref)
	if err != nil {
		return SheetCell{}, ErrInvalidSheetRange{Input: s, err: err}
	}
	return SheetCell{Sheet: sheet, Cell: cell}, nil
}

// String returns "Sheet!A1". The sheet name is quoted only when it contains characters other than letters, digits
// and underscores.
func (c SheetCell) String() string {
	name := c.Sheet
	if needsQuoting(name) {
		name = quoteSheet(name)
	}
	return name + "!" + c.Cell.String()
}

// RangeTo returns the range on the same sheet from this cell to end.
func (c SheetCell) RangeTo(end Cell) SheetRange {
	return SheetRange{Sheet: c.Sheet, Range: Range{Start: c.Cell, End: end}}
}

// Span returns the range that starts at this cell and covers cols columns and rows rows.
// Both must be at least 1.
//
//	a1.NewSheetCell("users", "A", 1).Span(2, 3) // 'users'!A1:B3
func (c SheetCell) Span(cols, rows uint32) (SheetRange, error) {
	if cols == 0 || rows == 0 {
		return SheetRange{}, fmt.Errorf("span of %d columns and %d rows is empty", cols, rows)
	}
	end, err := c.Cell.Delta(int(cols)-1, int(rows)-1)
	if err != nil {
		return SheetRange{}, err
	}
	return c.RangeTo(end), nil
}

// SheetRange is a range qualified by the name of the sheet it belongs to.
type SheetRange struct {
	Sheet string
	Range Range
}

// NewSheetRange returns the range on the named sheet.
func NewSheetRange(sheet string, rng Range) SheetRange {
	return SheetRange{Sheet: sheet, Range: rng}
}

// ParseSheetRange parses a reference such as "'My Sheet'!A1:C3".
//
// Surrounding single quotes are stripped from the sheet name. Returns [ErrInvalidSheetRange] if the '!' separator
// is missing or the range part is invalid.
func ParseSheetRange(s string) (SheetRange, error) {
	sheet, ref, err := splitSheet(s)
	if err != nil {
		return SheetRange{}, err
	}
	rng, err := ParseRange(ref)
	if err != nil {
		return SheetRange{}, ErrInvalidSheetRange{Input: s, err: err}
	}
	return SheetRange{Sheet: sheet, Range: rng}, nil
}

// String returns "'Sheet'!A1:C3". The sheet name is always quoted.
func (r SheetRange) String() string {
	return quoteSheet(r.Sheet) + "!" + r.Range.String()
}

// Start returns the top-left corner as a sheet-qualified cell.
func (r SheetRange) Start() SheetCell {
	return SheetCell{Sheet: r.Sheet, Cell: r.Range.Start}
}

// End returns the bottom-right corner as a sheet-qualified cell.
func (r SheetRange) End() SheetCell {
	return SheetCell{Sheet: r.Sheet, Cell: r.Range.End}
}

// splitSheet separates the sheet name from the reference at the last '!'.
func splitSheet(s string) (string, string, error) {
	i := strings.LastIndexByte(s, '!')
	if i < 0 {
		return "", "", ErrInvalidSheetRange{Input: s}
	}
	return unquoteSheet(s[:i]), s[i+1:], nil
}

func needsQuoting(name string) bool {
	if name == "" {
		return true
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isLetter(c) && (c < '0' || c > '9') && c != '_' {
			return true
		}
	}
	return false
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func unquoteSheet(name string) string {
	if len(name) >= 2 && name[0] == '\'' && name[len(name)-1] == '\'' {
		return strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}
	return name
}
