package a1

import (
	"iter"
	"strings"
)

// Range is a rectangular region between two cells, inclusive on both corners.
//
// A range whose Start lies to the right of or below its End is improper. Improper ranges can be built and
// printed, but contain no cells.
type Range struct {
	Start Cell
	End   Cell
}

// NewRange returns the range between two corners.
func NewRange(start, end Cell) Range {
	return Range{Start: start, End: end}
}

// ParseRange parses a reference such as "A1:C3".
//
// Returns [ErrInvalidRange] if the reference does not contain exactly one ':' or if either side is not a valid
// cell; in the latter case the error names the malformed side.
func ParseRange(s string) (Range, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(to, ":") {
		return Range{}, ErrInvalidRange{Input: s}
	}
	start, err := ParseCell(from)
	if err != nil {
		return Range{}, ErrInvalidRange{Input: s, Side: "from", err: err}
	}
	end, err := ParseCell(to)
	if err != nil {
		return Range{}, ErrInvalidRange{Input: s, Side: "to", err: err}
	}
	return Range{Start: start, End: end}, nil
}

// String returns the canonical "From:To" form.
func (r Range) String() string {
	return r.Start.String() + ":" + r.End.String()
}

// IsProper reports whether Start is above and to the left of (or equal to) End.
func (r Range) IsProper() bool {
	return r.Start.col.rank <= r.End.col.rank && r.Start.row <= r.End.row
}

// Width returns the number of columns in the range, or 0 for an improper range.
func (r Range) Width() uint32 {
	if !r.IsProper() {
		return 0
	}
	return r.End.col.rank - r.Start.col.rank + 1
}

// Height returns the number of rows in the range, or 0 for an improper range.
func (r Range) Height() uint32 {
	if !r.IsProper() {
		return 0
	}
	return r.End.row - r.Start.row + 1
}

// Contains reports whether the cell lies inside the range.
func (r Range) Contains(c Cell) bool {
	return c.row >= r.Start.row && c.row <= r.End.row &&
		c.col.rank >= r.Start.col.rank && c.col.rank <= r.End.col.rank
}

// Cells iterates over the cells of the range in row-major order, left to right then top to bottom.
// An improper range yields nothing.
//
//	for cell := range rng.Cells() {
//		// A1, B1, C1, A2, ...
//	}
func (r Range) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if !r.IsProper() {
			return
		}
		for row := r.Start.row; row <= r.End.row; row++ {
			for col := r.Start.col.rank; col <= r.End.col.rank; col++ {
				if !yield(Cell{col: Letters{rank: col}, row: row}) {
					return
				}
				if col == maxCoord {
					break
				}
			}
			if row == maxCoord {
				return
			}
		}
	}
}

// ZeroBase translates the range so that Start becomes A1, preserving width and height.
//
//	B2:D4 -> A1:C3
//
// An improper range whose End cannot be translated collapses to A1:A1.
func (r Range) ZeroBase() Range {
	end, err := r.End.Delta(1-int(r.Start.col.rank), 1-int(r.Start.row))
	if err != nil {
		end = Cell{col: Letters{rank: 1}, row: 1}
	}
	return Range{Start: Cell{col: Letters{rank: 1}, row: 1}, End: end}
}

// Num converts the range to 0-indexed coordinates.
func (r Range) Num() NumRange {
	return NumRange{Start: r.Start.Num(), End: r.End.Num()}
}

// NumRange is a rectangular region in 0-indexed coordinates, inclusive on both corners.
type NumRange struct {
	Start NumCell
	End   NumCell
}

// Range converts the numeric range to A1 cells.
func (n NumRange) Range() Range {
	return Range{Start: n.Start.Cell(), End: n.End.Cell()}
}
