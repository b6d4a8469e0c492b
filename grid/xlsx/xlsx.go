package xlsx

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.alis.build/alog"
	"google.golang.org/api/sheets/v4"

	"go.alis.build/sheetorm/a1"
	"go.alis.build/sheetorm/grid"
)

// ErrNoPath is returned by [Service.Save] when the workbook was not opened from a file.
var ErrNoPath = errors.New("workbook has no file path; use SaveAs")

// Options configures a [Service].
type Options struct {
	// ValueRenderOption controls how read values are rendered. Defaults to [grid.FormattedValue].
	ValueRenderOption grid.ValueRenderOption
}

// Option is a functional option for [New] and [Open].
type Option func(*Options)

// WithValueRenderOption sets how read values are rendered. [grid.Formula] renders the formula of cells that have
// one and the value of the others.
func WithValueRenderOption(render grid.ValueRenderOption) Option {
	return func(o *Options) {
		o.ValueRenderOption = render
	}
}

// Service is a [grid.Service] backed by an excelize workbook.
type Service struct {
	file *excelize.File
	opts Options
}

var _ grid.Service = (*Service)(nil)

// New serves the given workbook.
func New(f *excelize.File, opts ...Option) *Service {
	s := &Service{file: f}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// Open opens the workbook at path.
func Open(path string, opts ...Option) (*Service, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return New(f, opts...), nil
}

// File returns the underlying workbook.
func (s *Service) File() *excelize.File {
	return s.file
}

// Save writes the workbook back to the file it was opened from.
func (s *Service) Save() error {
	if s.file.Path == "" {
		return ErrNoPath
	}
	return s.file.Save()
}

// SaveAs writes the workbook to path.
func (s *Service) SaveAs(path string) error {
	return s.file.SaveAs(path)
}

// Close releases the workbook.
func (s *Service) Close() error {
	return s.file.Close()
}

// GetRange reads rng, clipped to the populated extent of its sheet. The data filter of the response echoes rng in
// canonical form.
func (s *Service) GetRange(ctx context.Context, rng string) (*sheets.MatchedValueRange, error) {
	r, err := s.resolve(ctx, rng)
	if err != nil {
		return nil, err
	}
	values := make([][]any, 0)
	if r.Range.IsProper() {
		if values, err = s.readRows(r); err != nil {
			return nil, fmt.Errorf("read %s: %w", rng, err)
		}
	}

	canonical := r.String()
	alog.Debugf(ctx, "xlsx: read %d rows from %s", len(values), canonical)
	return &sheets.MatchedValueRange{
		DataFilters: []*sheets.DataFilter{{A1Range: canonical}},
		ValueRange: &sheets.ValueRange{
			MajorDimension: grid.Rows.String(),
			Range:          canonical,
			Values:         values,
		},
	}, nil
}

// WriteRange writes rows into rng starting at its top-left cell. Nil values leave the cell untouched. Rows that do
// not fit in rng are rejected.
func (s *Service) WriteRange(ctx context.Context, rng string, rows [][]any) error {
	r, err := s.resolve(ctx, rng)
	if err != nil {
		return err
	}
	if uint32(len(rows)) > r.Range.Height() {
		return fmt.Errorf("write %s: %d rows exceed the range height %d", rng, len(rows), r.Range.Height())
	}
	for i, row := range rows {
		if uint32(len(row)) > r.Range.Width() {
			return fmt.Errorf("write %s: row %d has %d cells, exceeding the range width %d", rng, i, len(row), r.Range.Width())
		}
	}
	n, err := s.writeRows(r.Sheet, r.Range.Start, rows)
	if err != nil {
		return fmt.Errorf("write %s: %w", rng, err)
	}
	alog.Debugf(ctx, "xlsx: wrote %d cells to %s", n, r)
	return nil
}

// AppendRow writes row to the first row at or below the start of rng whose cells, in the columns row covers, are
// all empty.
func (s *Service) AppendRow(ctx context.Context, rng string, row []any) (*sheets.AppendValuesResponse, error) {
	r, err := s.resolve(ctx, rng)
	if err != nil {
		return nil, err
	}
	width := max(len(row), 1)

	target := r.Range.Start
	for {
		empty, err := s.rowEmpty(r.Sheet, target, width)
		if err != nil {
			return nil, fmt.Errorf("append to %s: %w", rng, err)
		}
		if empty {
			break
		}
		if target, err = target.Delta(0, 1); err != nil {
			return nil, fmt.Errorf("append to %s: %w", rng, err)
		}
	}

	n, err := s.writeRows(r.Sheet, target, [][]any{row})
	if err != nil {
		return nil, fmt.Errorf("append to %s: %w", rng, err)
	}
	last, err := target.Delta(width-1, 0)
	if err != nil {
		return nil, fmt.Errorf("append to %s: %w", rng, err)
	}
	updated := a1.NewSheetRange(r.Sheet, a1.NewRange(target, last)).String()
	alog.Debugf(ctx, "xlsx: appended row at %s", updated)
	return &sheets.AppendValuesResponse{
		TableRange: r.String(),
		Updates: &sheets.UpdateValuesResponse{
			UpdatedRange:   updated,
			UpdatedRows:    1,
			UpdatedColumns: int64(width),
			UpdatedCells:   int64(n),
		},
	}, nil
}

// resolve parses rng and checks that its sheet exists.
func (s *Service) resolve(ctx context.Context, rng string) (a1.SheetRange, error) {
	if err := ctx.Err(); err != nil {
		return a1.SheetRange{}, err
	}
	r, err := a1.ParseSheetRange(rng)
	if err != nil {
		return a1.SheetRange{}, err
	}
	idx, err := s.file.GetSheetIndex(r.Sheet)
	if err != nil {
		return a1.SheetRange{}, err
	}
	if idx < 0 {
		return a1.SheetRange{}, grid.ErrRangeNotFound{Range: rng}
	}
	return r, nil
}

// readRows returns the cells of r that lie within the rows and columns populated in its sheet, with trailing empty
// cells and rows trimmed.
func (s *Service) readRows(r a1.SheetRange) ([][]any, error) {
	var opts []excelize.Options
	if s.opts.ValueRenderOption == grid.UnformattedValue {
		opts = append(opts, excelize.Options{RawCellValue: true})
	}
	sheetRows, err := s.file.GetRows(r.Sheet, opts...)
	if err != nil {
		return nil, err
	}
	start, end := r.Range.Num().Start, r.Range.Num().End

	values := make([][]any, 0)
	for row := uint64(start.Row); row <= uint64(end.Row) && row < uint64(len(sheetRows)); row++ {
		src := sheetRows[row]
		cells := make([]any, 0)
		for col := uint64(start.Col); col <= uint64(end.Col) && col < uint64(len(src)); col++ {
			v := src[col]
			if s.opts.ValueRenderOption == grid.Formula {
				cell := a1.NumCell{Col: uint32(col), Row: uint32(row)}.Cell().String()
				if v, err = s.formulaOr(r.Sheet, cell, v); err != nil {
					return nil, err
				}
			}
			cells = append(cells, v)
		}
		values = append(values, trimRow(cells))
	}
	return trimRows(values), nil
}

// formulaOr returns the formula of cell prefixed with '=', or value when the cell has none.
func (s *Service) formulaOr(sheet, cell, value string) (string, error) {
	formula, err := s.file.GetCellFormula(sheet, cell)
	if err != nil {
		return "", err
	}
	if formula != "" {
		return "=" + formula, nil
	}
	return value, nil
}

func (s *Service) rowEmpty(sheet string, from a1.Cell, width int) (bool, error) {
	for i := 0; i < width; i++ {
		cell, err := from.Delta(i, 0)
		if err != nil {
			return false, err
		}
		v, err := s.file.GetCellValue(sheet, cell.String())
		if err != nil {
			return false, err
		}
		if v != "" {
			return false, nil
		}
	}
	return true, nil
}

// writeRows writes the non-nil values of rows with the top-left one at origin and returns how many were written.
func (s *Service) writeRows(sheet string, origin a1.Cell, rows [][]any) (int, error) {
	n := 0
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := origin.Delta(j, i)
			if err != nil {
				return n, err
			}
			if err := s.file.SetCellValue(sheet, cell.String(), v); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

func trimRow(cells []any) []any {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}

func trimRows(rows [][]any) [][]any {
	n := len(rows)
	for n > 0 && len(rows[n-1]) == 0 {
		n--
	}
	return rows[:n]
}
