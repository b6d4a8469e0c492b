package orm

import (
	"fmt"

	"google.golang.org/api/sheets/v4"

	"go.alis.build/sheetorm/a1"
	"go.alis.build/sheetorm/rows"
)

// ParsePositionally decodes every row of a matched range into an entity. The range must carry exactly one data
// filter with an A1 range; the i-th row is positioned i rows below that range's start. A matched range without
// values yields no entities.
func ParsePositionally[T any](mvr *sheets.MatchedValueRange, codec rows.Codec[T]) ([]Entity[T], error) {
	return parsePositionally(mvr, codec, nil)
}

// parsePositionally decodes the rows of mvr. When skip is non-nil, rows that fail to decode are reported to it
// and left out instead of failing the whole call.
func parsePositionally[T any](mvr *sheets.MatchedValueRange, codec rows.Codec[T], skip func(a1.SheetCell, error)) ([]Entity[T], error) {
	anchor, err := matchedAnchor(mvr)
	if err != nil {
		return nil, err
	}
	rng := mvr.DataFilters[0].A1Range
	var values [][]any
	if mvr.ValueRange != nil {
		values = mvr.ValueRange.Values
	}

	entities := make([]Entity[T], 0, len(values))
	for i, row := range values {
		cell, err := anchor.Cell.Delta(0, i)
		if err != nil {
			return nil, ErrParsing{Range: rng, err: err}
		}
		pos := a1.SheetCell{Sheet: anchor.Sheet, Cell: cell}
		data, err := codec.Decode(row)
		if err != nil {
			if skip != nil {
				skip(pos, err)
				continue
			}
			return nil, ErrParsing{Range: rng, err: fmt.Errorf("row at %s: %w", pos, err)}
		}
		entities = append(entities, Entity[T]{position: pos, Data: data})
	}
	return entities, nil
}

// matchedAnchor returns the start of the range echoed by the single data filter of mvr.
func matchedAnchor(mvr *sheets.MatchedValueRange) (a1.SheetCell, error) {
	if mvr == nil {
		return a1.SheetCell{}, ErrInvalidArgument{Message: "matched range is nil"}
	}
	if len(mvr.DataFilters) != 1 {
		return a1.SheetCell{}, ErrInvalidArgument{
			Message: fmt.Sprintf("matched range must carry exactly one data filter, got %d", len(mvr.DataFilters)),
		}
	}
	filter := mvr.DataFilters[0]
	if filter == nil || filter.A1Range == "" {
		return a1.SheetCell{}, ErrInvalidArgument{Message: "data filter has no A1 range"}
	}
	anchor, err := parseAnchor(filter.A1Range)
	if err != nil {
		return a1.SheetCell{}, ErrParsing{Range: filter.A1Range, err: err}
	}
	return anchor, nil
}

// parseAnchor returns the top-left cell of a sheet-qualified range. Single-cell references without a ':' are
// accepted as well, since the Sheets API reports one-cell ranges that way.
func parseAnchor(s string) (a1.SheetCell, error) {
	rng, err := a1.ParseSheetRange(s)
	if err == nil {
		return rng.Start(), nil
	}
	if cell, cellErr := a1.ParseSheetCell(s); cellErr == nil {
		return cell, nil
	}
	return a1.SheetCell{}, err
}
