package orm

import (
	"context"

	"go.alis.build/alog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/sheets/v4"

	"go.alis.build/sheetorm/a1"
	"go.alis.build/sheetorm/cells"
	"go.alis.build/sheetorm/grid"
	"go.alis.build/sheetorm/rows"
)

// Repository reads and writes records of type T, one per row, through a shared grid handle.
type Repository[T any] struct {
	handle *grid.Handle
	codec  rows.Codec[T]
}

// NewRepository returns a repository that maps rows with codec. The handle may be shared with other repositories.
func NewRepository[T any](handle *grid.Handle, codec rows.Codec[T]) *Repository[T] {
	return &Repository[T]{handle: handle, codec: codec}
}

// Width returns the number of columns a record occupies.
func (r *Repository[T]) Width() int {
	return r.codec.Width()
}

// span returns the range of n records starting at start.
func (r *Repository[T]) span(start a1.SheetCell, n uint32) (a1.SheetRange, error) {
	if !start.Cell.IsValid() {
		return a1.SheetRange{}, ErrInvalidArgument{Message: "start cell is not set"}
	}
	if n == 0 {
		return a1.SheetRange{}, ErrInvalidArgument{Message: "row count must be at least 1"}
	}
	width := r.codec.Width()
	if width < 1 {
		return a1.SheetRange{}, ErrInvalidArgument{Message: "record width must be at least 1"}
	}
	rng, err := start.Span(uint32(width), n)
	if err != nil {
		return a1.SheetRange{}, ErrInvalidArgument{Message: "range does not fit in the sheet", err: err}
	}
	return rng, nil
}

// FindInRange reads up to n records starting at start. The requested range is start extended by the record width
// minus one columns and n minus one rows. Fewer entities are returned when the service clips the range to the
// populated part of the sheet.
func (r *Repository[T]) FindInRange(ctx context.Context, start a1.SheetCell, n uint32) ([]Entity[T], error) {
	mvr, err := r.get(ctx, start, n)
	if err != nil {
		return nil, err
	}
	return ParsePositionally(mvr, r.codec)
}

// FindInRangeLenient is like [Repository.FindInRange] but skips rows that fail to decode, logging each one. The
// remaining entities keep their positions.
func (r *Repository[T]) FindInRangeLenient(ctx context.Context, start a1.SheetCell, n uint32) ([]Entity[T], error) {
	mvr, err := r.get(ctx, start, n)
	if err != nil {
		return nil, err
	}
	return parsePositionally(mvr, r.codec, func(pos a1.SheetCell, err error) {
		alog.Warnf(ctx, "skipping row at %s: cannot decode %s: %v", pos, cells.TypeName[T](), err)
	})
}

func (r *Repository[T]) get(ctx context.Context, start a1.SheetCell, n uint32) (*sheets.MatchedValueRange, error) {
	rng, err := r.span(start, n)
	if err != nil {
		return nil, err
	}
	mvr, err := r.handle.GetRange(ctx, rng.String())
	if err != nil {
		return nil, ErrDriver{Range: rng.String(), err: err}
	}
	return mvr, nil
}

// FindByPosition reads the record whose row starts at start. The boolean is false when the row is empty.
func (r *Repository[T]) FindByPosition(ctx context.Context, start a1.SheetCell) (Entity[T], bool, error) {
	found, err := r.FindInRange(ctx, start, 1)
	if err != nil || len(found) == 0 {
		return Entity[T]{}, false, err
	}
	return found[0], true, nil
}

// Update overwrites the row at the entity's position with its data.
func (r *Repository[T]) Update(ctx context.Context, e Entity[T]) error {
	rng, err := r.span(e.position, 1)
	if err != nil {
		return err
	}
	row, err := r.codec.Encode(e.Data)
	if err != nil {
		return ErrParsing{Range: rng.String(), err: err}
	}
	if err := r.handle.WriteRange(ctx, rng.String(), [][]any{row}); err != nil {
		return ErrDriver{Range: rng.String(), err: err}
	}
	return nil
}

// BatchUpdate writes several entities concurrently and returns the first error. Calls are still serialized by the
// handle.
func (r *Repository[T]) BatchUpdate(ctx context.Context, entities ...Entity[T]) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, e := range entities {
		g.Go(func() error {
			return r.Update(ctx, e)
		})
	}
	return g.Wait()
}

// Insert appends data to the table covering n rows from start and returns it positioned where the service wrote
// it.
func (r *Repository[T]) Insert(ctx context.Context, start a1.SheetCell, n uint32, data T) (Entity[T], error) {
	rng, err := r.span(start, n)
	if err != nil {
		return Entity[T]{}, err
	}
	row, err := r.codec.Encode(data)
	if err != nil {
		return Entity[T]{}, ErrParsing{Range: rng.String(), err: err}
	}
	resp, err := r.handle.AppendRow(ctx, rng.String(), row)
	if err != nil {
		return Entity[T]{}, ErrDriver{Range: rng.String(), err: err}
	}
	if resp == nil || resp.Updates == nil {
		return Entity[T]{}, ErrUnexpectedResponse{Response: resp, Reason: "no updates"}
	}
	if resp.Updates.UpdatedRange == "" {
		return Entity[T]{}, ErrUnexpectedResponse{Response: resp, Reason: "no updated range"}
	}
	pos, err := parseAnchor(resp.Updates.UpdatedRange)
	if err != nil {
		return Entity[T]{}, ErrParsing{Range: resp.Updates.UpdatedRange, err: err}
	}
	return Entity[T]{position: pos, Data: data}, nil
}

// Delete is not supported: removing a row would shift the position of every record below it. It always returns
// [ErrUnsupported].
func (r *Repository[T]) Delete(context.Context, Entity[T]) error {
	return ErrUnsupported{Operation: "delete"}
}
