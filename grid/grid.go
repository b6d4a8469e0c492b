package grid

import (
	"context"

	"golang.org/x/sync/semaphore"
	"google.golang.org/api/sheets/v4"
)

// Service is the remote grid a repository reads from and writes to. Ranges are in sheet-qualified A1 notation,
// for example 'users'!A1:B3.
type Service interface {
	// GetRange reads the range row by row. The response echoes the resolved range in its single data filter; it
	// may be clipped to the populated part of the sheet.
	GetRange(ctx context.Context, rng string) (*sheets.MatchedValueRange, error)
	// WriteRange overwrites the range with rows. Nil cells are left untouched.
	WriteRange(ctx context.Context, rng string, rows [][]any) error
	// AppendRow writes row to the first empty row of the table found at rng. The response must report the
	// written range in Updates.UpdatedRange.
	AppendRow(ctx context.Context, rng string, row []any) (*sheets.AppendValuesResponse, error)
}

// Handle shares one Service between callers. At most one call is in flight at any time.
type Handle struct {
	svc Service
	sem *semaphore.Weighted
}

var _ Service = (*Handle)(nil)

// NewHandle wraps svc.
func NewHandle(svc Service) *Handle {
	return &Handle{svc: svc, sem: semaphore.NewWeighted(1)}
}

func (h *Handle) acquire(ctx context.Context) (func(), error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { h.sem.Release(1) }, nil
}

// GetRange calls the wrapped service's GetRange under the handle's lock.
func (h *Handle) GetRange(ctx context.Context, rng string) (*sheets.MatchedValueRange, error) {
	release, err := h.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return h.svc.GetRange(ctx, rng)
}

// WriteRange calls the wrapped service's WriteRange under the handle's lock.
func (h *Handle) WriteRange(ctx context.Context, rng string, rows [][]any) error {
	release, err := h.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return h.svc.WriteRange(ctx, rng, rows)
}

// AppendRow calls the wrapped service's AppendRow under the handle's lock.
func (h *Handle) AppendRow(ctx context.Context, rng string, row []any) (*sheets.AppendValuesResponse, error) {
	release, err := h.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return h.svc.AppendRow(ctx, rng, row)
}
