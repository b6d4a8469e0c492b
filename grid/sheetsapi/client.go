package sheetsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.alis.build/alog"
	"go.alis.build/utils/retry"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"go.alis.build/sheetorm/grid"
)

// Client is a [grid.Service] backed by one Google spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	opts          Options
}

var _ grid.Service = (*Client)(nil)

// New returns a client for the spreadsheet with the given ID using an existing Sheets service.
func New(svc *sheets.Service, spreadsheetID string, opts ...Option) *Client {
	c := &Client{svc: svc, spreadsheetID: spreadsheetID}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// NewClient creates a Sheets service from clientOpts and returns a client for the spreadsheet with the given ID.
func NewClient(ctx context.Context, spreadsheetID string, clientOpts []option.ClientOption, opts ...Option) (*Client, error) {
	svc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return New(svc, spreadsheetID, opts...), nil
}

// SpreadsheetID returns the ID of the spreadsheet the client works on.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// GetRange reads rng through a single A1 data filter. An empty response is reported as [grid.ErrRangeNotFound].
func (c *Client) GetRange(ctx context.Context, rng string) (*sheets.MatchedValueRange, error) {
	req := &sheets.BatchGetValuesByDataFilterRequest{
		DataFilters:       []*sheets.DataFilter{{A1Range: rng}},
		MajorDimension:    grid.Rows.String(),
		ValueRenderOption: c.opts.ValueRenderOption.String(),
	}
	resp, err := call(c, func() (*sheets.BatchGetValuesByDataFilterResponse, error) {
		return c.svc.Spreadsheets.Values.BatchGetByDataFilter(c.spreadsheetID, req).Context(ctx).Do()
	})
	if err != nil {
		return nil, fmt.Errorf("get range %s: %w", rng, err)
	}
	if len(resp.ValueRanges) == 0 || resp.ValueRanges[0] == nil {
		return nil, grid.ErrRangeNotFound{Range: rng}
	}
	matched := resp.ValueRanges[0]
	if matched.ValueRange != nil {
		alog.Debugf(ctx, "sheetsapi: read %d rows from %s", len(matched.ValueRange.Values), matched.ValueRange.Range)
	}
	return matched, nil
}

// WriteRange overwrites rng with rows.
func (c *Client) WriteRange(ctx context.Context, rng string, rows [][]any) error {
	vr := &sheets.ValueRange{
		MajorDimension: grid.Rows.String(),
		Range:          rng,
		Values:         rows,
	}
	resp, err := call(c, func() (*sheets.UpdateValuesResponse, error) {
		return c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
			ValueInputOption(c.opts.InputMode.String()).
			Context(ctx).
			Do()
	})
	if err != nil {
		return fmt.Errorf("write range %s: %w", rng, err)
	}
	alog.Debugf(ctx, "sheetsapi: wrote %d cells to %s", resp.UpdatedCells, resp.UpdatedRange)
	return nil
}

// AppendRow appends row to the table found at rng.
func (c *Client) AppendRow(ctx context.Context, rng string, row []any) (*sheets.AppendValuesResponse, error) {
	vr := &sheets.ValueRange{
		MajorDimension: grid.Rows.String(),
		Range:          rng,
		Values:         [][]any{row},
	}
	resp, err := call(c, func() (*sheets.AppendValuesResponse, error) {
		return c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
			ValueInputOption(c.opts.InputMode.String()).
			Context(ctx).
			Do()
	})
	if err != nil {
		return nil, fmt.Errorf("append row to %s: %w", rng, err)
	}
	if resp.Updates != nil {
		alog.Debugf(ctx, "sheetsapi: appended row at %s", resp.Updates.UpdatedRange)
	}
	return resp, nil
}

// call runs f, retrying transient API failures when the client is configured to.
func call[R any](c *Client, f func() (R, error)) (R, error) {
	if c.opts.Attempts <= 1 {
		return f()
	}
	return retry.Retry(c.opts.Attempts, c.opts.BaseSleep, func() (R, error) {
		res, err := f()
		if err != nil && !isTransient(err) {
			return res, retry.NewNonRetryableError(err)
		}
		return res, err
	})
}

func isTransient(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}
