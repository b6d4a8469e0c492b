package sheetsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"go.alis.build/sheetorm/grid"
)

const testSpreadsheet = "sheet-123"

// fakeSheets serves the three Sheets endpoints the client uses.
type fakeSheets struct {
	t        *testing.T
	failures atomic.Int32 // leading requests answered with status
	status   int
	requests atomic.Int32

	mu        sync.Mutex
	lastQuery string
	lastBody  map[string]any
}

func (f *fakeSheets) last() (string, map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery, f.lastBody
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	if f.failures.Load() > 0 {
		f.failures.Add(-1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = fmt.Fprintf(w, `{"error":{"code":%d,"message":"try later"}}`, f.status)
		return
	}
	var body map[string]any
	assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
	f.mu.Lock()
	f.lastQuery, f.lastBody = r.URL.RawQuery, body
	f.mu.Unlock()

	prefix := "/v4/spreadsheets/" + testSpreadsheet + "/values"
	assert.True(f.t, strings.HasPrefix(r.URL.Path, prefix), r.URL.Path)
	path := strings.TrimPrefix(r.URL.Path, prefix)

	w.Header().Set("Content-Type", "application/json")
	switch {
	case path == ":batchGetByDataFilter":
		filters := body["dataFilters"].([]any)
		a1 := filters[0].(map[string]any)["a1Range"].(string)
		if strings.HasPrefix(a1, "'missing'") {
			_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-123"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"spreadsheetId": testSpreadsheet,
			"valueRanges": []any{map[string]any{
				"dataFilters": []any{map[string]any{"a1Range": a1}},
				"valueRange": map[string]any{
					"range":          "users!A1:B3",
					"majorDimension": "ROWS",
					"values":         [][]any{{"Alice", "30"}, {"Bob"}},
				},
			}},
		})
	case strings.HasSuffix(path, ":append"):
		_ = json.NewEncoder(w).Encode(map[string]any{
			"spreadsheetId": testSpreadsheet,
			"updates":       map[string]any{"updatedRange": "users!A4:B4", "updatedRows": 1},
		})
	case r.Method == http.MethodPut:
		_ = json.NewEncoder(w).Encode(map[string]any{
			"spreadsheetId": testSpreadsheet,
			"updatedRange":  "users!A2:B2",
			"updatedCells":  2,
		})
	default:
		f.t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestClient(t *testing.T, fake *fakeSheets, opts ...Option) *Client {
	t.Helper()
	fake.t = t
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	c, err := NewClient(context.Background(), testSpreadsheet,
		[]option.ClientOption{option.WithEndpoint(srv.URL + "/"), option.WithHTTPClient(srv.Client())},
		opts...)
	require.NoError(t, err)
	return c
}

func TestClient_GetRange(t *testing.T) {
	fake := &fakeSheets{}
	c := newTestClient(t, fake)

	got, err := c.GetRange(context.Background(), "'users'!A1:B3")
	require.NoError(t, err)
	require.Len(t, got.DataFilters, 1)
	assert.Equal(t, "'users'!A1:B3", got.DataFilters[0].A1Range)
	assert.Equal(t, [][]any{{"Alice", "30"}, {"Bob"}}, got.ValueRange.Values)

	_, body := fake.last()
	assert.Equal(t, "ROWS", body["majorDimension"])
	assert.Equal(t, "FORMATTED_VALUE", body["valueRenderOption"])
}

func TestClient_GetRangeNotFound(t *testing.T) {
	c := newTestClient(t, &fakeSheets{})
	_, err := c.GetRange(context.Background(), "'missing'!A1:B3")
	assert.ErrorIs(t, err, grid.ErrRangeNotFound{})
}

func TestClient_WriteRange(t *testing.T) {
	fake := &fakeSheets{}
	c := newTestClient(t, fake, WithInputMode(grid.UserEntered))

	err := c.WriteRange(context.Background(), "'users'!A2:B2", [][]any{{"Bob", "41"}})
	require.NoError(t, err)
	query, body := fake.last()
	assert.Contains(t, query, "valueInputOption=USER_ENTERED")
	assert.Equal(t, []any{[]any{"Bob", "41"}}, body["values"])
}

func TestClient_AppendRow(t *testing.T) {
	fake := &fakeSheets{}
	c := newTestClient(t, fake)

	resp, err := c.AppendRow(context.Background(), "'users'!A1:B1", []any{"Carol", "22"})
	require.NoError(t, err)
	require.NotNil(t, resp.Updates)
	assert.Equal(t, "users!A4:B4", resp.Updates.UpdatedRange)
	query, body := fake.last()
	assert.Contains(t, query, "valueInputOption=RAW")
	assert.Equal(t, "ROWS", body["majorDimension"])
}

func TestClient_RetriesTransientErrors(t *testing.T) {
	fake := &fakeSheets{status: http.StatusServiceUnavailable}
	fake.failures.Store(2)
	c := newTestClient(t, fake, WithRetry(3, time.Millisecond))

	_, err := c.GetRange(context.Background(), "'users'!A1:B3")
	require.NoError(t, err)
	assert.Equal(t, int32(3), fake.requests.Load())
}

func TestClient_RetriesWithDefaultBackOff(t *testing.T) {
	fake := &fakeSheets{status: http.StatusServiceUnavailable}
	fake.failures.Store(1)
	c := newTestClient(t, fake, WithRetry(3, 0))

	_, err := c.GetRange(context.Background(), "'users'!A1:B3")
	require.NoError(t, err)
	assert.Equal(t, int32(2), fake.requests.Load())
}

func TestWithRetry_Bounds(t *testing.T) {
	tests := []struct {
		name         string
		attempts     int
		baseSleep    time.Duration
		wantAttempts int
		wantSleep    time.Duration
	}{
		{name: "Unchanged", attempts: 3, baseSleep: time.Second, wantAttempts: 3, wantSleep: time.Second},
		{name: "ZeroSleep", attempts: 3, baseSleep: 0, wantAttempts: 3, wantSleep: DefaultBaseSleep},
		{name: "NegativeSleep", attempts: 3, baseSleep: -time.Second, wantAttempts: 3, wantSleep: DefaultBaseSleep},
		{name: "TooManyAttempts", attempts: 1000, baseSleep: time.Millisecond, wantAttempts: MaxAttempts, wantSleep: time.Millisecond},
		{name: "LongSleep", attempts: 2, baseSleep: 24 * time.Hour, wantAttempts: 2, wantSleep: MaxBaseSleep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Options
			WithRetry(tt.attempts, tt.baseSleep)(&o)
			assert.Equal(t, tt.wantAttempts, o.Attempts)
			assert.Equal(t, tt.wantSleep, o.BaseSleep)
		})
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	fake := &fakeSheets{status: http.StatusBadRequest}
	fake.failures.Store(5)
	c := newTestClient(t, fake, WithRetry(3, time.Millisecond))

	_, err := c.GetRange(context.Background(), "'users'!A1:B3")
	var apiErr *googleapi.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, int32(1), fake.requests.Load())
}

func TestNew_UsesExistingService(t *testing.T) {
	svc := &sheets.Service{}
	c := New(svc, "abc", WithValueRenderOption(grid.UnformattedValue))
	assert.Equal(t, "abc", c.SpreadsheetID())
	assert.Equal(t, grid.UnformattedValue, c.opts.ValueRenderOption)
	assert.Equal(t, grid.Raw, c.opts.InputMode)
}
