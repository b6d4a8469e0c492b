package grid

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/sheets/v4"
)

// recordingService counts overlapping calls and optionally blocks until released.
type recordingService struct {
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	calls       atomic.Int32
	block       chan struct{}
}

func (s *recordingService) enter() {
	n := s.inFlight.Add(1)
	for {
		m := s.maxInFlight.Load()
		if n <= m || s.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}
	s.calls.Add(1)
	if s.block != nil {
		<-s.block
	} else {
		time.Sleep(time.Millisecond)
	}
	s.inFlight.Add(-1)
}

func (s *recordingService) GetRange(_ context.Context, rng string) (*sheets.MatchedValueRange, error) {
	s.enter()
	return &sheets.MatchedValueRange{
		DataFilters: []*sheets.DataFilter{{A1Range: rng}},
		ValueRange:  &sheets.ValueRange{Range: rng},
	}, nil
}

func (s *recordingService) WriteRange(context.Context, string, [][]any) error {
	s.enter()
	return nil
}

func (s *recordingService) AppendRow(_ context.Context, rng string, _ []any) (*sheets.AppendValuesResponse, error) {
	s.enter()
	return &sheets.AppendValuesResponse{Updates: &sheets.UpdateValuesResponse{UpdatedRange: rng}}, nil
}

type HandleSuite struct {
	suite.Suite
	svc    *recordingService
	handle *Handle
}

func (s *HandleSuite) SetupTest() {
	s.svc = &recordingService{}
	s.handle = NewHandle(s.svc)
}

func (s *HandleSuite) TestForwardsCalls() {
	ctx := context.Background()

	got, err := s.handle.GetRange(ctx, "'users'!A1:B3")
	s.Require().NoError(err)
	s.Equal("'users'!A1:B3", got.DataFilters[0].A1Range)

	s.Require().NoError(s.handle.WriteRange(ctx, "'users'!A1:B1", [][]any{{"a", "b"}}))

	resp, err := s.handle.AppendRow(ctx, "'users'!A1:B1", []any{"a", "b"})
	s.Require().NoError(err)
	s.Equal("'users'!A1:B1", resp.Updates.UpdatedRange)
	s.Equal(int32(3), s.svc.calls.Load())
}

func (s *HandleSuite) TestSerializesConcurrentCalls() {
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				_, _ = s.handle.GetRange(ctx, "'s'!A1:A1")
			case 1:
				_ = s.handle.WriteRange(ctx, "'s'!A1:A1", nil)
			default:
				_, _ = s.handle.AppendRow(ctx, "'s'!A1:A1", nil)
			}
		}(i)
	}
	wg.Wait()
	s.Equal(int32(20), s.svc.calls.Load())
	s.Equal(int32(1), s.svc.maxInFlight.Load())
}

func (s *HandleSuite) TestAcquireHonoursCancellation() {
	s.svc.block = make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.handle.GetRange(context.Background(), "'s'!A1:A1")
	}()
	s.Eventually(func() bool { return s.svc.inFlight.Load() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.handle.GetRange(ctx, "'s'!A1:A1")
	s.ErrorIs(err, context.Canceled)
	s.ErrorIs(s.handle.WriteRange(ctx, "'s'!A1:A1", nil), context.Canceled)

	close(s.svc.block)
	<-done
	s.Equal(int32(1), s.svc.calls.Load())
}

func TestHandleSuite(t *testing.T) {
	suite.Run(t, new(HandleSuite))
}

func TestOptions_String(t *testing.T) {
	assert.Equal(t, "ROWS", Rows.String())
	assert.Equal(t, "COLUMNS", Columns.String())
	assert.Equal(t, "RAW", Raw.String())
	assert.Equal(t, "USER_ENTERED", UserEntered.String())
	assert.Equal(t, "FORMATTED_VALUE", FormattedValue.String())
	assert.Equal(t, "UNFORMATTED_VALUE", UnformattedValue.String())
	assert.Equal(t, "FORMULA", Formula.String())
}

func TestErrRangeNotFound(t *testing.T) {
	err := error(ErrRangeNotFound{Range: "'nope'!A1:A1"})
	require.ErrorIs(t, err, ErrRangeNotFound{})
	assert.Equal(t, "range 'nope'!A1:A1 not found", err.Error())
}
