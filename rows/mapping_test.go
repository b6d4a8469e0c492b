package rows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.alis.build/sheetorm/cells"
)

type user struct {
	Name string
	Age  *int
}

var userRow = NewMapping(
	Required("name", cells.String(), func(u *user) *string { return &u.Name }),
	Optional("age", cells.Int[int](), func(u *user) **int { return &u.Age }),
)

type account struct {
	ID      uint32
	Balance float64
	Active  bool
	Opened  time.Time
}

var accountRow = NewMapping(
	Required("id", cells.Uint[uint32](), func(a *account) *uint32 { return &a.ID }),
	Skip[account]("notes"),
	Required("balance", cells.Float[float64](), func(a *account) *float64 { return &a.Balance }),
	Required("active", cells.Bool(), func(a *account) *bool { return &a.Active }),
	Required("opened", cells.SerialTime(), func(a *account) *time.Time { return &a.Opened }),
)

func intPtr(v int) *int { return &v }

func TestMapping_Decode(t *testing.T) {
	tests := []struct {
		name string
		row  RawRow
		want user
	}{
		{name: "Full", row: RawRow{"Alice", "30"}, want: user{Name: "Alice", Age: intPtr(30)}},
		{name: "NumericCell", row: RawRow{"Bob", float64(41)}, want: user{Name: "Bob", Age: intPtr(41)}},
		{name: "ShortRow", row: RawRow{"Carol"}, want: user{Name: "Carol"}},
		{name: "EmptyOptional", row: RawRow{"Dan", ""}, want: user{Name: "Dan"}},
		{name: "MalformedOptional", row: RawRow{"Eve", "old"}, want: user{Name: "Eve"}},
		{name: "NilOptional", row: RawRow{"Fay", nil}, want: user{Name: "Fay"}},
		{name: "ExtraCellsIgnored", row: RawRow{"Gus", "7", "extra", true}, want: user{Name: "Gus", Age: intPtr(7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := userRow.Decode(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapping_DecodeRequiredMissing(t *testing.T) {
	_, err := userRow.Decode(RawRow{})

	var missing ErrFieldMissing
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)
	assert.Equal(t, "string", missing.Type)
	assert.Equal(t, RawRow{}, missing.Row)
	assert.ErrorContains(t, err, "required field name (string) is missing")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMapping_DecodeRequiredMalformed(t *testing.T) {
	row := RawRow{"x", "", "lots", "TRUE", "45000"}
	_, err := accountRow.Decode(row)

	var decodeErr ErrCellDecode
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "id", decodeErr.Field)
	assert.Equal(t, "uint32", decodeErr.Type)
	assert.Equal(t, "x", decodeErr.Input)
	assert.Equal(t, row, decodeErr.Row)
	assert.ErrorIs(t, err, cells.ErrParse{})
}

func TestMapping_DecodeNotText(t *testing.T) {
	_, err := userRow.Decode(RawRow{map[string]any{"a": 1}})
	assert.ErrorIs(t, err, ErrCellDecode{})
	assert.ErrorIs(t, err, ErrNotText)
}

func TestMapping_DecodeRawValues(t *testing.T) {
	got, err := accountRow.Decode(RawRow{float64(12), "ignored", 99.5, true, float64(45000.5)})
	require.NoError(t, err)
	assert.Equal(t, account{
		ID:      12,
		Balance: 99.5,
		Active:  true,
		Opened:  time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC),
	}, got)
}

func TestMapping_Encode(t *testing.T) {
	row, err := userRow.Encode(user{Name: "Alice", Age: intPtr(30)})
	require.NoError(t, err)
	assert.Equal(t, RawRow{"Alice", "30"}, row)

	row, err = userRow.Encode(user{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, RawRow{"Bob", ""}, row)

	row, err = accountRow.Encode(account{ID: 3, Balance: 1.25, Opened: time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, RawRow{"3", nil, "1.25", "FALSE", "45000"}, row)
	assert.Len(t, row, accountRow.Width())
}

func TestMapping_EncodeDecodeOnlyPanics(t *testing.T) {
	m := NewMapping(
		Required("name", cells.DecodeOnly(func(raw string) (string, error) { return raw, nil }),
			func(u *user) *string { return &u.Name }),
	)
	_, err := m.Decode(RawRow{"Alice"})
	require.NoError(t, err)
	assert.Panics(t, func() { _, _ = m.Encode(user{Name: "Alice"}) })
}

func TestMapping_WidthAndNames(t *testing.T) {
	assert.Equal(t, 2, userRow.Width())
	assert.Equal(t, []string{"id", "notes", "balance", "active", "opened"}, accountRow.Names())
}
