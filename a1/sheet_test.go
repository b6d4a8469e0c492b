package a1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetRange_String(t *testing.T) {
	rng := NewSheetRange("My Sheet", NewRange(MustCell("A", 1), MustCell("C", 3)))
	assert.Equal(t, "'My Sheet'!A1:C3", rng.String())

	rng = NewSheetRange("users", NewRange(MustCell("A", 1), MustCell("B", 3)))
	assert.Equal(t, "'users'!A1:B3", rng.String())

	rng = NewSheetRange("Bob's", NewRange(MustCell("A", 1), MustCell("A", 1)))
	assert.Equal(t, "'Bob''s'!A1:A1", rng.String())
}

func TestParseSheetRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSheet string
		wantRange string
	}{
		{name: "Bare", input: "users!A1:B3", wantSheet: "users", wantRange: "A1:B3"},
		{name: "Quoted", input: "'My Sheet'!A1:C3", wantSheet: "My Sheet", wantRange: "A1:C3"},
		{name: "EscapedQuote", input: "'Bob''s'!B2:C4", wantSheet: "Bob's", wantRange: "B2:C4"},
		{name: "BangInName", input: "'Hey!'!A1:A2", wantSheet: "Hey!", wantRange: "A1:A2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSheetRange(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSheet, got.Sheet)
			assert.Equal(t, tt.wantRange, got.Range.String())

			again, err := ParseSheetRange(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestParseSheetRange_Errors(t *testing.T) {
	_, err := ParseSheetRange("A1:B3")
	assert.ErrorIs(t, err, ErrInvalidSheetRange{})

	_, err = ParseSheetRange("users!A1")
	assert.ErrorIs(t, err, ErrInvalidSheetRange{})
	assert.ErrorIs(t, err, ErrInvalidRange{})

	_, err = ParseSheetRange("users!A1:B")
	assert.ErrorIs(t, err, ErrInvalidCell{})
}

func TestSheetCell(t *testing.T) {
	c := NewSheetCell("users", "A", 1)
	assert.Equal(t, "users!A1", c.String())
	assert.Equal(t, "'My Sheet'!B2", NewSheetCell("My Sheet", "B", 2).String())

	parsed, err := ParseSheetCell("'My Sheet'!B2")
	require.NoError(t, err)
	assert.Equal(t, NewSheetCell("My Sheet", "B", 2), parsed)

	_, err = ParseSheetCell("B2")
	assert.ErrorIs(t, err, ErrInvalidSheetRange{})
	_, err = ParseSheetCell("users!B0")
	assert.ErrorIs(t, err, ErrInvalidCell{})
}

func TestSheetCell_Span(t *testing.T) {
	rng, err := NewSheetCell("users", "A", 1).Span(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "'users'!A1:B3", rng.String())
	assert.Equal(t, NewSheetCell("users", "A", 1), rng.Start())
	assert.Equal(t, NewSheetCell("users", "B", 3), rng.End())

	rng, err = NewSheetCell("data", "Z", 10).Span(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "'data'!Z10:Z10", rng.String())

	_, err = NewSheetCell("users", "A", 1).Span(0, 3)
	assert.Error(t, err)
}
