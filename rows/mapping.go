package rows

import (
	"fmt"
	"strconv"

	"go.alis.build/sheetorm/cells"
)

// RawRow is one row of loosely typed cell values, as returned by the Sheets API: strings, float64s, bools or nil.
type RawRow = []any

// Codec converts a raw row to and from a record of type T.
type Codec[T any] interface {
	// Decode builds a record from the row. Cells past Width are ignored.
	Decode(row RawRow) (T, error)
	// Encode renders the record as a row of exactly Width cells, in the order Decode reads them.
	Encode(v T) (RawRow, error)
	// Width is the number of contiguous columns a record occupies.
	Width() int
}

// Field binds one column of a row to part of a record of type T. Fields are created with [Required], [Optional]
// and [Skip].
type Field[T any] interface {
	// Name identifies the field in errors.
	Name() string
	decode(row RawRow, index int, dst *T) error
	encode(src *T) any
}

// Mapping is a [Codec] assembled from an ordered list of fields.
type Mapping[T any] struct {
	fields []Field[T]
}

var _ Codec[struct{}] = (*Mapping[struct{}])(nil)

// NewMapping returns a mapping whose i-th field reads and writes the i-th column.
func NewMapping[T any](fields ...Field[T]) *Mapping[T] {
	return &Mapping[T]{fields: fields}
}

// Width returns the number of fields.
func (m *Mapping[T]) Width() int {
	return len(m.fields)
}

// Names returns the field names in column order.
func (m *Mapping[T]) Names() []string {
	names := make([]string, len(m.fields))
	for i, f := range m.fields {
		names[i] = f.Name()
	}
	return names
}

// Decode builds a record from the row, stopping at the first field that fails.
func (m *Mapping[T]) Decode(row RawRow) (T, error) {
	var v T
	for i, f := range m.fields {
		if err := f.decode(row, i, &v); err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}

// Encode renders the record as a row of Width cells. Skipped columns are nil, which leaves the cell untouched on
// write.
func (m *Mapping[T]) Encode(v T) (RawRow, error) {
	row := make(RawRow, len(m.fields))
	for i, f := range m.fields {
		row[i] = f.encode(&v)
	}
	return row, nil
}

type requiredField[T, V any] struct {
	name  string
	codec cells.Codec[V]
	ref   func(*T) *V
}

// Required declares a column that must be present and must parse. ref returns the address of the field inside
// the record.
func Required[T, V any](name string, codec cells.Codec[V], ref func(*T) *V) Field[T] {
	return requiredField[T, V]{name: name, codec: codec, ref: ref}
}

func (f requiredField[T, V]) Name() string { return f.name }

func (f requiredField[T, V]) decode(row RawRow, index int, dst *T) error {
	if index >= len(row) {
		return ErrFieldMissing{Field: f.name, Type: cells.TypeName[V](), Row: row}
	}
	text, err := CellText(row[index])
	if err != nil {
		return ErrCellDecode{Field: f.name, Type: cells.TypeName[V](), Input: fmt.Sprint(row[index]), Row: row, err: err}
	}
	v, err := f.codec.Decode(text)
	if err != nil {
		return ErrCellDecode{Field: f.name, Type: cells.TypeName[V](), Input: text, Row: row, err: err}
	}
	*f.ref(dst) = v
	return nil
}

func (f requiredField[T, V]) encode(src *T) any {
	return f.codec.Encode(*f.ref(src))
}

type optionalField[T, V any] struct {
	name  string
	codec cells.Codec[*V]
	ref   func(*T) **V
}

// Optional declares a column that may be absent, empty or malformed; in each of those cases the field is set to
// nil. Encoding a nil field produces an empty cell.
func Optional[T, V any](name string, codec cells.Codec[V], ref func(*T) **V) Field[T] {
	return optionalField[T, V]{name: name, codec: cells.Optional(codec), ref: ref}
}

func (f optionalField[T, V]) Name() string { return f.name }

func (f optionalField[T, V]) decode(row RawRow, index int, dst *T) error {
	*f.ref(dst) = nil
	if index >= len(row) {
		return nil
	}
	text, err := CellText(row[index])
	if err != nil {
		return nil
	}
	// cells.Optional never fails.
	*f.ref(dst), _ = f.codec.Decode(text)
	return nil
}

func (f optionalField[T, V]) encode(src *T) any {
	return f.codec.Encode(*f.ref(src))
}

type skipField[T any] struct {
	name string
}

// Skip declares a column that is part of the record's width but not mapped to any field.
func Skip[T any](name string) Field[T] {
	return skipField[T]{name: name}
}

func (f skipField[T]) Name() string { return f.name }

func (skipField[T]) decode(RawRow, int, *T) error { return nil }

func (skipField[T]) encode(*T) any { return nil }

// CellText returns the textual form of a raw cell value: strings as is, numbers and booleans formatted, nil as
// the empty string. Other values yield [ErrNotText].
func CellText(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case bool:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	default:
		return "", ErrNotText
	}
}
