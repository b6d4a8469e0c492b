package cells

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/protobuf/types/known/timestamppb"

	"go.alis.build/sheetorm/a1"
)

var errOutOfRange = errors.New("value out of range")

// Int returns a codec for signed integer types. Surrounding whitespace is ignored.
func Int[T ~int | ~int8 | ~int16 | ~int32 | ~int64]() Codec[T] {
	return Func(
		func(raw string) (T, error) {
			v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				return 0, err
			}
			if int64(T(v)) != v {
				return 0, errOutOfRange
			}
			return T(v), nil
		},
		func(v T) string { return strconv.FormatInt(int64(v), 10) },
	)
}

// Uint returns a codec for unsigned integer types. Surrounding whitespace is ignored.
func Uint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64]() Codec[T] {
	return Func(
		func(raw string) (T, error) {
			v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				return 0, err
			}
			if uint64(T(v)) != v {
				return 0, errOutOfRange
			}
			return T(v), nil
		},
		func(v T) string { return strconv.FormatUint(uint64(v), 10) },
	)
}

// Float returns a codec for floating point types. Surrounding whitespace is ignored.
func Float[T ~float32 | ~float64]() Codec[T] {
	return Func(
		func(raw string) (T, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return 0, err
			}
			return T(v), nil
		},
		func(v T) string { return strconv.FormatFloat(float64(v), 'f', -1, 64) },
	)
}

// Bool returns a codec accepting the spellings understood by [strconv.ParseBool] and encoding as TRUE or FALSE.
func Bool() Codec[bool] {
	return Func(
		func(raw string) (bool, error) { return strconv.ParseBool(strings.TrimSpace(raw)) },
		func(v bool) string {
			if v {
				return "TRUE"
			}
			return "FALSE"
		},
	)
}

// String returns the identity codec. It never fails, so an empty cell decodes to "".
func String() Codec[string] {
	return Func(
		func(raw string) (string, error) { return raw, nil },
		func(v string) string { return v },
	)
}

// Letters returns a codec for column labels such as "AB".
func Letters() Codec[a1.Letters] {
	return Func(
		func(raw string) (a1.Letters, error) { return a1.ParseLetters(strings.TrimSpace(raw)) },
		a1.Letters.String,
	)
}

// Time returns a codec parsing and formatting with the given layout. An empty layout means [time.RFC3339].
func Time(layout string) Codec[time.Time] {
	if layout == "" {
		layout = time.RFC3339
	}
	return Func(
		func(raw string) (time.Time, error) { return time.Parse(layout, strings.TrimSpace(raw)) },
		func(v time.Time) string { return v.Format(layout) },
	)
}

// SerialTime returns a codec for spreadsheet date serial numbers, as produced by the UNFORMATTED_VALUE render
// option. Times are interpreted in UTC.
func SerialTime() Codec[time.Time] {
	return Func(
		func(raw string) (time.Time, error) {
			f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return time.Time{}, err
			}
			return SerialToTime(f)
		},
		func(v time.Time) string { return strconv.FormatFloat(TimeToSerial(v), 'f', -1, 64) },
	)
}

// Date returns a codec for calendar dates. Cells may hold an ISO date (2006-01-02) or a date serial number; the
// fractional part of a serial is discarded. Dates are encoded in ISO form.
func Date() Codec[*date.Date] {
	return Func(
		func(raw string) (*date.Date, error) {
			raw = strings.TrimSpace(raw)
			t, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				f, serialErr := strconv.ParseFloat(raw, 64)
				if serialErr != nil {
					return nil, err
				}
				if t, err = SerialToTime(f); err != nil {
					return nil, err
				}
			}
			return &date.Date{Year: int32(t.Year()), Month: int32(t.Month()), Day: int32(t.Day())}, nil
		},
		func(v *date.Date) string {
			if v == nil {
				return ""
			}
			return time.Date(int(v.GetYear()), time.Month(v.GetMonth()), int(v.GetDay()), 0, 0, 0, 0, time.UTC).
				Format(time.DateOnly)
		},
	)
}

// Timestamp returns a codec for RFC 3339 timestamps.
func Timestamp() Codec[*timestamppb.Timestamp] {
	return Func(
		func(raw string) (*timestamppb.Timestamp, error) {
			t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
			return timestamppb.New(t), nil
		},
		func(v *timestamppb.Timestamp) string {
			if v == nil {
				return ""
			}
			return v.AsTime().Format(time.RFC3339Nano)
		},
	)
}
