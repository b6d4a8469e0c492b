package cells

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Codec converts the raw text of one cell to and from a value of type T.
type Codec[T any] interface {
	// Decode parses the raw cell text. Failures are returned as [ErrParse].
	Decode(raw string) (T, error)
	// Encode renders the value as cell text. Codecs that do not support serialization panic.
	Encode(v T) string
}

// ErrParse is returned when the raw text of a cell cannot be converted to the target type.
// It maps to gRPC status code [codes.InvalidArgument].
type ErrParse struct {
	// Input is the offending raw cell text.
	Input string
	// Type is the name of the target type.
	Type string
	// err is the underlying conversion error, if any.
	err error
}

// Error returns a human-readable description of the parse failure.
func (e ErrParse) Error() string {
	if e.err == nil {
		return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Type)
	}
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, e.Type, e.err)
}

// Is reports whether target matches this error type.
func (e ErrParse) Is(target error) bool {
	var errParse ErrParse
	return errors.As(target, &errParse)
}

// Unwrap returns the underlying conversion error.
func (e ErrParse) Unwrap() error {
	return e.err
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e ErrParse) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// ErrEncodingUnsupported is the panic value raised when Encode is called on a codec that declined serialization.
// It signals a programming error rather than bad data.
type ErrEncodingUnsupported struct {
	// Type is the name of the type whose codec declined serialization.
	Type string
}

// Error returns a human-readable description of the misuse.
func (e ErrEncodingUnsupported) Error() string {
	return fmt.Sprintf("serialization of %s is not supported: the codec must opt in explicitly", e.Type)
}

// Is reports whether target matches this error type.
func (e ErrEncodingUnsupported) Is(target error) bool {
	var errEncodingUnsupported ErrEncodingUnsupported
	return errors.As(target, &errEncodingUnsupported)
}

// GRPCStatus returns the gRPC status representation of the error with [codes.Unimplemented].
func (e ErrEncodingUnsupported) GRPCStatus() *status.Status {
	return status.New(codes.Unimplemented, e.Error())
}

type funcCodec[T any] struct {
	decode func(string) (T, error)
	encode func(T) string
}

func (c funcCodec[T]) Decode(raw string) (T, error) {
	v, err := c.decode(raw)
	if err != nil {
		var errParse ErrParse
		if errors.As(err, &errParse) {
			return v, err
		}
		return v, ErrParse{Input: raw, Type: TypeName[T](), err: err}
	}
	return v, nil
}

func (c funcCodec[T]) Encode(v T) string {
	if c.encode == nil {
		panic(ErrEncodingUnsupported{Type: TypeName[T]()})
	}
	return c.encode(v)
}

// Func builds a codec from a decode and an encode function. Errors returned by decode are wrapped in [ErrParse]
// unless they already are one.
//
//	upper := cells.Func(
//		func(raw string) (string, error) { return strings.ToUpper(raw), nil },
//		func(v string) string { return v },
//	)
func Func[T any](decode func(raw string) (T, error), encode func(v T) string) Codec[T] {
	return funcCodec[T]{decode: decode, encode: encode}
}

// DecodeOnly builds a codec that can parse cells but declines serialization: calling Encode panics with
// [ErrEncodingUnsupported].
func DecodeOnly[T any](decode func(raw string) (T, error)) Codec[T] {
	return funcCodec[T]{decode: decode}
}

type optionalCodec[T any] struct {
	inner Codec[T]
}

func (c optionalCodec[T]) Decode(raw string) (*T, error) {
	v, err := c.inner.Decode(raw)
	if err != nil {
		return nil, nil
	}
	return &v, nil
}

func (c optionalCodec[T]) Encode(v *T) string {
	if v == nil {
		return ""
	}
	return c.inner.Encode(*v)
}

// Optional wraps a codec so that cells which fail to decode, including empty cells, yield nil instead of an
// error. Encoding nil produces an empty cell.
func Optional[T any](c Codec[T]) Codec[*T] {
	return optionalCodec[T]{inner: c}
}

// TypeName returns the printable name of T, used in diagnostics.
func TypeName[T any]() string {
	var zero T
	if name := fmt.Sprintf("%T", zero); name != "<nil>" {
		return name
	}
	return fmt.Sprintf("%T", &zero)[1:]
}
