package rows

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotText is wrapped by [ErrCellDecode] when a cell holds a value that has no textual form.
var ErrNotText = errors.New("cell value is not representable as text")

// ErrFieldMissing is returned when a row ends before the column of a required field.
// It maps to gRPC status code [codes.InvalidArgument].
type ErrFieldMissing struct {
	// Field is the name of the required field.
	Field string
	// Type is the name of the field's Go type.
	Type string
	// Row is the full row, for diagnostics.
	Row RawRow
}

// Error returns a human-readable description of the missing field.
func (e ErrFieldMissing) Error() string {
	return fmt.Sprintf("required field %s (%s) is missing from row %v", e.Field, e.Type, e.Row)
}

// Is reports whether target matches this error type.
func (e ErrFieldMissing) Is(target error) bool {
	var errFieldMissing ErrFieldMissing
	return errors.As(target, &errFieldMissing)
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e ErrFieldMissing) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// ErrCellDecode is returned when the cell of a required field cannot be parsed.
// It maps to gRPC status code [codes.InvalidArgument].
type ErrCellDecode struct {
	// Field is the name of the field being decoded.
	Field string
	// Type is the name of the field's Go type.
	Type string
	// Input is the raw cell text.
	Input string
	// Row is the full row, for diagnostics.
	Row RawRow
	// err is the underlying cell error.
	err error
}

// Error returns a human-readable description of the decoding failure.
func (e ErrCellDecode) Error() string {
	return fmt.Sprintf("field %s: cannot decode %q as %s in row %v: %v", e.Field, e.Input, e.Type, e.Row, e.err)
}

// Is reports whether target matches this error type or the underlying error.
func (e ErrCellDecode) Is(target error) bool {
	var errCellDecode ErrCellDecode
	return errors.As(target, &errCellDecode) || errors.Is(e.err, target)
}

// Unwrap returns the underlying cell error.
func (e ErrCellDecode) Unwrap() error {
	return e.err
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e ErrCellDecode) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}
