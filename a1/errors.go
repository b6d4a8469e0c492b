package a1

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrInvalidLetters is returned when a column code is empty or contains anything other than ASCII letters.
// It maps to gRPC status code [codes.InvalidArgument].
type ErrInvalidLetters struct {
	// Input is the rejected column code.
	Input string
}

// Error returns a human-readable description of the invalid column code.
func (e ErrInvalidLetters) Error() string {
	return fmt.Sprintf("invalid column letters %q", e.Input)
}

// Is reports whether target matches this error type.
func (e ErrInvalidLetters) Is(target error) bool {
	var errInvalidLetters ErrInvalidLetters
	return errors.As(target, &errInvalidLetters)
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e ErrInvalidLetters) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// ErrInvalidCell is returned when a cell reference is malformed or has a zero row number.
// It maps to gRPC status code [codes.InvalidArgument].
type ErrInvalidCell struct {
	// Input is the rejected cell reference.
	Input string
	// err is the underlying error, if any.
	err error
}

// Error returns a human-readable description of the invalid cell reference.
func (e ErrInvalidCell) Error() string {
	if e.err == nil {
		return fmt.Sprintf("invalid cell %q", e.Input)
	}
	return fmt.Sprintf("invalid cell %q: %v", e.Input, e.err)
}

// Is reports whether target matches this error type.
func (e ErrInvalidCell) Is(target error) bool {
	var errInvalidCell ErrInvalidCell
	return errors.As(target, &errInvalidCell)
}

// Unwrap returns the underlying error.
func (e ErrInvalidCell) Unwrap() error {
	return e.err
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e ErrInvalidCell) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// ErrInvalidRange is returned when a range reference is not of the form "From:To", or when one of its sides fails
// to parse. It maps to gRPC status code [codes.InvalidArgument].
type ErrInvalidRange struct {
	// Input is the rejected range reference.
	Input string
	// Side names the malformed corner ("from" or "to"). Empty when the separator count is wrong.
	Side string
	// err is the underlying cell error, if any.
	err error
}

// Error returns a human-readable description of the invalid range.
func (e ErrInvalidRange) Error() string {
	if e.Side == "" {
		return fmt.Sprintf("invalid range %q: expected format From:To", e.Input)
	}
	return fmt.Sprintf("invalid range %q: malformed %s cell: %v", e.Input, e.Side, e.err)
}

// Is reports whether target matches this error type.
func (e ErrInvalidRange) Is(target error) bool {
	var errInvalidRange ErrInvalidRange
	return errors.As(target, &errInvalidRange)
}

// Unwrap returns the underlying cell error.
func (e ErrInvalidRange) Unwrap() error {
	return e.err
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e ErrInvalidRange) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// ErrInvalidSheetRange is returned when a sheet-qualified reference lacks the '!' separator or its inner part fails
// to parse. It maps to gRPC status code [codes.InvalidArgument].
type ErrInvalidSheetRange struct {
	// Input is the rejected reference.
	Input string
	// err is the underlying range or cell error, if any.
	err error
}

// Error returns a human-readable description of the invalid sheet-qualified reference.
func (e ErrInvalidSheetRange) Error() string {
	if e.err == nil {
		return fmt.Sprintf("invalid sheet reference %q: expected format Sheet!Reference", e.Input)
	}
	return fmt.Sprintf("invalid sheet reference %q: %v", e.Input, e.err)
}

// Is reports whether target matches this error type.
func (e ErrInvalidSheetRange) Is(target error) bool {
	var errInvalidSheetRange ErrInvalidSheetRange
	return errors.As(target, &errInvalidSheetRange)
}

// Unwrap returns the underlying error.
func (e ErrInvalidSheetRange) Unwrap() error {
	return e.err
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e ErrInvalidSheetRange) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// ErrOutOfBounds is returned when cell arithmetic would leave the grid (column before A or row before 1).
// It maps to gRPC status code [codes.OutOfRange].
type ErrOutOfBounds struct {
	// Cell is the cell the arithmetic started from.
	Cell string
	// Cols and Rows are the requested deltas.
	Cols, Rows int
}

// Error returns a human-readable description of the out of bounds shift.
func (e ErrOutOfBounds) Error() string {
	return fmt.Sprintf("shifting %s by (%d, %d) leaves the grid", e.Cell, e.Cols, e.Rows)
}

// Is reports whether target matches this error type.
func (e ErrOutOfBounds) Is(target error) bool {
	var errOutOfBounds ErrOutOfBounds
	return errors.As(target, &errOutOfBounds)
}

// GRPCStatus returns the gRPC status representation of the error with [codes.OutOfRange].
func (e ErrOutOfBounds) GRPCStatus() *status.Status {
	return status.New(codes.OutOfRange, e.Error())
}
