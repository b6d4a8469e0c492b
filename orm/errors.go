package orm

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrDriver is returned when the grid service fails. The service error is kept as is and is reachable through
// errors.Is and errors.As.
type ErrDriver struct {
	// Range is the A1 range the failed call addressed.
	Range string
	err   error
}

// Error returns a human-readable description of the service failure.
func (e ErrDriver) Error() string {
	if e.Range == "" {
		return fmt.Sprintf("grid service: %v", e.err)
	}
	return fmt.Sprintf("grid service on %s: %v", e.Range, e.err)
}

// Is reports whether target matches this error type or the underlying error.
func (e ErrDriver) Is(target error) bool {
	var errDriver ErrDriver
	return errors.As(target, &errDriver) || errors.Is(e.err, target)
}

// Unwrap returns the service error.
func (e ErrDriver) Unwrap() error {
	return e.err
}

// GRPCStatus returns the status carried by the service error if it has one, and [codes.Unavailable] otherwise.
func (e ErrDriver) GRPCStatus() *status.Status {
	var withStatus interface{ GRPCStatus() *status.Status }
	if errors.As(e.err, &withStatus) {
		return status.New(withStatus.GRPCStatus().Code(), e.Error())
	}
	return status.New(codes.Unavailable, e.Error())
}

// ErrInvalidArgument is returned when a request or a service response cannot be used as given.
// It maps to gRPC status code [codes.InvalidArgument].
type ErrInvalidArgument struct {
	// Message describes the problem.
	Message string
	// err is the underlying error, if any.
	err error
}

// Error returns a human-readable description of the invalid argument.
func (e ErrInvalidArgument) Error() string {
	if e.err == nil {
		return fmt.Sprintf("invalid argument: %s", e.Message)
	}
	return fmt.Sprintf("invalid argument: %s: %v", e.Message, e.err)
}

// Is reports whether target matches this error type.
func (e ErrInvalidArgument) Is(target error) bool {
	var errInvalidArgument ErrInvalidArgument
	return errors.As(target, &errInvalidArgument)
}

// Unwrap returns the underlying error.
func (e ErrInvalidArgument) Unwrap() error {
	return e.err
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e ErrInvalidArgument) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// ErrParsing is returned when a row or an address in a response cannot be decoded.
// It maps to gRPC status code [codes.InvalidArgument].
type ErrParsing struct {
	// Range is the A1 range the row or address belongs to.
	Range string
	err   error
}

// Error returns a human-readable description of the parsing failure.
func (e ErrParsing) Error() string {
	if e.Range == "" {
		return fmt.Sprintf("parsing: %v", e.err)
	}
	return fmt.Sprintf("parsing %s: %v", e.Range, e.err)
}

// Is reports whether target matches this error type or the underlying error.
func (e ErrParsing) Is(target error) bool {
	var errParsing ErrParsing
	return errors.As(target, &errParsing) || errors.Is(e.err, target)
}

// Unwrap returns the underlying decoding error.
func (e ErrParsing) Unwrap() error {
	return e.err
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e ErrParsing) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// ErrUnexpectedResponse is returned when the service answers without the fields the operation relies on.
// It maps to gRPC status code [codes.Internal].
type ErrUnexpectedResponse struct {
	// Response is the raw response, for diagnosis.
	Response any
	// Reason names what was missing.
	Reason string
}

// Error returns a human-readable description of the contract violation.
func (e ErrUnexpectedResponse) Error() string {
	return fmt.Sprintf("unexpected response (%s): %+v", e.Reason, e.Response)
}

// Is reports whether target matches this error type.
func (e ErrUnexpectedResponse) Is(target error) bool {
	var errUnexpectedResponse ErrUnexpectedResponse
	return errors.As(target, &errUnexpectedResponse)
}

// GRPCStatus returns the gRPC status representation of the error with [codes.Internal].
func (e ErrUnexpectedResponse) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.Error())
}

// ErrUnsupported is returned by operations the repository declares but does not implement.
// It maps to gRPC status code [codes.Unimplemented].
type ErrUnsupported struct {
	// Operation is the name of the operation.
	Operation string
}

// Error returns a human-readable description of the unsupported operation.
func (e ErrUnsupported) Error() string {
	return fmt.Sprintf("%s is not supported", e.Operation)
}

// Is reports whether target matches this error type.
func (e ErrUnsupported) Is(target error) bool {
	var errUnsupported ErrUnsupported
	return errors.As(target, &errUnsupported)
}

// GRPCStatus returns the gRPC status representation of the error with [codes.Unimplemented].
func (e ErrUnsupported) GRPCStatus() *status.Status {
	return status.New(codes.Unimplemented, e.Error())
}
