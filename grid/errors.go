package grid

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrRangeNotFound is returned when the requested range does not exist, for example because the sheet is unknown.
// It maps to gRPC status code [codes.NotFound].
type ErrRangeNotFound struct {
	// Range is the requested range.
	Range string
}

// Error returns a human-readable description of the missing range.
func (e ErrRangeNotFound) Error() string {
	return fmt.Sprintf("range %s not found", e.Range)
}

// Is reports whether target matches this error type.
func (e ErrRangeNotFound) Is(target error) bool {
	var errRangeNotFound ErrRangeNotFound
	return errors.As(target, &errRangeNotFound)
}

// GRPCStatus returns the gRPC status representation of the error with [codes.NotFound].
func (e ErrRangeNotFound) GRPCStatus() *status.Status {
	return status.New(codes.NotFound, e.Error())
}
