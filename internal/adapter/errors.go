package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("adpoint rejected the request")
	ErrUnauthorized        = errors.New("adpoint rejected the credentials")
	ErrForbidden           = errors.New("adpoint denied access")
	ErrNotFound            = errors.New("adpoint resource not found")
	ErrInternalServerError = errors.New("adpoint internal error")
	ErrBadGateway          = errors.New("adpoint unavailable")
)

var (
	// ErrUpstream matches every [*UpstreamError] via [errors.Is].
	ErrUpstream = errors.New("error calling adpoint")

	// ErrInvalidUpstreamPayload is returned when Adpoint answers 2xx with a
	// body that is not JSON or does not match the expected schema.
	ErrInvalidUpstreamPayload = errors.New("invalid adpoint payload")

	// ErrNotConfigured is returned when a request is attempted without an
	// Authorization credential.
	ErrNotConfigured = errors.New("adpoint credential is not configured")
)

// UpstreamError describes a failed call to Adpoint: either a transport
// failure (DNS, refused connection, timeout) or a non-2xx status.
type UpstreamError struct {
	// Op is the request line, e.g. "GET /Customers".
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUpstream) true for every UpstreamError.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
