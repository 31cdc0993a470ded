package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a sentinel-wrapped error.
// The upstream body is not part of the message because the message is
// forwarded to gateway clients.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	status := fmt.Sprintf("%d %s", code, http.StatusText(code))

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, status)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, status)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, status)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, status)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, status)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrBadGateway, status)
	default:
		return fmt.Errorf("http %s", status)
	}
}
