package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/adpoint-gateway/internal/adapter"
	"github.com/MKhiriev/adpoint-gateway/internal/service"
	"github.com/MKhiriev/adpoint-gateway/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidAPIKey:      http.StatusUnauthorized,
	ErrInvalidRequestBody: http.StatusUnprocessableEntity,
	ErrInvalidGzipBody:    http.StatusBadRequest,

	service.ErrAdpointNotConfigured:   http.StatusInternalServerError,
	adapter.ErrUpstream:               http.StatusInternalServerError,
	adapter.ErrInvalidUpstreamPayload: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// bodyFromError builds the JSON body sent to the client for err. Only
// configuration and upstream failures are described; everything else is
// reported as a generic internal error.
func bodyFromError(err error) any {
	var upstreamErr *adapter.UpstreamError

	switch {
	case errors.Is(err, ErrInvalidAPIKey):
		return models.ErrorDetail{Detail: detailInvalidAPIKey}
	case errors.Is(err, ErrInvalidRequestBody):
		return models.ErrorDetail{Detail: detailInvalidRequestBody}
	case errors.Is(err, ErrInvalidGzipBody):
		return models.ErrorDetail{Detail: detailInvalidRequestBody}
	case errors.Is(err, service.ErrAdpointNotConfigured):
		return models.ErrorDetail{Detail: detailAdpointNotConfigured}
	case errors.As(err, &upstreamErr):
		return models.ErrorDetail{Detail: detailAdpointCallPrefix + upstreamErr.Error()}
	default:
		return models.InternalError{Message: messageInternalError}
	}
}
