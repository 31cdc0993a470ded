// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAPIKey is logged by withAPIKey when the X-API-Key header is
	// absent or does not match the configured key.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// ErrInvalidRequestBody is returned when the search body is not valid
	// JSON, has the wrong shape, or lacks customerName.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrMissingCustomerName wraps ErrInvalidRequestBody for a body without
	// customerName or with customerName set to null.
	ErrMissingCustomerName = fmt.Errorf("%w: customerName is required", ErrInvalidRequestBody)

	// ErrInvalidGzipBody is returned when a request declares gzip
	// Content-Encoding but the body is not valid gzip.
	ErrInvalidGzipBody = errors.New("invalid gzip data")
)

// Response details sent to clients.
const (
	detailInvalidAPIKey        = "Invalid API Key"
	detailInvalidRequestBody   = "Invalid request body"
	detailAdpointNotConfigured = "Adpoint authorization header not configured"
	detailAdpointCallPrefix    = "Error calling Adpoint API: "
	messageInternalError       = "Internal error"
)
