// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/adpoint-gateway/internal/logger"
)

const apiKeyHeader = "X-API-Key"

// withAPIKey is an HTTP middleware that admits only requests whose X-API-Key
// header equals the configured key.
//
// The comparison runs in constant time. A missing header, a different value,
// or an empty configured key all produce HTTP 401 with
// {"detail":"Invalid API Key"}; the request body is not read and next is
// not called.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	expected := []byte(h.apiKey)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provided := []byte(r.Header.Get(apiKeyHeader))

		if len(expected) == 0 || subtle.ConstantTimeCompare(provided, expected) != 1 {
			logger.FromRequest(r).Warn().
				Bool("header_present", len(provided) > 0).
				Msg("rejected request with invalid api key")
			h.writeError(w, r, ErrInvalidAPIKey)
			return
		}

		next.ServeHTTP(w, r)
	})
}
