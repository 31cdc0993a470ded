package http

import (
	"net/http"

	"github.com/MKhiriev/adpoint-gateway/internal/service"
)

// withAdpointConfigured answers 500 with the Configuration error when the
// Adpoint credential is unset. The request body is not read, so a missing
// credential is reported whatever the client sent.
func (h *Handler) withAdpointConfigured(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.CustomerService.Configured() {
			h.writeError(w, r, service.ErrAdpointNotConfigured)
			return
		}

		next.ServeHTTP(w, r)
	})
}
