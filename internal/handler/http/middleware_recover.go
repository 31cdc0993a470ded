package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/adpoint-gateway/internal/logger"
	"github.com/MKhiriev/adpoint-gateway/internal/utils"
	"github.com/MKhiriev/adpoint-gateway/models"
)

// withRecover turns a panic in a downstream handler into HTTP 500 with
// {"message":"Internal error"}. http.ErrAbortHandler is re-panicked so the
// server can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			_, _ = utils.WriteJSON(w, models.InternalError{Message: messageInternalError}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
