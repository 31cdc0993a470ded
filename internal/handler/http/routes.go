package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withRecover)

	// routes protected by X-API-Key
	router.Group(func(r chi.Router) {
		r.Use(h.withAPIKey, h.withAdpointConfigured)
		r.Post("/search_adpoint_customer", h.searchAdpointCustomer)
	})

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/health", h.health)
		if h.gatherer != nil {
			r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
