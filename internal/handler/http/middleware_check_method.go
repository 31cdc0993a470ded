// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/adpoint-gateway/internal/utils"
	"github.com/MKhiriev/adpoint-gateway/models"
	"github.com/go-chi/chi/v5"
)

const detailNotFound = "Not Found"

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 with {"detail":"Not Found"} when the
// route whose pattern equals the request path has no handler for the
// request method, so unsupported methods do not reveal that a route exists.
// If the method is registered the request goes through router.ServeHTTP as
// usual. Patterns are compared verbatim; URL parameters are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !routeHandlesMethod(router.Routes(), r.URL.Path, r.Method) {
			_, _ = utils.WriteJSON(w, models.ErrorDetail{Detail: detailNotFound}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func routeHandlesMethod(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
