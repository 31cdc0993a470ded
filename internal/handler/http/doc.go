// Package http implements the HTTP transport layer of the gateway.
//
// It exposes route wiring, request handlers, and middleware. API-key
// authentication, request tracing, access logging, panic recovery, and
// response compression are handled in this package before requests are
// delegated to the service layer.
package http
