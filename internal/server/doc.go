// Package server wires and runs the gateway's HTTP server.
//
// It provides startup, signal handling, and graceful shutdown bounded by the
// configured shutdown timeout.
package server
