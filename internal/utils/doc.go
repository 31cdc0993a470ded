// Package utils provides small helpers shared by the transport layers:
// JSON response writing and a preconfigured resty HTTP client.
package utils
