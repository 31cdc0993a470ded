package service

import "errors"

var (
	// ErrAdpointNotConfigured is returned by CustomerService when no Adpoint
	// Authorization credential is configured.
	ErrAdpointNotConfigured = errors.New("adpoint authorization header not configured")
)
