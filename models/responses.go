package models

// ErrorDetail is the JSON body of every handled error response,
// e.g. {"detail": "Invalid API Key"}.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// InternalError is the JSON body returned for unexpected failures. It never
// carries the underlying cause.
type InternalError struct {
	Message string `json:"message"`
}

// HealthStatus is returned by the liveness endpoint.
type HealthStatus struct {
	Status string `json:"status"`
}
