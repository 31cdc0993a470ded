package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// internalErrorBody is written when the payload itself cannot be encoded.
const internalErrorBody = `{"message":"Internal error"}`

// WriteJSON serializes the given data to JSON and writes it to the HTTP
// response with the given status code and "Content-Type: application/json".
//
// If marshaling fails, it responds with 500 and the generic internal error
// body, and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, models.ErrorDetail{Detail: "Invalid API Key"}, http.StatusUnauthorized)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
