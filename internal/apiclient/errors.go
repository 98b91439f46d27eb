package apiclient

import (
	"errors"
	"fmt"
)

// ErrInvalidResponseFormat is returned when the server sends a non-empty
// body that is not valid JSON.
var ErrInvalidResponseFormat = errors.New("server returned invalid data")

// APIError is a non-2xx answer from the API. Message carries the server's
// "error" or "message" field, or "HTTP <status>" when neither is present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status carried by err when it is an APIError,
// or 0 otherwise.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func newAPIError(status int, body map[string]any) *APIError {
	for _, field := range []string{"error", "message"} {
		if msg, ok := body[field].(string); ok && msg != "" {
			return &APIError{StatusCode: status, Message: msg}
		}
	}
	return &APIError{StatusCode: status, Message: fmt.Sprintf("HTTP %d", status)}
}
