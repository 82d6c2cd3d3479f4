package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents a failure response from the send-email endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: endpoint error %d: %s", e.StatusCode, e.Message)
}

// failureEnvelope matches {"success":false,"error":...}. The error may be a
// string or a provider error object.
type failureEnvelope struct {
	Success bool            `json:"success"`
	Error   json.RawMessage `json:"error"`
}

func parseAPIError(statusCode int, body []byte) error {
	var env failureEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Error) > 0 {
		var msg string
		if err := json.Unmarshal(env.Error, &msg); err != nil {
			msg = string(env.Error)
		}
		return &APIError{StatusCode: statusCode, Message: msg}
	}

	return &APIError{StatusCode: statusCode, Message: string(body)}
}

// IsAPIError checks whether err is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
