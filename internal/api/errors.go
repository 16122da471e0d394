package api

import (
	"encoding/json"
	"fmt"
)

// APIError is the normalized form of any non-success backend response. There
// is always a human-readable message: the decoded detail field when the body
// has one, a synthesized message from the status code otherwise.
type APIError struct {
	Detail     string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Detail
}

// newAPIError decodes an error body into an APIError, falling back to a
// synthesized message so the caller never surfaces an empty string.
func newAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &APIError{StatusCode: statusCode, Detail: payload.Detail}
	}

	return &APIError{
		StatusCode: statusCode,
		Detail:     fmt.Sprintf("request failed with status %d", statusCode),
	}
}
