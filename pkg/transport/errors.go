package transport

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the bot manager. Detail carries the
// server-provided message when the body had one; callers fall back to a
// generic notice otherwise.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error renders the server detail when present.
func (e *APIError) Error() string {
	if strings.TrimSpace(e.Detail) != "" {
		return fmt.Sprintf("transport: server rejected request (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("transport: request failed with status %d", e.StatusCode)
}

// newAPIError decodes the conventional {"detail": ...} error body. Bodies
// that are not JSON or carry no detail yield an APIError without one.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if len(body) == 0 {
		return apiErr
	}

	var envelope struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Detail == nil {
		return apiErr
	}

	switch detail := envelope.Detail.(type) {
	case string:
		apiErr.Detail = detail
	default:
		// FastAPI-style validation details arrive as structured JSON.
		if raw, err := json.Marshal(detail); err == nil {
			apiErr.Detail = string(raw)
		}
	}
	return apiErr
}
