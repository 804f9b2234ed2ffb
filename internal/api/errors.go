package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error represents a non-2xx response from the backend. Message carries the
// server-provided human-readable message when the body contained one.
type Error struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" {
		return fmt.Sprintf("api: status=%d message=%q", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status=%d body=%s", e.StatusCode, string(e.Body))
}

// Unauthorized reports whether the server rejected the credential.
func (e *Error) Unauthorized() bool {
	return e != nil && e.StatusCode == http.StatusUnauthorized
}

// ServerMessage returns the server-provided message when err is an *Error
// carrying one, so callers can surface validation/business errors verbatim.
// Errors without a server message fall back to their own text.
func ServerMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := err.(*Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// newError builds an *Error from a response body, sniffing the common
// message shapes the backend uses: {"error": ...}, {"detail": ...} and
// {"message": ...}.
func newError(statusCode int, body []byte) *Error {
	e := &Error{StatusCode: statusCode, Body: body}

	var payload struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			e.Message = payload.Error
		case payload.Detail != "":
			e.Message = payload.Detail
		case payload.Message != "":
			e.Message = payload.Message
		}
	}
	return e
}
