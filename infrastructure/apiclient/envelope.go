package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnauthorized aborts the caller's flow after an authenticated call came
// back 401. The stored token has already been cleared when it is returned.
var ErrUnauthorized = errors.New("unauthorized")

// Envelope is the wrapper every content API response uses.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorBody      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is an application-level failure: the server answered with
// success=false.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// TransportError covers network failures and bodies that are not JSON.
type TransportError struct {
	Method   string
	Endpoint string
	Status   int
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s %s (status %d): %v", e.Method, e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (env Envelope) failure(status int) *Error {
	out := &Error{Status: status, Message: env.Message}
	if env.Error != nil {
		out.Code = env.Error.Code
		if env.Error.Message != "" {
			out.Message = env.Error.Message
		}
	}
	return out
}

// UserMessage picks the text to show for a failed call: the server's message
// when it sent one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
