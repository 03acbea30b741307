package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches 404 replies.
	ErrNotFound = errors.New("not found")
	// ErrValidation matches 400 replies.
	ErrValidation = errors.New("validation error")
	// ErrUpstream matches 502 replies from a failed completion call.
	ErrUpstream = errors.New("completion backend unavailable")
	// ErrClosed is returned by every call after Close.
	ErrClosed = errors.New("client closed")
)

// APIError is a non-success reply from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is match an APIError against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest
	case ErrUpstream:
		return e.StatusCode == http.StatusBadGateway
	}
	return false
}

func newAPIError(status int, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	return &APIError{StatusCode: status, Message: msg}
}
