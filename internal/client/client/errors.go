package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")
	ErrUnavailable  = errors.New("server unavailable")
)

// APIError is a non-2xx answer or a transport failure. It unwraps to one of
// the sentinel errors above, so callers match with errors.Is and read the
// backend message with errors.As.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
	cause      error
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.cause != nil:
		return e.sentinel().Error() + ": " + e.cause.Error()
	default:
		return e.sentinel().Error()
	}
}

func (e *APIError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.sentinel(), e.cause}
	}
	return []error{e.sentinel()}
}

func (e *APIError) sentinel() error {
	if e.kind != nil {
		return e.kind
	}
	return mapStatus(e.StatusCode)
}

// NewAPIError builds the error a response with the given status produces.
func NewAPIError(status int, message string) *APIError {
	return &APIError{StatusCode: status, Message: message, kind: mapStatus(status)}
}

// Message returns the backend message carried by err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func mapStatus(code int) error {
	switch {
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return ErrBadRequest
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= 500:
		return ErrServer
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
