package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the credentials were rejected by the server.
	ErrUnauthorized = errors.New("invalid or expired credentials")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrPaymentRequired indicates the account's plan does not cover the call.
	ErrPaymentRequired = errors.New("payment required")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents a non-2xx response from the MailGlass API. Body
// holds the raw response bytes; Message is the best-effort decoded error
// text if the body was a recognizable JSON error object.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 402:
		return target == ErrPaymentRequired
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// DecodeError reports a response body whose shape does not match the
// request's declared kind. It indicates a contract mismatch, not a
// transient fault, and is never retried.
type DecodeError struct {
	Kind Kind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response does not decode as %s: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError represents a network-level failure (DNS, TLS, timeout,
// connection reset). The caller decides retry policy; this layer applies
// none.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// newAPIError decodes an error body on a best-effort basis. The server
// usually answers with {"type":"error","value":"..."} but plain-text
// bodies occur on proxies and load balancers.
func newAPIError(statusCode int, body []byte) *APIError {
	var errResp struct {
		Type    string `json:"type"`
		Value   string `json:"value"`
		Message string `json:"message"`
	}
	apiErr := &APIError{StatusCode: statusCode, Body: body}
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Value != "":
			apiErr.Message = errResp.Value
		case errResp.Message != "":
			apiErr.Message = errResp.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = string(body)
	}
	return apiErr
}
