package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorIs(t *testing.T) {
	tests := []struct {
		status int
		target error
		want   bool
	}{
		{401, ErrUnauthorized, true},
		{402, ErrPaymentRequired, true},
		{404, ErrNotFound, true},
		{429, ErrRateLimited, true},
		{404, ErrUnauthorized, false},
		{500, ErrNotFound, false},
	}
	for _, tt := range tests {
		err := &APIError{StatusCode: tt.status}
		if got := errors.Is(err, tt.target); got != tt.want {
			t.Errorf("errors.Is(APIError{%d}, %v) = %v, want %v", tt.status, tt.target, got, tt.want)
		}
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 403, Message: "forbidden"}
	if err.Error() != "API error 403: forbidden" {
		t.Errorf("Error() = %q", err.Error())
	}
	bare := &APIError{StatusCode: 500}
	if bare.Error() != "API error 500" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestNewAPIErrorDecodesBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"typed error object", `{"type":"error","value":"no such account"}`, "no such account"},
		{"message field", `{"message":"slow down"}`, "slow down"},
		{"plain text", "bad gateway", "bad gateway"},
		{"unrecognized object", `{"weird":true}`, `{"weird":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError(502, []byte(tt.body))
			if err.Message != tt.want {
				t.Errorf("Message = %q, want %q", err.Message, tt.want)
			}
			if string(err.Body) != tt.body {
				t.Errorf("Body = %q, want original bytes", err.Body)
			}
		})
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &DecodeError{Kind: KindList, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("DecodeError should unwrap to its cause")
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &TransportError{URL: "https://x", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("TransportError should unwrap to its cause")
	}
}
