package mailglass

import (
	"errors"

	"github.com/mailglass/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrInvalidCredentials is returned when the consumer key or secret is
	// empty, or a login response is missing required fields.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoAccountID is returned when an account-scoped request is executed
	// before an account ID is set on the client.
	ErrNoAccountID = errors.New("no account ID set")

	// ErrMissingField is returned when a response lacks a required field.
	ErrMissingField = errors.New("required field missing from response")

	// ErrFlowState is returned when an auth flow step is called out of order.
	ErrFlowState = errors.New("auth flow step out of order")

	// ErrConnectTokenMissing is returned when a callback URL carries no
	// connect token.
	ErrConnectTokenMissing = errors.New("no connect token in callback URL")

	// ErrKindMismatch is returned when a typed Do helper is given a request
	// declared with a different response kind.
	ErrKindMismatch = errors.New("request kind does not match helper")

	// ErrUnauthorized is returned when the server rejects the credentials.
	ErrUnauthorized = api.ErrUnauthorized

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = api.ErrNotFound

	// ErrPaymentRequired is returned when the account's plan does not cover
	// the call.
	ErrPaymentRequired = api.ErrPaymentRequired

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = api.ErrRateLimited
)

// APIError represents a non-2xx response from the MailGlass API.
type APIError = api.APIError

// DecodeError reports a response body whose shape does not match the
// request's declared response kind.
type DecodeError = api.DecodeError

// TransportError represents a network-level failure.
type TransportError = api.TransportError
