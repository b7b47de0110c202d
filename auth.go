package mailglass

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// EmailProviderType identifies the provider of the mailbox being
// connected.
type EmailProviderType int

// Supported providers.
const (
	ProviderGenericIMAP EmailProviderType = iota
	ProviderGmail
	ProviderYahoo
	ProviderAOL
	ProviderHotmail
)

// String returns the wire value sent as the begin-auth type parameter.
func (p EmailProviderType) String() string {
	switch p {
	case ProviderGmail:
		return "GMAIL"
	case ProviderYahoo:
		return "YAHOO"
	case ProviderAOL:
		return "AOLMAIL"
	case ProviderHotmail:
		return "HOTMAILOAUTH"
	default:
		return "IMAP"
	}
}

// BeginAuth builds the unauthenticated signed POST that starts the
// connect-token handshake for a new mailbox. The decoded response carries
// a redirect URL the end user must be sent to; see RedirectURLFromResponse.
func (c *Client) BeginAuth(provider EmailProviderType, callbackURL string, params Params) *Request {
	req := NewRequest(http.MethodPost, "connect_tokens", KindDictionary, params)
	req.Set("type", provider.String())
	req.Set("callback_url", callbackURL)
	return req
}

// FetchAccountWithConnectToken builds the unauthenticated signed GET that
// exchanges a connect token for the account's credential payload.
func (c *Client) FetchAccountWithConnectToken(connectToken string) *Request {
	return NewRequest(http.MethodGet, "connect_tokens/"+url.PathEscape(connectToken), KindDictionary, nil)
}

// CompleteLoginWithResponse extracts the token pair and account ID from a
// token-exchange response and stores them on the client. It returns false,
// mutating nothing, when required fields are absent. With saveCredentials
// set, the bundle is persisted to the configured credential store.
func (c *Client) CompleteLoginWithResponse(response map[string]any, saveCredentials bool) bool {
	return c.creds.CompleteLogin(response, saveCredentials)
}

// ClearCredentials removes persisted credentials and nulls the token pair
// in memory. The account ID is retained.
func (c *Client) ClearCredentials() {
	c.creds.ClearCredentials()
}

// RedirectURLFromResponse extracts the redirect URL from a begin-auth
// response. It returns ErrMissingField when the field is absent or not a
// valid URL.
func RedirectURLFromResponse(response map[string]any) (*url.URL, error) {
	raw, ok := stringField(response, "redirect_uri")
	if !ok {
		return nil, fmt.Errorf("%w: redirect_uri", ErrMissingField)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: redirect_uri is not a URL: %v", ErrMissingField, err)
	}
	return u, nil
}

// ConnectTokenFromCallbackURL extracts the connect_token query parameter
// from the callback URL the provider redirected to.
func ConnectTokenFromCallbackURL(callbackURL string) (string, error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return "", fmt.Errorf("invalid callback URL: %w", err)
	}
	token := u.Query().Get("connect_token")
	if token == "" {
		return "", ErrConnectTokenMissing
	}
	return token, nil
}

type flowState int

const (
	flowIdle flowState = iota
	flowTokenRequested
	flowCallbackReceived
	flowCompleted
	flowFailed
)

func (s flowState) String() string {
	switch s {
	case flowIdle:
		return "idle"
	case flowTokenRequested:
		return "token requested"
	case flowCallbackReceived:
		return "callback received"
	case flowCompleted:
		return "completed"
	case flowFailed:
		return "failed"
	}
	return fmt.Sprintf("flowState(%d)", int(s))
}

// AuthFlow drives the three-step connect-token handshake for one new
// account. Each step is a discrete call; the flow holds no background
// work and is advanced only by the caller, typically in response to the
// provider's browser redirect.
//
// Steps must run in order: Begin, ExchangeToken, Complete. A step called
// out of order returns ErrFlowState; a step that fails moves the flow to
// its terminal failed state.
type AuthFlow struct {
	client *Client

	mu     sync.Mutex
	state  flowState
	reason error
}

// NewAuthFlow creates an idle flow bound to the client.
func (c *Client) NewAuthFlow() *AuthFlow {
	return &AuthFlow{client: c}
}

// Begin requests a connect token for the provider and returns the URL the
// end user must be redirected to. Extra params, such as a pre-filled email
// address, are folded into the request.
func (f *AuthFlow) Begin(ctx context.Context, provider EmailProviderType, callbackURL string, params Params) (*url.URL, error) {
	if err := f.advance(flowIdle, flowTokenRequested); err != nil {
		return nil, err
	}
	response, err := f.client.DoDictionary(ctx, f.client.BeginAuth(provider, callbackURL, params))
	if err != nil {
		return nil, f.fail(err)
	}
	redirect, err := RedirectURLFromResponse(response)
	if err != nil {
		return nil, f.fail(err)
	}
	return redirect, nil
}

// ExchangeToken trades the connect token captured from the callback URL
// for the account's credential payload.
func (f *AuthFlow) ExchangeToken(ctx context.Context, connectToken string) (map[string]any, error) {
	if err := f.advance(flowTokenRequested, flowCallbackReceived); err != nil {
		return nil, err
	}
	response, err := f.client.DoDictionary(ctx, f.client.FetchAccountWithConnectToken(connectToken))
	if err != nil {
		return nil, f.fail(err)
	}
	return response, nil
}

// Complete stores the credentials from the exchange response on the
// client, optionally persisting them, and finishes the flow.
func (f *AuthFlow) Complete(response map[string]any, saveCredentials bool) error {
	if err := f.advance(flowCallbackReceived, flowCompleted); err != nil {
		return err
	}
	if !f.client.CompleteLoginWithResponse(response, saveCredentials) {
		return f.fail(fmt.Errorf("%w: token exchange response missing token, token_secret, or id", ErrInvalidCredentials))
	}
	return nil
}

// Completed reports whether the flow reached its terminal success state.
func (f *AuthFlow) Completed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == flowCompleted
}

// Err returns the failure reason for a failed flow, or nil.
func (f *AuthFlow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reason
}

func (f *AuthFlow) advance(from, to flowState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != from {
		return fmt.Errorf("%w: flow is %s", ErrFlowState, f.state)
	}
	f.state = to
	return nil
}

func (f *AuthFlow) fail(err error) error {
	f.mu.Lock()
	f.state = flowFailed
	f.reason = err
	f.mu.Unlock()
	return err
}
