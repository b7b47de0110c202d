package mailglass

import (
	"context"
	"fmt"
	"strings"

	"github.com/mailglass/client-go/internal/api"
)

// Client is the entry point for the MailGlass API. Each Client owns one
// set of credentials; restoring saved credentials, completing a login,
// and clearing credentials all go through it.
//
// A Client is safe for concurrent use. Requests execute independently
// with no ordering guarantee between them; callers needing read-after-
// write ordering must await the first result before issuing the second.
type Client struct {
	creds *Credentials
	exec  *api.Client
}

// New creates a client with the given consumer key and secret. It returns
// ErrInvalidCredentials if either is empty. If a credential store is
// configured and no token pair is supplied, previously saved credentials
// for the consumer key are restored; a failed restore leaves the client
// unauthorized rather than failing construction.
func New(consumerKey, consumerSecret string, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	creds, err := newCredentials(consumerKey, consumerSecret, cfg.token, cfg.tokenSecret, cfg.accountID, cfg.store)
	if err != nil {
		return nil, err
	}

	apiOpts := []api.Option{api.WithBaseURL(cfg.baseURL)}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.signer != nil {
		apiOpts = append(apiOpts, api.WithSigner(cfg.signer))
	}
	if cfg.limiter != nil {
		apiOpts = append(apiOpts, api.WithLimiter(cfg.limiter))
	}

	return &Client{
		creds: creds,
		exec:  api.New(apiOpts...),
	}, nil
}

// IsAuthorized reports whether the client holds a token pair.
func (c *Client) IsAuthorized() bool {
	return c.creds.IsAuthorized()
}

// AccountID returns the account the client acts on behalf of, or the
// empty string.
func (c *Client) AccountID() string {
	return c.creds.AccountID()
}

// Credentials exposes the credential state for login completion and
// clearing.
func (c *Client) Credentials() *Credentials {
	return c.creds
}

// Do signs and executes req, decoding the response per its declared kind.
// Cancelling ctx aborts the underlying transport call; the returned error
// then wraps context.Canceled (or context.DeadlineExceeded) and no decode
// is attempted. Requests are never retried by the client.
func (c *Client) Do(ctx context.Context, req *Request) (*Result, error) {
	apiReq, err := req.build()
	if err != nil {
		return nil, err
	}
	return c.exec.Execute(ctx, apiReq, c.creds.snapshot())
}

// DoDictionary executes a KindDictionary request and returns the decoded
// object.
func (c *Client) DoDictionary(ctx context.Context, req *Request) (map[string]any, error) {
	res, err := c.do(ctx, req, KindDictionary)
	if err != nil {
		return nil, err
	}
	return res.Dictionary, nil
}

// DoList executes a KindList request and returns the decoded sequence.
func (c *Client) DoList(ctx context.Context, req *Request) ([]any, error) {
	res, err := c.do(ctx, req, KindList)
	if err != nil {
		return nil, err
	}
	return res.List, nil
}

// DoString executes a KindString request and returns the decoded text.
func (c *Client) DoString(ctx context.Context, req *Request) (string, error) {
	res, err := c.do(ctx, req, KindString)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// DoRaw executes a KindRaw request and returns the body bytes unmodified.
func (c *Client) DoRaw(ctx context.Context, req *Request) ([]byte, error) {
	res, err := c.do(ctx, req, KindRaw)
	if err != nil {
		return nil, err
	}
	return res.Raw, nil
}

func (c *Client) do(ctx context.Context, req *Request, want Kind) (*Result, error) {
	if req.err == nil && req.Kind != want {
		return nil, fmt.Errorf("%w: request declares %s", ErrKindMismatch, req.Kind)
	}
	return c.Do(ctx, req)
}

// accountRequest builds a request rooted at accounts/<accountID>/. The
// account ID is resolved when the factory runs; without one the request
// carries ErrNoAccountID and Do fails before signing.
func (c *Client) accountRequest(method string, kind Kind, params Params, parts ...string) *Request {
	id := c.creds.AccountID()
	if id == "" {
		return failedRequest(fmt.Errorf("%w: authorize the client or pass WithAccountID", ErrNoAccountID))
	}
	path := "accounts/" + id
	if len(parts) > 0 {
		path += "/" + strings.Join(parts, "/")
	}
	return NewRequest(method, path, kind, params)
}
