package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mailglass/client-go/internal/oauth"
)

// Kind selects the decode strategy for a response body.
type Kind int

const (
	// KindDictionary decodes the body as a single JSON object.
	KindDictionary Kind = iota
	// KindList decodes the body as a JSON array.
	KindList
	// KindString decodes the body as a JSON string scalar, falling back
	// to the raw text when the body is non-empty but not valid JSON.
	KindString
	// KindRaw passes the body through unparsed.
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindDictionary:
		return "dictionary"
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindRaw:
		return "raw"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Request describes one outbound call: an API-namespace-relative path, an
// HTTP method, the declared parameters, and the expected response kind.
// The method alone determines parameter placement: GET and DELETE encode
// params into the query string, POST and PUT into a form-encoded body.
type Request struct {
	Method string
	Path   string
	Params url.Values
	Kind   Kind
}

// Result is the decoded response. Exactly the field matching Kind is
// populated.
type Result struct {
	Kind       Kind
	Dictionary map[string]any
	List       []any
	Text       string
	Raw        []byte
}

// Client executes signed requests. It holds no credential state; the
// caller passes a credential snapshot into each Execute call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	signer     *oauth.Signer
	limiter    *rate.Limiter
}

// Option configures the executor.
type Option func(*Client)

// WithBaseURL sets the API base URL (scheme, host, and version prefix).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the transport timeout for each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithSigner replaces the signer. Tests use this to pin nonce and clock.
func WithSigner(s *oauth.Signer) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// WithLimiter sets an outbound rate limiter applied before each request.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// New creates an executor with the default base URL and a 60 second
// timeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: "https://api.mailglass.io/2.0",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		signer: oauth.NewSigner(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute signs req with creds, sends it, and decodes the response per
// req.Kind. Cancelling ctx aborts the underlying transport call; the
// returned error then wraps ctx.Err() and no decode is attempted.
func (c *Client) Execute(ctx context.Context, req *Request, creds oauth.Credentials) (*Result, error) {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")

	signed, _ := c.signer.Sign(req.Method, endpoint, req.Params, creds)
	encoded := oauth.EncodeValues(signed)

	method := strings.ToUpper(req.Method)
	var httpReq *http.Request
	var err error
	switch method {
	case http.MethodGet, http.MethodDelete:
		httpReq, err = http.NewRequestWithContext(ctx, method, endpoint+"?"+encoded, nil)
	case http.MethodPost, http.MethodPut:
		httpReq, err = http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(encoded))
		if err == nil {
			httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	default:
		return nil, fmt.Errorf("unsupported HTTP method %q", req.Method)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("request aborted: %w", err)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctxErr)
		}
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctxErr)
		}
		return nil, &TransportError{URL: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return decode(req.Kind, body)
}

func decode(kind Kind, body []byte) (*Result, error) {
	res := &Result{Kind: kind}
	switch kind {
	case KindDictionary:
		if err := json.Unmarshal(body, &res.Dictionary); err != nil {
			return nil, &DecodeError{Kind: kind, Err: err}
		}
		// Unmarshal accepts a JSON null without filling the map.
		if res.Dictionary == nil {
			return nil, &DecodeError{Kind: kind, Err: fmt.Errorf("body is null, not an object")}
		}
	case KindList:
		if err := json.Unmarshal(body, &res.List); err != nil {
			return nil, &DecodeError{Kind: kind, Err: err}
		}
		if res.List == nil {
			return nil, &DecodeError{Kind: kind, Err: fmt.Errorf("body is null, not an array")}
		}
	case KindString:
		if err := json.Unmarshal(body, &res.Text); err != nil {
			// Some endpoints answer with plain text. Pass it through
			// as long as the body is non-empty.
			text := strings.TrimSpace(string(body))
			if text == "" {
				return nil, &DecodeError{Kind: kind, Err: err}
			}
			res.Text = text
		}
	case KindRaw:
		res.Raw = body
	default:
		return nil, &DecodeError{Kind: kind, Err: fmt.Errorf("unknown response kind")}
	}
	return res, nil
}
