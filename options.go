package mailglass

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/mailglass/client-go/internal/oauth"
)

const defaultBaseURL = "https://api.mailglass.io/2.0"

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	token       string
	tokenSecret string
	accountID   string
	store       CredentialStore

	limiter *rate.Limiter
	signer  *oauth.Signer
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL, including the version prefix.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client for the transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the timeout for all requests. Default: 60 seconds.
// When combined with WithHTTPClient, the timeout set here wins; without
// it, a custom client's own Timeout is left alone.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithToken supplies a previously obtained token pair, bypassing both the
// credential store and the connect-token handshake.
func WithToken(token, tokenSecret string) Option {
	return func(c *clientConfig) {
		c.token = token
		c.tokenSecret = tokenSecret
	}
}

// WithAccountID sets the account the client acts on behalf of. Usually
// the account ID arrives with the token pair, either from the store or
// from the connect-token handshake.
func WithAccountID(id string) Option {
	return func(c *clientConfig) {
		c.accountID = id
	}
}

// WithCredentialStore sets the store used to restore and persist the
// token pair, keyed by consumer key. Without a store, credentials live
// only in memory.
func WithCredentialStore(store CredentialStore) Option {
	return func(c *clientConfig) {
		c.store = store
	}
}

// WithRateLimit throttles outbound requests to rps requests per second
// with the given burst. Off by default.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *clientConfig) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// withSigner pins the signer. Tests use this to get deterministic
// signatures.
func withSigner(s *oauth.Signer) Option {
	return func(c *clientConfig) {
		c.signer = s
	}
}

func defaultConfig() *clientConfig {
	// timeout stays zero so New can tell "not set" from an explicit
	// value; the transport applies its 60-second default on its own
	// client.
	return &clientConfig{
		baseURL: defaultBaseURL,
	}
}
