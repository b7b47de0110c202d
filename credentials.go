package mailglass

import (
	"sync"

	"github.com/mailglass/client-go/internal/oauth"
)

// Credentials holds the client's credential state: the application's
// consumer key/secret and, once a user has authorized access, the
// per-account token pair and account ID.
//
// The consumer pair is immutable after construction. The token pair and
// account ID are mutated only by CompleteLogin and ClearCredentials; both
// operations are serialized against concurrent signing snapshots so a
// credential swap mid-flight never produces a request signed with
// half-old, half-new token material.
type Credentials struct {
	mu             sync.RWMutex
	consumerKey    string
	consumerSecret string
	token          string
	tokenSecret    string
	accountID      string
	store          CredentialStore // may be nil
}

// newCredentials validates the consumer pair and, when no token pair is
// supplied, attempts to restore one from the store keyed by consumer key.
// Restoration failure is non-fatal: the state simply remains unauthorized.
func newCredentials(consumerKey, consumerSecret, token, tokenSecret, accountID string, store CredentialStore) (*Credentials, error) {
	if consumerKey == "" || consumerSecret == "" {
		return nil, ErrInvalidCredentials
	}
	c := &Credentials{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		token:          token,
		tokenSecret:    tokenSecret,
		accountID:      accountID,
		store:          store,
	}
	if (token == "" || tokenSecret == "") && store != nil {
		if bundle, err := store.Load(consumerKey); err == nil {
			c.token = bundle.Token
			c.tokenSecret = bundle.TokenSecret
			if c.accountID == "" {
				c.accountID = bundle.AccountID
			}
		}
	}
	return c, nil
}

// IsAuthorized reports whether a token pair is present.
func (c *Credentials) IsAuthorized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != "" && c.tokenSecret != ""
}

// AccountID returns the remote account this client acts on behalf of, or
// the empty string when none is set.
func (c *Credentials) AccountID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accountID
}

// CompleteLogin extracts the token pair and account ID from a decoded
// token-exchange response. It returns false and mutates nothing when a
// required field is absent or malformed. On success it updates the state
// and, if persist is set and a store is configured, saves the bundle under
// the consumer key. A store write failure does not undo the in-memory
// update.
func (c *Credentials) CompleteLogin(response map[string]any, persist bool) bool {
	token, ok := stringField(response, "token")
	if !ok {
		return false
	}
	tokenSecret, ok := stringField(response, "token_secret")
	if !ok {
		return false
	}
	accountID, ok := stringField(response, "id")
	if !ok {
		return false
	}

	c.mu.Lock()
	c.token = token
	c.tokenSecret = tokenSecret
	c.accountID = accountID
	store := c.store
	key := c.consumerKey
	c.mu.Unlock()

	// Save runs outside the lock: a slow store must not stall
	// concurrent signing snapshots.
	if persist && store != nil {
		_ = store.Save(key, TokenBundle{
			Token:       token,
			TokenSecret: tokenSecret,
			AccountID:   accountID,
		})
	}
	return true
}

// ClearCredentials removes the stored entry, if any, and nulls the token
// pair in memory. The account ID is retained; call ClearAccountID to drop
// it as well.
func (c *Credentials) ClearCredentials() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store != nil {
		_ = c.store.Delete(c.consumerKey)
	}
	c.token = ""
	c.tokenSecret = ""
}

// ClearAccountID drops the account ID.
func (c *Credentials) ClearAccountID() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accountID = ""
}

// snapshot returns a consistent view of the key material for one signing
// pass.
func (c *Credentials) snapshot() oauth.Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return oauth.Credentials{
		ConsumerKey:    c.consumerKey,
		ConsumerSecret: c.consumerSecret,
		Token:          c.token,
		TokenSecret:    c.tokenSecret,
	}
}

func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
