// Package oauth implements the HMAC-SHA1 request-signing scheme used by
// the MailGlass API. Every request carries its signing parameters inline
// (query string for GET/DELETE, form body for POST/PUT) rather than in an
// Authorization header.
package oauth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Protocol constants attached to every signed request.
const (
	SignatureMethod = "HMAC-SHA1"
	Version         = "1.0"
)

// Parameter names of the signing parameter set.
const (
	paramConsumerKey     = "oauth_consumer_key"
	paramNonce           = "oauth_nonce"
	paramSignature       = "oauth_signature"
	paramSignatureMethod = "oauth_signature_method"
	paramTimestamp       = "oauth_timestamp"
	paramToken           = "oauth_token"
	paramVersion         = "oauth_version"
)

// Credentials is the key material a signing pass reads. Token and
// TokenSecret are empty for unauthenticated calls such as the initial
// connect-token request; the signature is then keyed by the consumer
// secret alone.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
}

// Context records the one-time values produced for a single signing pass.
// A Context is never reused: a repeated nonce/timestamp pair would be a
// replay violation on the server side.
type Context struct {
	Nonce           string
	Timestamp       int64
	SignatureMethod string
	Signature       string
}

// Signer produces signing parameter sets. The zero value is not usable;
// call NewSigner. Nonce and clock sources are injectable so tests can pin
// them and assert byte-identical signatures.
type Signer struct {
	nonce func() string
	now   func() time.Time
}

// NewSigner returns a Signer using a 128-bit random nonce and the wall
// clock.
func NewSigner() *Signer {
	return &Signer{
		nonce: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
		now: time.Now,
	}
}

// NewFixedSigner returns a Signer that always uses the given nonce and
// timestamp. For tests only.
func NewFixedSigner(nonce string, at time.Time) *Signer {
	return &Signer{
		nonce: func() string { return nonce },
		now:   func() time.Time { return at },
	}
}

// Sign computes the signature for one request and returns the full
// transport parameter set (request params plus signing params plus the
// signature) together with the signing context. rawURL must not carry a
// query string; any query parameters belong in params. The input params
// map is not modified.
func (s *Signer) Sign(method, rawURL string, params url.Values, creds Credentials) (url.Values, *Context) {
	sc := &Context{
		Nonce:           s.nonce(),
		Timestamp:       s.now().Unix(),
		SignatureMethod: SignatureMethod,
	}

	signed := url.Values{}
	for k, vs := range params {
		signed[k] = append([]string(nil), vs...)
	}
	signed.Set(paramConsumerKey, creds.ConsumerKey)
	signed.Set(paramNonce, sc.Nonce)
	signed.Set(paramSignatureMethod, sc.SignatureMethod)
	signed.Set(paramTimestamp, strconv.FormatInt(sc.Timestamp, 10))
	signed.Set(paramVersion, Version)
	if creds.Token != "" {
		signed.Set(paramToken, creds.Token)
	}

	base := BaseString(method, rawURL, signed)
	key := Encode(creds.ConsumerSecret) + "&" + Encode(creds.TokenSecret)

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(base))
	sc.Signature = base64.StdEncoding.EncodeToString(mac.Sum(nil))

	signed.Set(paramSignature, sc.Signature)
	return signed, sc
}

// BaseString builds the canonical signature base string:
// METHOD&encode(url)&encode(sorted-param-string), METHOD uppercased.
func BaseString(method, rawURL string, params url.Values) string {
	return strings.ToUpper(method) + "&" + Encode(rawURL) + "&" + Encode(canonicalParams(params))
}

// canonicalParams percent-encodes every key and value, sorts the pairs by
// encoded key then encoded value in ascending byte order, and joins them
// as key=value with '&'. Repeated keys contribute one pair per value.
// Keys and values sort independently: comparing joined "key=value"
// strings would weigh the '=' separator against key bytes and misorder
// prefix keys.
func canonicalParams(params url.Values) string {
	type pair struct {
		k, v string
	}
	pairs := make([]pair, 0, len(params))
	for k, vs := range params {
		ek := Encode(k)
		for _, v := range vs {
			pairs = append(pairs, pair{k: ek, v: Encode(v)})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].k != pairs[j].k {
			return pairs[i].k < pairs[j].k
		}
		return pairs[i].v < pairs[j].v
	})
	joined := make([]string, len(pairs))
	for i, p := range pairs {
		joined[i] = p.k + "=" + p.v
	}
	return strings.Join(joined, "&")
}

// EncodeValues renders a parameter set for transport (query string or
// form body) using the same RFC 3986 encoding the signature was computed
// over. Output order matches the canonical ordering so a signed request
// is reproducible byte for byte.
func EncodeValues(params url.Values) string {
	return canonicalParams(params)
}
