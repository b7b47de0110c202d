package oauth

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
	"time"
)

var testCreds = Credentials{
	ConsumerKey:    "ck",
	ConsumerSecret: "cs",
	Token:          "tok",
	TokenSecret:    "ts",
}

func fixedSigner() *Signer {
	return NewFixedSigner("abc123", time.Unix(1234567890, 0))
}

func TestBaseStringOrdering(t *testing.T) {
	// Insertion order must not matter: entries sort by encoded key.
	params := url.Values{}
	params.Set("b", "2")
	params.Set("a", "1")

	got := BaseString("get", "https://api.example.com/2.0/things", params)
	want := "GET&https%3A%2F%2Fapi.example.com%2F2.0%2Fthings&a%3D1%26b%3D2"
	if got != want {
		t.Errorf("BaseString = %q, want %q", got, want)
	}
}

func TestBaseStringSortsRepeatedKeysByValue(t *testing.T) {
	params := url.Values{}
	params["name"] = []string{"zeta", "alpha"}

	got := BaseString("GET", "https://h/p", params)
	want := "GET&https%3A%2F%2Fh%2Fp&name%3Dalpha%26name%3Dzeta"
	if got != want {
		t.Errorf("BaseString = %q, want %q", got, want)
	}
}

func TestBaseStringSortsPrefixKeysByKey(t *testing.T) {
	// "a0" must sort after "a" even though '0' sorts below the '='
	// separator; pairs compare by key, never across joined strings.
	cases := []struct {
		name   string
		params url.Values
		want   string
	}{
		{"digit suffix", url.Values{"a": {"1"}, "a0": {"2"}}, "a=1&a0=2"},
		{"dash suffix", url.Values{"flag": {"1"}, "flag-x": {"2"}}, "flag=1&flag-x=2"},
		{"dot suffix", url.Values{"limit": {"5"}, "limit.max": {"9"}}, "limit=5&limit.max=9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EncodeValues(tc.params); got != tc.want {
				t.Errorf("EncodeValues = %q, want %q", got, tc.want)
			}
			wantBase := "GET&https%3A%2F%2Fh%2Fp&" + Encode(tc.want)
			if got := BaseString("GET", "https://h/p", tc.params); got != wantBase {
				t.Errorf("BaseString = %q, want %q", got, wantBase)
			}
		})
	}
}

func TestSignDeterministic(t *testing.T) {
	params := url.Values{}
	params.Set("q", "x y")

	first, ctx1 := fixedSigner().Sign("GET", "https://api.example.com/2.0/messages", params, testCreds)
	second, ctx2 := fixedSigner().Sign("GET", "https://api.example.com/2.0/messages", params, testCreds)

	if ctx1.Signature == "" {
		t.Fatal("empty signature")
	}
	if ctx1.Signature != ctx2.Signature {
		t.Errorf("signatures differ across runs: %q vs %q", ctx1.Signature, ctx2.Signature)
	}
	if EncodeValues(first) != EncodeValues(second) {
		t.Errorf("transport parameter sets differ across runs")
	}
}

func TestSignAttachesSigningParams(t *testing.T) {
	signed, sc := fixedSigner().Sign("POST", "https://api.example.com/2.0/connect_tokens", nil, testCreds)

	want := map[string]string{
		"oauth_consumer_key":     "ck",
		"oauth_nonce":            "abc123",
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        "1234567890",
		"oauth_version":          "1.0",
		"oauth_token":            "tok",
		"oauth_signature":        sc.Signature,
	}
	for k, v := range want {
		if got := signed.Get(k); got != v {
			t.Errorf("signed[%q] = %q, want %q", k, got, v)
		}
	}
	if sc.Timestamp != 1234567890 {
		t.Errorf("Timestamp = %d, want 1234567890", sc.Timestamp)
	}
	if sc.SignatureMethod != "HMAC-SHA1" {
		t.Errorf("SignatureMethod = %q", sc.SignatureMethod)
	}
}

func TestSignOmitsEmptyToken(t *testing.T) {
	creds := Credentials{ConsumerKey: "ck", ConsumerSecret: "cs"}
	signed, _ := fixedSigner().Sign("POST", "https://api.example.com/2.0/connect_tokens", nil, creds)
	if _, ok := signed["oauth_token"]; ok {
		t.Error("oauth_token should be absent for unauthenticated calls")
	}
}

func TestSignatureIsHMACSHA1Digest(t *testing.T) {
	_, sc := fixedSigner().Sign("GET", "https://api.example.com/2.0/messages", nil, testCreds)
	raw, err := base64.StdEncoding.DecodeString(sc.Signature)
	if err != nil {
		t.Fatalf("signature is not base64: %v", err)
	}
	if len(raw) != 20 {
		t.Errorf("digest length = %d, want 20 (SHA-1)", len(raw))
	}
}

func TestSignTokenSecretChangesSignature(t *testing.T) {
	_, with := fixedSigner().Sign("GET", "https://h/p", nil, testCreds)

	other := testCreds
	other.TokenSecret = "different"
	_, without := fixedSigner().Sign("GET", "https://h/p", nil, other)

	if with.Signature == without.Signature {
		t.Error("signature should depend on the token secret")
	}
}

func TestSignDoesNotMutateInput(t *testing.T) {
	params := url.Values{}
	params.Set("q", "x")
	fixedSigner().Sign("GET", "https://h/p", params, testCreds)

	if len(params) != 1 || params.Get("q") != "x" {
		t.Errorf("input params mutated: %v", params)
	}
}

func TestNewSignerNonceUniqueness(t *testing.T) {
	s := NewSigner()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := s.nonce()
		if seen[n] {
			t.Fatalf("nonce %q repeated", n)
		}
		if strings.Contains(n, "-") {
			t.Fatalf("nonce %q contains separator", n)
		}
		seen[n] = true
	}
}

func TestEncodeValuesCanonicalOrder(t *testing.T) {
	params := url.Values{}
	params.Set("b", "2")
	params.Set("a", "1")
	params.Add("a", "0")

	got := EncodeValues(params)
	want := "a=0&a=1&b=2"
	if got != want {
		t.Errorf("EncodeValues = %q, want %q", got, want)
	}
}
