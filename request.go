package mailglass

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/mailglass/client-go/internal/api"
)

// Kind selects the decode strategy for a response body. It is fixed when
// the request is constructed and never mutated afterward.
type Kind = api.Kind

// Response kinds.
const (
	// KindDictionary expects a single JSON object.
	KindDictionary = api.KindDictionary
	// KindList expects a JSON array.
	KindList = api.KindList
	// KindString expects a JSON string scalar (or plain text).
	KindString = api.KindString
	// KindRaw passes the body through unparsed.
	KindRaw = api.KindRaw
)

// Result is a decoded response. Exactly the field matching its Kind is
// populated.
type Result = api.Result

// Params is a convenience map for request parameters. Values may be
// strings, booleans, integers, floats, or slices of those; booleans
// serialize as "1"/"0" and slice elements become repeated key=value pairs.
type Params map[string]any

// Request describes one outbound API call: a path relative to the API
// base, an HTTP method, a parameter set, and the response kind the caller
// expects. The method alone determines where parameters travel: GET and
// DELETE requests encode them into the query string, POST and PUT into a
// form-encoded body.
//
// A Request is stateless with respect to the client: it may be configured
// freely before execution and executed any number of times.
type Request struct {
	Path   string
	Method string
	Kind   Kind

	params url.Values
	err    error // deferred construction error, surfaced by Do
}

// NewRequest constructs a request against an arbitrary path. Most callers
// use the per-resource factory methods on Client instead.
func NewRequest(method, path string, kind Kind, params Params) *Request {
	r := &Request{
		Path:   path,
		Method: method,
		Kind:   kind,
		params: url.Values{},
	}
	r.SetParams(params)
	return r
}

// failedRequest carries a construction error into Do, which surfaces it
// before anything is signed or sent.
func failedRequest(err error) *Request {
	return &Request{err: err}
}

// Set adds or replaces a single parameter and returns the request for
// chaining.
func (r *Request) Set(key string, value any) *Request {
	if r.params == nil {
		r.params = url.Values{}
	}
	setParam(r.params, key, value)
	return r
}

// SetParams folds a parameter map into the request.
func (r *Request) SetParams(params Params) *Request {
	for k, v := range params {
		r.Set(k, v)
	}
	return r
}

// Param returns the first value set for key, or the empty string.
func (r *Request) Param(key string) string {
	return r.params.Get(key)
}

func (r *Request) build() (*api.Request, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.Path == "" {
		return nil, fmt.Errorf("request has no path")
	}
	return &api.Request{
		Method: r.Method,
		Path:   r.Path,
		Params: r.params,
		Kind:   r.Kind,
	}, nil
}

// setParam normalizes a parameter value into its wire representation.
func setParam(values url.Values, key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		values.Set(key, v)
	case bool:
		values.Set(key, boolParam(v))
	case int:
		values.Set(key, strconv.Itoa(v))
	case int64:
		values.Set(key, strconv.FormatInt(v, 10))
	case float64:
		values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
	case []string:
		values.Del(key)
		for _, s := range v {
			values.Add(key, s)
		}
	case []int:
		values.Del(key)
		for _, n := range v {
			values.Add(key, strconv.Itoa(n))
		}
	case fmt.Stringer:
		values.Set(key, v.String())
	default:
		values.Set(key, fmt.Sprintf("%v", v))
	}
}

// boolParam serializes booleans the way the API documents them.
func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
