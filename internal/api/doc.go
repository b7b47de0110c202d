// Package api executes signed HTTP requests against the MailGlass API.
//
// The executor is transport-agnostic orchestration: it renders a request's
// parameters into the query string or form body depending on the HTTP
// method, obtains the signing parameter set from internal/oauth, hands the
// assembled request to an injected *http.Client, and decodes the response
// body according to the request's declared kind (dictionary, list, string,
// or raw bytes).
//
// The executor never retries, never mutates credentials, and returns every
// failure to the caller as a typed error.
package api
