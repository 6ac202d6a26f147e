// request.go
// ----------
// Request and Response are the normalized shapes exchanged with the
// Transport: a Request describes one HTTP call before it is sent, a
// Response carries the raw result back.
package questdeck

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// Request describes a single API call. It is built once and consumed once;
// the client never mutates it after Do returns.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body is serialized to JSON. Mutually exclusive with Form and File.
	Body any
	// Form is sent urlencoded when Body and File are unset.
	Form url.Values
	// File triggers a multipart upload; Form fields ride along as parts.
	File *FilePayload

	Headers map[string]string
}

// FilePayload is the file part of a multipart request.
type FilePayload struct {
	Field   string
	Name    string
	Content []byte
}

// Response is the raw result of one API call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the response body into v. An empty body is a no-op.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// RequestOption adjusts a single request built by one of the convenience
// verbs. Options run after the request defaults are in place.
type RequestOption func(*Request)

// WithQuery adds one query parameter.
func WithQuery(key, value string) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = url.Values{}
		}
		r.Query.Set(key, value)
	}
}

// WithQueryValues merges a full set of query parameters.
func WithQueryValues(values url.Values) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = url.Values{}
		}
		for k, vs := range values {
			for _, v := range vs {
				r.Query.Add(k, v)
			}
		}
	}
}

// WithHeader sets one request header, overriding client defaults.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = map[string]string{}
		}
		r.Headers[key] = value
	}
}

// WithIdempotencyKey supplies an explicit idempotency key, making a POST or
// PATCH safe to retry and letting the server deduplicate replays.
func WithIdempotencyKey(key string) RequestOption {
	return WithHeader(HeaderIdempotencyKey, key)
}
