package apiclient

import (
	"encoding/json"
	"fmt"
)

// Header is a single field/value pair. Duplicate field names are allowed; the
// client adds every pair to the outgoing request without merging.
type Header struct {
	Field string
	Value string
}

// QueryItem is a single query key/value pair. Items are encoded in the order
// they were supplied.
type QueryItem struct {
	Key   string
	Value string
}

// Request describes one HTTP call against the client's base URL. It is plain
// data and performs no validation; malformed paths surface when the client
// composes the target URL. A Request must not be mutated after it has been
// handed to Do or Perform.
type Request struct {
	Method  Method
	Path    string
	Query   []QueryItem
	Headers []Header
	Body    []byte
}

// NewRequest builds a request with no query items, headers, or body.
func NewRequest(method Method, path string) *Request {
	return &Request{Method: method, Path: path}
}

// WithQuery appends query items and returns the request for chaining.
func (r *Request) WithQuery(items ...QueryItem) *Request {
	r.Query = append(r.Query, items...)
	return r
}

// WithHeaders appends headers and returns the request for chaining.
func (r *Request) WithHeaders(headers ...Header) *Request {
	r.Headers = append(r.Headers, headers...)
	return r
}

// WithBody sets pre-encoded body bytes and returns the request for chaining.
func (r *Request) WithBody(body []byte) *Request {
	r.Body = body
	return r
}

// NewJSONRequest encodes payload as the request body and prepends a JSON
// content-type header. An encoding failure is an ordinary error, not one of
// the client error kinds: no request exists yet at that point.
func NewJSONRequest(method Method, path string, payload any, headers ...Header) (*Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := NewRequest(method, path)
	req.Headers = append([]Header{{Field: "Content-Type", Value: "application/json"}}, headers...)
	req.Body = body
	return req, nil
}
