package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Client issues requests against a fixed base URL. Calls share the underlying
// transport session but no other state; concurrent use is safe and individual
// calls are fully independent.
type Client struct {
	base *url.URL
	http *resty.Client
	log  *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the transport timeout applied to every call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithLogger attaches a logger for per-attempt debug output.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient injects a pre-configured resty client.
func WithHTTPClient(hc *resty.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a client bound to baseURL. The base URL must carry a scheme and
// host; its path, if any, is prefixed to every request path.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse base url %q: %v", ErrInvalidURL, baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base url %q missing scheme or host", ErrInvalidURL, baseURL)
	}

	c := &Client{
		base: base,
		http: resty.New().SetTimeout(defaultTimeout).SetAllowGetMethodPayload(true),
		log:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do performs the request and returns the raw response envelope. Failures
// wrap ErrInvalidURL (URL composition, no network I/O performed) or
// ErrRequestFailed (transport/protocol error). An empty response body
// resolves as success with empty bytes; decoding is left to the caller.
func (c *Client) Do(ctx context.Context, req *Request) (Response[[]byte], error) {
	target, err := c.composeURL(req)
	if err != nil {
		return Response[[]byte]{}, err
	}
	c.log.Debugw("dispatching request", "method", req.Method, "url", target)

	r := c.http.R().SetContext(ctx)
	for _, h := range req.Headers {
		r.Header.Add(h.Field, h.Value)
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(string(req.Method), target)
	if err != nil {
		return Response[[]byte]{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	body := resp.Body()
	c.logBody(body)
	return Response[[]byte]{StatusCode: resp.StatusCode(), Body: body}, nil
}

// Perform dispatches the request asynchronously and invokes callback exactly
// once with the outcome. Concurrent Perform calls are independent; there is
// no ordering guarantee between them.
func (c *Client) Perform(req *Request, callback func(Response[[]byte], error)) {
	go func() {
		resp, err := c.Do(context.Background(), req)
		callback(resp, err)
	}()
}

// composeURL joins the base URL with the request path and encodes query items
// in their supplied order.
func (c *Client) composeURL(req *Request) (string, error) {
	path := req.Path
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	full := strings.TrimSuffix(c.base.String(), "/") + path
	u, err := url.Parse(full)
	if err != nil {
		return "", fmt.Errorf("%w: compose %q: %v", ErrInvalidURL, full, err)
	}

	if len(req.Query) > 0 {
		var b strings.Builder
		for i, q := range req.Query {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(q.Key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(q.Value))
		}
		u.RawQuery = b.String()
	}
	return u.String(), nil
}

// logBody logs the body as a structured object when it parses as a JSON
// object. Debug side effect only, not part of the contract.
func (c *Client) logBody(body []byte) {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return
	}
	c.log.Debugw("response body", "object", obj)
}
