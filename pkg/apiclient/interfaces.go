package apiclient

import "context"

// Doer issues request descriptions, so callers can inject mocks or different
// transports in place of a Client.
type Doer interface {
	Do(ctx context.Context, req *Request) (Response[[]byte], error)
}

var _ Doer = (*Client)(nil)
