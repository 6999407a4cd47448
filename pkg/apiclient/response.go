package apiclient

import (
	"encoding/json"
	"fmt"
)

// Response pairs a status code with a body. The transport always yields
// Response[[]byte]; Decode re-wraps a raw envelope with a typed body.
type Response[T any] struct {
	StatusCode int
	Body       T
}

// Decode unmarshals a raw response body into T, preserving the status code.
// Empty or structurally invalid bodies fail with ErrDecodingFailure. Field
// mapping follows the json struct tags on T.
func Decode[T any](resp Response[[]byte]) (Response[T], error) {
	var out Response[T]
	if len(resp.Body) == 0 {
		return out, fmt.Errorf("%w: empty body", ErrDecodingFailure)
	}

	var v T
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return out, fmt.Errorf("%w: %v", ErrDecodingFailure, err)
	}

	out.StatusCode = resp.StatusCode
	out.Body = v
	return out, nil
}
