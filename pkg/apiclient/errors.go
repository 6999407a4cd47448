package apiclient

import "errors"

// The failure kinds a call can resolve with. Errors returned by the client
// and by Decode wrap one of these; match with errors.Is. All failures are
// terminal for the call in progress, nothing is retried.
var (
	ErrInvalidURL      = errors.New("invalid url")
	ErrRequestFailed   = errors.New("request failed")
	ErrDecodingFailure = errors.New("decoding failure")
)
