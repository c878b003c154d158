// Package transport carries fully formed HTTP requests for exchange
// adapters. It does not retry, back off or interpret responses; those are
// adapter or caller concerns.
package transport

import (
	"context"
	"net/http"
)

type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs one outbound round trip. Cancellation via ctx is
// advisory; once a response has been received the call is not retried or
// rolled back.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}
