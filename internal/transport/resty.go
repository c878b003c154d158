package transport

import (
	"context"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is the default Transport, backed by a resty HTTP client. Retries
// stay disabled; a single request maps to a single round trip.
type Client struct {
	rc *resty.Client
}

func New(timeout time.Duration) *Client {
	rc := resty.New()
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	rc.SetAllowGetMethodPayload(true)
	return &Client{rc: rc}
}

func NewWithClient(rc *resty.Client) (*Client, error) {
	if rc == nil {
		return nil, errors.New("transport: resty client is required")
	}
	return &Client{rc: rc}, nil
}

func (c *Client) Do(ctx context.Context, req Request) (Response, error) {
	r := c.rc.R().SetContext(ctx)
	for key, values := range req.Header {
		for _, value := range values {
			r.Header.Add(key, value)
		}
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}
	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return Response{}, err
	}
	return Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
