package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout.
// A zero timeout leaves the transport without a deadline.
func NewRestyClient(timeout time.Duration) *RestyClient {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &RestyClient{client: c}
}

// Get performs an HTTP GET request with the specified context, URL, and headers.
func (r *RestyClient) Get(ctx context.Context, url string, headers []Header) (Response, error) {
	resp, err := r.newRequest(ctx, headers).Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// Post performs an HTTP POST request with the given raw body. The body is
// sent as-is; callers set Content-Type through headers.
func (r *RestyClient) Post(ctx context.Context, url string, headers []Header, body []byte) (Response, error) {
	resp, err := r.newRequest(ctx, headers).SetBody(body).Post(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// newRequest builds the per-call request handle. Each call gets its own
// resty.Request; the shared resty.Client only carries the timeout and is
// safe for concurrent use.
func (r *RestyClient) newRequest(ctx context.Context, headers []Header) *resty.Request {
	req := r.client.R().SetContext(ctx)
	for _, h := range headers {
		req.SetHeader(h.Name, h.Value)
	}
	return req
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
