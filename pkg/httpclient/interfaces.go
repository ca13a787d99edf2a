package httpclient

import "context"

// Header is a single request header. Headers travel as an ordered slice
// rather than a map because callers treat emission order as part of the
// wire contract.
type Header struct {
	Name  string
	Value string
}

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, headers []Header) (Response, error)
	Post(ctx context.Context, url string, headers []Header, body []byte) (Response, error)
}
