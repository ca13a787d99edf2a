package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samvad-hq/openai-lite/pkg/httpclient"
)

// Default model identifiers for the three generation operations.
const (
	DefaultCompletionModel = "text-davinci-003"
	DefaultChatModel       = "gpt-3.5-turbo"
	DefaultEditModel       = "text-davinci-edit-001"
)

// Client issues single synchronous requests against the API. Its
// configuration is fixed at construction and never mutated afterwards, so a
// Client is safe for concurrent use.
type Client struct {
	apiKey          string
	organization    string
	baseURL         string
	completionModel string
	chatModel       string
	editModel       string
	http            httpclient.Client
	log             Logger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithOrganization sets the organization id sent on every request.
func WithOrganization(org string) Option {
	return func(c *Client) { c.organization = org }
}

// WithCompletionModel overrides the default completion model.
func WithCompletionModel(model string) Option {
	return func(c *Client) { c.completionModel = model }
}

// WithChatModel overrides the default chat model.
func WithChatModel(model string) Option {
	return func(c *Client) { c.chatModel = model }
}

// WithEditModel overrides the default edit model.
func WithEditModel(model string) Option {
	return func(c *Client) { c.editModel = model }
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient injects the transport. Callers use this to configure
// timeouts or to substitute a mock.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(log Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client. The key is not validated; an empty key is accepted
// and simply rejected by the remote service at call time. Without
// WithHTTPClient the client uses a resty transport with no timeout
// configured.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:          apiKey,
		baseURL:         DefaultBaseURL,
		completionModel: DefaultCompletionModel,
		chatModel:       DefaultChatModel,
		editModel:       DefaultEditModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(0)
	}
	c.log = ensureLogger(c.log)
	return c
}

// buildHeaders returns the fixed header set followed by any extras, in
// order: Content-Type, Authorization, OpenAI-Organization. The organization
// header is sent even when empty. Values pass through unescaped.
func (c *Client) buildHeaders(extra ...string) []string {
	headers := []string{
		"Content-Type: application/json",
		"Authorization: Bearer " + c.apiKey,
		"OpenAI-Organization: " + c.organization,
	}
	return append(headers, extra...)
}

// Do performs exactly one round trip: a POST with the JSON-encoded body when
// body is non-nil, a GET otherwise. Headers are "Name: Value" strings applied
// in order. The HTTP status is not inspected; remote failures come back as
// decoded bodies and detecting them is the caller's responsibility. A body
// that is not valid JSON is a *DecodeError.
func (c *Client) Do(ctx context.Context, url string, headers []string, body any) (Response, error) {
	hdrs := make([]httpclient.Header, 0, len(headers))
	for _, h := range headers {
		name, value, _ := strings.Cut(h, ": ")
		hdrs = append(hdrs, httpclient.Header{Name: name, Value: value})
	}

	c.log.DebugObj("api request", "url", url)

	var (
		resp httpclient.Response
		err  error
	)
	if body != nil {
		payload, merr := json.Marshal(body)
		if merr != nil {
			return nil, fmt.Errorf("marshal request body: %w", merr)
		}
		resp, err = c.http.Post(ctx, url, hdrs, payload)
	} else {
		resp, err = c.http.Get(ctx, url, hdrs)
	}
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	if resp == nil {
		return nil, &TransportError{URL: url, Err: errors.New("transport returned no response")}
	}

	var out Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}
	return out, nil
}

// ListModels retrieves the model catalogue, or a single model when name is
// non-empty.
func (c *Client) ListModels(ctx context.Context, name string) (Response, error) {
	url, err := c.resolveURL(epModels, name)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, url, c.buildHeaders(), nil)
}

// Completion requests a text completion for prompt. A non-empty model
// overrides the configured default.
func (c *Client) Completion(ctx context.Context, prompt, model string) (Response, error) {
	url, err := c.resolveURL(epCompletion)
	if err != nil {
		return nil, err
	}
	req := NewCompletionRequest(pick(model, c.completionModel), prompt)
	return c.Do(ctx, url, c.buildHeaders(), req)
}

// Chat requests a chat completion for a single system message. A non-empty
// model overrides the configured default.
func (c *Client) Chat(ctx context.Context, message, model string) (Response, error) {
	url, err := c.resolveURL(epChat)
	if err != nil {
		return nil, err
	}
	msgs := []ChatMessage{{Role: RoleSystem, Content: message}}
	req := NewChatRequest(pick(model, c.chatModel), msgs)
	return c.Do(ctx, url, c.buildHeaders(), req)
}

// Edit requests an edit of input following instruction. A non-empty model
// overrides the configured default.
func (c *Client) Edit(ctx context.Context, input, instruction, model string) (Response, error) {
	url, err := c.resolveURL(epEdits)
	if err != nil {
		return nil, err
	}
	req := NewEditRequest(pick(model, c.editModel), input, instruction)
	return c.Do(ctx, url, c.buildHeaders(), req)
}

func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
