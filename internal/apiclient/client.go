// Package apiclient is the single chokepoint through which the hotel front
// ends talk to the remote REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotelsuite/hotelsuite/internal/session"
)

// Client performs authorized requests against the API base URL.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	store          *session.Store
	log            zerolog.Logger
	onUnauthorized func()
	timeout        time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds every request. The default is no timeout: a hung
// request blocks until its context is done. The timeout is applied to a copy
// of the HTTP client, so a client passed to WithHTTPClient is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the request logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithOnUnauthorized registers the navigation side effect run after a 401
// has torn the session down, typically a redirect to the sign-in page.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// New creates a client for the API at baseURL reading credentials from store.
func New(baseURL string, store *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		httpClient:     &http.Client{},
		store:          store,
		log:            zerolog.Nop(),
		onUnauthorized: func() {},
	}
	if c.store == nil {
		c.store = session.NewStore(nil)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// Store returns the session store the client reads from.
func (c *Client) Store() *session.Store {
	return c.store
}

// Request describes one API call. Body may be nil, a *Form (sent as
// multipart), an io.Reader, []byte or string (sent verbatim), or any other
// value, which is JSON-encoded.
type Request struct {
	Method string
	Body   any
	Header http.Header
	// Anonymous requests carry no bearer token and get a 401 back as a plain
	// *APIError instead of ending the session. Used by sign-in.
	Anonymous bool
}

// Response is a successful API answer. Body is nil when the server sent an
// empty body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       json.RawMessage
}

// Decode unmarshals the response body into v. An empty body leaves v
// untouched.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Do sends the request to baseURL+path.
//
// A 401 answer clears the session store, runs the unauthorized callback and
// returns a nil Response with a nil error: the caller must treat that as
// "navigation in flight" and stop, not as data or as a displayable failure.
// Other non-2xx answers return an *APIError; a body that is not JSON returns
// an error wrapping ErrInvalidResponseFormat. Transport errors are returned
// unmodified.
func (c *Client) Do(ctx context.Context, path string, r *Request) (*Response, error) {
	if r == nil {
		r = &Request{}
	}
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	body, contentType, err := encodeBody(r.Body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")
	if token, ok := c.store.Token(); ok && !r.Anonymous {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("API request failed")
		return nil, err
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("API request")

	if resp.StatusCode == http.StatusUnauthorized && !r.Anonymous {
		c.endSession(path)
		return nil, nil
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var raw json.RawMessage
	if len(bytes.TrimSpace(text)) > 0 {
		if !json.Valid(text) {
			return nil, fmt.Errorf("%w (status %d)", ErrInvalidResponseFormat, resp.StatusCode)
		}
		raw = json.RawMessage(text)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var fields map[string]any
		_ = json.Unmarshal(raw, &fields)
		return nil, newAPIError(resp.StatusCode, fields)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}

// Get is shorthand for a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, path, &Request{Method: http.MethodGet})
}

// Post is shorthand for a POST request.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, path, &Request{Method: http.MethodPost, Body: body})
}

// Put is shorthand for a PUT request.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, path, &Request{Method: http.MethodPut, Body: body})
}

// Delete is shorthand for a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, path, &Request{Method: http.MethodDelete})
}

func (c *Client) endSession(path string) {
	c.log.Info().Str("path", path).Msg("API rejected credentials, ending session")
	if err := c.store.Clear(); err != nil {
		c.log.Warn().Err(err).Msg("Failed to clear session")
	}
	c.onUnauthorized()
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "application/json", nil
	case *Form:
		r, err := b.encode()
		if err != nil {
			return nil, "", err
		}
		return r, b.ContentType(), nil
	case io.Reader:
		return b, "application/json", nil
	case []byte:
		return bytes.NewReader(b), "application/json", nil
	case string:
		return strings.NewReader(b), "application/json", nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
}
