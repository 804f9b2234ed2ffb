// Package api is the HTTP layer of the SoundClub client: a transport adapter
// that injects the stored bearer credential into every request, plus one file
// of thin call wrappers per backend resource family. The wrappers map one
// client action to one request and carry no business logic; state
// reconciliation lives in the stores package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/arkadys/soundclub/internal/logging"
)

// DefaultBaseURL points at a local development backend.
const DefaultBaseURL = "http://localhost:8000/api"

// TokenSource supplies the persisted session credential and tears it down
// when the server rejects it. The session bridge implements it.
type TokenSource interface {
	// Token returns the stored credential, or "" when no session exists.
	Token(ctx context.Context) (string, error)

	// Invalidate clears the persisted credential and profile as a pair.
	Invalidate(ctx context.Context) error
}

// Client is the transport adapter. Requests are single-shot: no retry, no
// client-side timeout beyond the caller's context.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// NewClient creates a transport bound to baseURL. tokens may be nil for a
// client that never authenticates (read-only publication browsing).
func NewClient(baseURL string, tokens TokenSource, log logging.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{},
		tokens:     tokens,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do executes one JSON request. body (when non-nil) is marshalled as JSON;
// out (when non-nil) receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, query, reader, contentType, out)
}

// upload executes one multipart request with a single file part named field.
func (c *Client) upload(ctx context.Context, path, field, filename string, data []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("api: build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("api: build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("api: build multipart body: %w", err)
	}
	return c.send(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType(), out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	fullURL, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token, err := c.credential(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := newError(resp.StatusCode, respBody)
		if apiErr.Unauthorized() && token != "" {
			// The credential the server just rejected is stale; drop the
			// persisted session so the next request goes out unauthenticated.
			if c.tokens != nil {
				if invErr := c.tokens.Invalidate(ctx); invErr != nil {
					c.log.Error(ctx, "session teardown after rejected credential failed", "error", invErr)
				} else {
					c.log.Warn(ctx, "credential rejected by server, session cleared")
				}
			}
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("api: decode response body: %w", err)
	}
	return nil
}

func (c *Client) credential(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("api: read credential: %w", err)
	}
	return token, nil
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("api: invalid path %q: %w", path, err)
	}
	if len(query) > 0 {
		ref.RawQuery = query.Encode()
	}
	base := *c.baseURL
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String(), nil
}
