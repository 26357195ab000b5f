// Package blob provides the HTTP client for the edge blob store that the
// upload relay forwards files to.
package blob

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultEndpoint is the default base URL for the storage API.
	DefaultEndpoint = "https://storage.bunnycdn.com"
)

// Client is an HTTP client for the edge storage API. Objects are written
// under a storage zone and served publicly from the zone's CDN base URL.
type Client struct {
	endpoint   string
	zone       string
	accessKey  string
	cdnBaseURL string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets a custom storage API base URL (useful for testing with
// a mock server).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a new edge storage client. Uploaded objects become
// publicly readable at cdnBaseURL/<key>.
func NewClient(zone, accessKey, cdnBaseURL string, opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		zone:       zone,
		accessKey:  accessKey,
		cdnBaseURL: strings.TrimRight(cdnBaseURL, "/"),
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Upload writes the object under the given key with a public-read policy and
// returns its public URL. Either the object lands and a URL is returned, or
// nothing is persisted; there is no partial state to reconcile.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.endpoint, url.PathEscape(c.zone), escapeKey(key))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, body)
	if err != nil {
		return "", err
	}

	req.Header.Set("AccessKey", c.accessKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage request failed: %w", err)
	}
	defer func() {
		//nolint:errcheck
		resp.Body.Close()
	}()

	// Drain the body so the connection can be reused
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("failed to read storage response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", parseError(resp.StatusCode, respBody)
	}

	return c.cdnBaseURL + "/" + key, nil
}

// escapeKey escapes each segment of an object key while keeping the "/"
// separators intact.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
