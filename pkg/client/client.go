// Package client implements the Genie Spaces import/export API client:
// export, import, update, and clone of space configurations, plus local
// validation. Every operation is a single synchronous round-trip (clone is
// two, sequentially) with no retry; a non-success response is surfaced
// immediately through the apperrors taxonomy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ekaya-inc/genie-spaces/pkg/apperrors"
	"github.com/ekaya-inc/genie-spaces/pkg/logging"
)

const (
	// apiVersion is the workspace REST API version the client speaks.
	apiVersion = "2.0"

	// basePath is the spaces resource root.
	basePath = "/api/" + apiVersion + "/genie/spaces"

	// DefaultTimeout is the maximum time to wait for a workspace response.
	DefaultTimeout = 30 * time.Second
)

// Client talks to the Genie Spaces API of a single workspace. It holds no
// mutable state beyond its configured host and token and is safe for
// concurrent use: http.Client is concurrency-safe.
type Client struct {
	host       string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the default HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely. The supplied
// client must be safe for concurrent use if the Client is shared.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the workspace at host, authenticating with
// a personal access token.
func NewClient(host, token string, logger *zap.Logger, opts ...Option) (*Client, error) {
	host = strings.TrimRight(host, "/")
	if host == "" {
		return nil, errors.New("workspace host is required (set DATABRICKS_HOST or pass --host)")
	}
	if token == "" {
		return nil, errors.New("access token is required (set DATABRICKS_TOKEN or pass --token)")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		host:       host,
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger.Named("client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// spaceURL builds the URL for a single space resource, escaping the id.
func (c *Client) spaceURL(spaceID string, query url.Values) string {
	u := c.host + basePath + "/" + url.PathEscape(spaceID)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do executes one request and returns the response body. Payloads are
// JSON-encoded; non-success statuses are translated into the error taxonomy.
func (c *Client) do(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Calling workspace API",
		zap.String("method", method),
		zap.String("url", endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("workspace request failed: %s", logging.SanitizeError(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, c.classify(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// classify maps a non-success response onto the error taxonomy.
func (c *Client) classify(statusCode int, body []byte) error {
	message := responseMessage(body)

	c.logger.Debug("Workspace API returned error",
		zap.Int("status", statusCode),
		zap.String("message", message))

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.NewAuthenticationError(statusCode, message)
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(statusCode, message)
	default:
		return apperrors.NewSpaceClientError(statusCode, message)
	}
}

// responseMessage extracts the "message" field from an error response body,
// falling back to the raw body.
func responseMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(body))
}
