// Package http implements the Aurora API transport: URL construction, default
// headers, JSON bodies, and error normalization. A non-success response is a
// terminal failure; the transport never retries and applies no timeout of its
// own.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/aurora-io/aurora-go/internal/constants"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

const defaultUserAgent = "aurora-go"

// Logger interface for transport logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client issues single HTTP requests against the Aurora API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying *http.Client. Used by tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a transport rooted at baseURL. A trailing slash on
// baseURL is stripped so that joining with a "/"-prefixed path yields exactly
// one separator.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	// retryablehttp with RetryMax=0 is a single-attempt client; every
	// non-success response surfaces to the caller unretried.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = 0

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: retryClient.StandardClient(),
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the normalized base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes a single API request.
type Request struct {
	Method string
	Path   string
	Query  *aurora.Query
	Body   interface{}

	// Headers are applied after the defaults and may override them.
	Headers map[string]string

	// AuthToken switches the request to bearer-token auth: the Authorization
	// header is set and the API key header is omitted entirely. Used only by
	// the user-session operations.
	AuthToken string

	// BaseURL overrides the client base for this request. Used by
	// spec-resolved dispatch and by the spec fetch itself.
	BaseURL string
}

// Response is a successful API response. Body is nil for 204 responses.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do sends the request and returns the response, or an *aurora.APIError for a
// non-success status.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	base := c.baseURL
	if req.BaseURL != "" {
		base = strings.TrimSuffix(req.BaseURL, "/")
	}

	fullURL := base + req.Path + req.Query.Encode()

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.AuthToken)
	} else if c.apiKey != "" {
		httpReq.Header.Set(constants.HeaderAPIKey, c.apiKey)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	var body []byte

	if httpResp.StatusCode != http.StatusNoContent {
		body, err = io.ReadAll(httpResp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return response, aurora.NewAPIError(httpResp.StatusCode, body)
	}

	return response, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query *aurora.Query) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
