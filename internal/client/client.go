// Package client is the HTTP client for the product REST API.
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

	"github.com/rshade/finprod/internal/logging"
	"github.com/rshade/finprod/internal/product"
)

// productsPath is the collection path of the product API.
const productsPath = "/bp/products"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// DefaultTimeout is used when no http.Client is supplied.
const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx response from the product API.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("product API error (status %d): %s", e.StatusCode, msg)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to one product API base URL.
type Client struct {
	baseURL    *url.URL
	HTTPClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout sets the request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// New returns a Client for baseURL, e.g. "http://localhost:3002".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    u,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type listResponse struct {
	Data []product.Product `json:"data"`
}

type messageResponse struct {
	Message string           `json:"message"`
	Data    *product.Product `json:"data,omitempty"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// List fetches every product.
func (c *Client) List(ctx context.Context) ([]product.Product, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, productsPath, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []product.Product{}, nil
	}
	return resp.Data, nil
}

// Get fetches one product by id.
func (c *Client) Get(ctx context.Context, id string) (product.Product, error) {
	var p product.Product
	if err := c.do(ctx, http.MethodGet, itemPath(id), nil, &p); err != nil {
		return product.Product{}, err
	}
	return p, nil
}

// Create posts a new product and returns the server's message.
func (c *Client) Create(ctx context.Context, p product.Product) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, productsPath, p, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Update replaces the product with p.ID and returns the server's message.
func (c *Client) Update(ctx context.Context, p product.Product) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, itemPath(p.ID), p, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Delete removes the product with id and returns the server's message.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, itemPath(id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Verify reports whether id is already taken on the server.
func (c *Client) Verify(ctx context.Context, id string) (bool, error) {
	var taken bool
	if err := c.do(ctx, http.MethodGet, productsPath+"/verification/"+url.PathEscape(id), nil, &taken); err != nil {
		return false, err
	}
	return taken, nil
}

func itemPath(id string) string {
	return productsPath + "/" + url.PathEscape(id)
}

// do sends one request and decodes a 2xx JSON body into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	log := logging.FromContext(ctx)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", method, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if traceID := logging.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Request-Id", traceID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Debug().
			Str("component", "client").
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("component", "client").
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return apiErr
	}

	var body errorResponse
	if json.Unmarshal(data, &body) == nil && body.Message != "" {
		apiErr.Name = body.Name
		apiErr.Message = body.Message
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(data))
	return apiErr
}
