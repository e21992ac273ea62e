// Package api provides the HTTP client used for all communication with the
// CRM server.
//
// Client is a thin wrapper over resty exposing the four basic verbs against a
// configured base URL. It normalises JSON request/response handling and maps
// non-2xx responses to [*TransportError] so callers can branch on the status
// code with [errors.As]. Failures are logged once here, at the point of
// detection, and returned unchanged; there is no retry or backoff.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akmaldavlatboyev/crm/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Config carries the explicit construction parameters of a Client. There is
// no ambient default; every Client is built from a Config passed in by the
// caller.
type Config struct {
	// BaseURL is the server base URL. A bare host:port is normalised to an
	// http URL. Required.
	BaseURL string

	// RequestTimeout bounds each outbound call. Zero means no client-side
	// timeout.
	RequestTimeout time.Duration
}

// Client issues JSON requests against a single base URL.
type Client struct {
	http   *resty.Client
	logger *logger.Logger
}

// New constructs a Client from cfg. Returns an error if cfg.BaseURL is empty
// or cannot be parsed as a URL.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	cli := resty.New().SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		cli.SetTimeout(cfg.RequestTimeout)
	}

	return &Client{http: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type requestOptions struct {
	headers map[string]string
	query   map[string]string
}

// RequestOption customises a single outbound request.
type RequestOption func(*requestOptions)

// WithHeader adds a header to the request. Caller-supplied headers win over
// the client defaults (including Content-Type).
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithQuery adds a query parameter to the request URL.
func WithQuery(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.query == nil {
			o.query = make(map[string]string)
		}
		o.query[key] = value
	}
}

// Get issues a GET request to path and decodes the JSON response body into
// out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts)
}

// Post issues a POST request to path. A non-string body is serialised to
// JSON; a string body is sent as-is. The JSON response body is decoded into
// out when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts)
}

// Put issues a PUT request to path with the same body and response handling
// as Post.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts)
}

// Delete issues a DELETE request to path.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, opts)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opts []RequestOption) error {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	// defaults first, then caller headers so the caller wins on conflict
	headers := map[string]string{
		"Content-Type": "application/json",
		"X-Request-ID": uuid.NewString(),
	}
	for k, v := range o.headers {
		headers[k] = v
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeaders(headers)
	if len(o.query) > 0 {
		req.SetQueryParams(o.query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Msg("api request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if err = mapTransportError(resp); err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("api request rejected")
		return err
	}

	if out != nil && len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), out); err != nil {
			c.logger.Error().Err(err).
				Str("method", method).
				Str("path", path).
				Msg("api response decode failed")
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}

	return nil
}
