// Package gateway contains the thin HTTP wrappers around the PinkyPromises
// admin API. Every meaningful piece of logic lives on the server; the types
// here only shape requests, decode responses, and normalize errors.
//
// Authentication is cookie-based: the shared http.Client carries a cookie jar,
// so the session cookie set by /admin/login rides along on every later call.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pinkypromises/adminctl/internal/logging"
)

// newRequestID is a test seam for request-id generation.
var newRequestID = uuid.NewString

// Client is the shared transport for all resource gateways.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

// New builds a Client for the given API base URL. The cookie jar holds the
// session cookie between calls; timeout applies per request.
func New(baseURL string, timeout time.Duration, log logging.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Jar: jar, Timeout: timeout},
		log:     log,
	}, nil
}

// do performs one JSON round trip. body (when non-nil) is marshalled as the
// request payload; out (when non-nil) receives the decoded response body.
// Non-2xx responses become a *Error carrying the server's structured
// {error} message when the body has one.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", newRequestID())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "gateway transport failure", "method", method, "path", path, "error", err.Error())
		return &Error{cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(ctx, method, path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError converts a non-2xx response into a *Error, preferring the
// server's structured {error} field.
func (c *Client) statusError(ctx context.Context, method, path string, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && strings.TrimSpace(payload.Error) != "" {
		c.log.Debug(ctx, "gateway application error",
			"method", method, "path", path, "status", resp.StatusCode, "error", payload.Error)
		return &Error{Status: resp.StatusCode, Message: payload.Error}
	}

	c.log.Debug(ctx, "gateway unexpected status", "method", method, "path", path, "status", resp.StatusCode)
	return &Error{Status: resp.StatusCode}
}
