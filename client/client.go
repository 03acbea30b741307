// Package client is a Go SDK for the health journal HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to one journal service instance. Safe for concurrent use.
type Client struct {
	baseURL string
	rc      *resty.Client

	closed uint32
}

// New constructs a Client for baseURL. Options are applied in order.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		rc: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetTimeout(90 * time.Second),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// BaseURL returns the service address the client was built for.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closed, 0, 1) {
		return nil
	}
	c.rc.GetClient().CloseIdleConnections()
	return nil
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.rc.R().SetContext(ctx)
}

// send executes req and decodes the JSON body into out when the status is want.
// route is the templated path used as the metrics label.
func (c *Client) send(req *resty.Request, method, route, path string, want int, out interface{}) error {
	if atomic.LoadUint32(&c.closed) == 1 {
		return ErrClosed
	}
	resp, err := req.Execute(method, path)
	observe(method, route, resp, err)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode() != want {
		return newAPIError(resp.StatusCode(), resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func withDays(req *resty.Request, days int) *resty.Request {
	if days > 0 {
		req.SetQueryParam("days", strconv.Itoa(days))
	}
	return req
}

func withActive(req *resty.Request, activeOnly bool) *resty.Request {
	if activeOnly {
		req.SetQueryParam("active", "true")
	}
	return req
}

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Failing   []string `json:"failing,omitempty"`
}

// Healthy reports whether the service answered with status "healthy".
func (h HealthStatus) Healthy() bool { return h.Status == "healthy" }

// Health fetches the service health report.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var out HealthStatus
	err := c.send(c.r(ctx), http.MethodGet, "/api/health", "/api/health", http.StatusOK, &out)
	return out, err
}
