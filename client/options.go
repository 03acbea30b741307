package client

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout bounds a single request. Insight calls wait on the
// completion backend, so keep this above the server's generation timeout.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.rc.SetTimeout(d)
		return nil
	}
}

// WithDebugLogging makes resty dump every request and response.
// Bodies carry health data; do not enable this in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.rc.SetDebug(enabled)
		return nil
	}
}

// WithRetries retries transport failures of reads up to n times with backoff.
// Writes are never retried: a POST that timed out may already be stored.
func WithRetries(n int) Option {
	return func(c *Client) error {
		if n < 0 {
			return fmt.Errorf("retries must be >= 0")
		}
		c.rc.SetRetryCount(n).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second).
			AddRetryCondition(retryableRead)
		return nil
	}
}

func retryableRead(resp *resty.Response, err error) bool {
	if err == nil || resp == nil || resp.Request == nil {
		return false
	}
	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead:
		return true
	}
	return false
}

func debugLoggingRequested() bool {
	return os.Getenv("HEALTH_JOURNAL_CLIENT_DEBUG") == "true"
}
