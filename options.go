package sitepanel

import (
	"net/http"
	"time"

	"github.com/flipr/sitepanel/hooks"
)

// Option is a functional option for configuring a Client
type Option func(*ClientConfig)

// WithBaseURL sets the API root
func WithBaseURL(baseURL string) Option {
	return func(c *ClientConfig) {
		c.BaseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *ClientConfig) {
		c.HTTPClient = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *ClientConfig) {
		c.Timeout = d
	}
}

// WithLogger sets the structured logger
func WithLogger(l Logger) Option {
	return func(c *ClientConfig) {
		c.Logger = l
	}
}

// WithHooks sets the hook registry
func WithHooks(r *hooks.Registry) Option {
	return func(c *ClientConfig) {
		c.Hooks = r
	}
}
