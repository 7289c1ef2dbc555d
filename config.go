package sitepanel

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/flipr/sitepanel/hooks"
)

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 10 * time.Second

// Logger interface for structured logging.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ClientConfig holds configuration for the Client.
type ClientConfig struct {
	// BaseURL is the API root, e.g. "http://localhost:3000/api" (optional)
	// Default: DefaultBaseURL
	BaseURL string

	// HTTPClient is used to send requests (optional)
	// If nil, a client with Timeout is created
	HTTPClient *http.Client

	// Timeout for a single request when HTTPClient is nil (optional)
	// Zero means DefaultTimeout; negative disables the timeout
	Timeout time.Duration

	// UserAgent sent with every request (optional)
	// Default: DefaultUserAgent
	UserAgent string

	// Logger for structured logging (optional)
	// If nil, logging is disabled
	Logger Logger

	// Hooks observe every request and response (optional)
	Hooks *hooks.Registry
}

// DefaultClientConfig returns the default client configuration.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// applyDefaults fills in default values for zero-valued fields.
func (c *ClientConfig) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
}

// validate checks the configuration for errors.
func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base URL: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: base URL must be http or https, got %q", ErrInvalidConfig, c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: base URL has no host", ErrInvalidConfig)
	}
	return nil
}
