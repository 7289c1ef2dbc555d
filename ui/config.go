package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/flipr/sitepanel/ui/service"
)

// Default configuration values.
const (
	DefaultAdminPath       = "/admin"
	DefaultRefreshInterval = 30 * time.Second
	DefaultFlashDuration   = service.DefaultFlashDuration
)

// Config holds UI package configuration.
type Config struct {
	// BasePath is the URL prefix where the UI is mounted.
	// For example, if mounted at "/site/", set BasePath to "/site".
	// All navigation links will be prefixed with this path.
	// Defaults to empty string (root mount).
	BasePath string

	// AdminPath is where the admin panel lives, relative to BasePath.
	// Defaults to "/admin".
	AdminPath string

	// ReadOnly hides the admin add and delete controls and rejects
	// their requests. Public forms keep working.
	ReadOnly bool

	// Logger for structured logging.
	// If nil, logging is disabled.
	Logger Logger

	// FlashDuration is how long public form banners stay visible.
	// Defaults to 5 seconds.
	FlashDuration time.Duration

	// RefreshInterval for the dashboard stats auto-refresh.
	// Defaults to 30 seconds.
	RefreshInterval time.Duration
}

// Logger interface for structured logging.
// Compatible with sitepanel.Logger and *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		AdminPath:       DefaultAdminPath,
		FlashDuration:   DefaultFlashDuration,
		RefreshInterval: DefaultRefreshInterval,
	}
}

// applyDefaults fills in default values for zero-valued fields.
func (c *Config) applyDefaults() {
	if c.AdminPath == "" {
		c.AdminPath = DefaultAdminPath
	}
	if c.FlashDuration == 0 {
		c.FlashDuration = DefaultFlashDuration
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = DefaultRefreshInterval
	}
	c.BasePath = strings.TrimRight(c.BasePath, "/")
}

// validate checks the configuration for errors.
func (c *Config) validate() error {
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("%w: base path %q must start with /", ErrInvalidConfig, c.BasePath)
	}
	admin := strings.Trim(c.AdminPath, "/")
	if admin == "" || admin == "static" || admin == "contact" || admin == "newsletter" {
		return fmt.Errorf("%w: admin path %q collides with a public route", ErrInvalidConfig, c.AdminPath)
	}
	if c.FlashDuration < 0 {
		return fmt.Errorf("%w: negative flash duration", ErrInvalidConfig)
	}
	if c.RefreshInterval < time.Second {
		return fmt.Errorf("%w: refresh interval below 1s", ErrInvalidConfig)
	}
	return nil
}
