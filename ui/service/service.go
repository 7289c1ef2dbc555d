package service

import (
	"context"
	"time"

	"github.com/flipr/sitepanel"
)

// DefaultFlashDuration is how long public form banners stay visible.
const DefaultFlashDuration = 5 * time.Second

// Backend sends planned requests to the API.
// *sitepanel.Client implements it.
type Backend interface {
	Do(ctx context.Context, req *sitepanel.Request, out any) error
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config holds service configuration.
type Config struct {
	// Logger receives every swallowed failure. Nil disables logging.
	Logger Logger

	// FlashDuration is the auto-hide delay of public form banners.
	// Defaults to DefaultFlashDuration.
	FlashDuration time.Duration

	// Now returns the current time; record dates default to it.
	// Defaults to time.Now.
	Now func() time.Time
}

// Service provides public site and admin panel operations.
type Service struct {
	backend Backend
	config  Config
}

// New creates a new Service over the given backend.
func New(backend Backend, cfg *Config) *Service {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.FlashDuration == 0 {
		c.FlashDuration = DefaultFlashDuration
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return &Service{
		backend: backend,
		config:  c,
	}
}

// Dispatch plans an action and, if planning succeeds, sends it.
// A planning error means no request was issued.
func (s *Service) Dispatch(ctx context.Context, a Action, out any) error {
	req, err := a.Plan()
	if err != nil {
		return err
	}
	return s.backend.Do(ctx, req, out)
}

// logWarn logs a failure if the logger is configured.
func (s *Service) logWarn(msg string, err error, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Warn(msg, append([]any{"error", err.Error()}, args...)...)
	}
}
