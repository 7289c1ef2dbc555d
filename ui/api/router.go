package api

import (
	"net/http"
	"time"

	"github.com/flipr/sitepanel/ui/service"
)

// Config holds API router configuration.
type Config struct {
	// ReadOnly rejects every mutating endpoint with 403.
	ReadOnly bool

	// RefreshInterval is the period of the dashboard event stream.
	RefreshInterval time.Duration

	// Logger for structured logging.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// router holds the API router state.
type router struct {
	svc    *service.Service
	config *Config
}

// NewRouter creates a new API router.
func NewRouter(svc *service.Service, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{
			RefreshInterval: 30 * time.Second,
		}
	}

	r := &router{
		svc:    svc,
		config: cfg,
	}

	mux := http.NewServeMux()

	// Public site
	mux.HandleFunc("GET /public", r.handlePublic)
	mux.HandleFunc("POST /contacts", r.handleSubmitContact)
	mux.HandleFunc("POST /newsletter", r.handleSubscribe)

	// Dashboard
	mux.HandleFunc("GET /dashboard", r.handleDashboard)
	mux.HandleFunc("GET /dashboard/events", r.handleDashboardEvents)

	// Admin sections
	mux.HandleFunc("GET /sections/{section}", r.handleSection)
	mux.HandleFunc("POST /projects", r.handleAddProject)
	mux.HandleFunc("POST /clients", r.handleAddClient)
	mux.HandleFunc("DELETE /projects/{id}", r.handleDeleteProject)
	mux.HandleFunc("DELETE /clients/{id}", r.handleDeleteClient)

	return withMiddleware(mux, cfg)
}

// withMiddleware wraps the handler with common middleware.
func withMiddleware(handler http.Handler, cfg *Config) http.Handler {
	// Add JSON content type
	handler = jsonMiddleware(handler)
	// Add error recovery
	handler = recoveryMiddleware(handler, cfg.Logger)
	return handler
}

// jsonMiddleware sets JSON content type for all responses.
func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware recovers from panics and returns 500.
func recoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				http.Error(w, `{"error":{"code":"internal_error","message":"internal server error"}}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
