package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/flipr/sitepanel/ui/service"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config holds frontend router configuration.
type Config struct {
	// BasePath is the URL prefix where the UI is mounted.
	// All navigation links will be prefixed with this path.
	BasePath string

	// AdminPath is where the admin panel lives, relative to BasePath.
	AdminPath string

	// ReadOnly hides the admin add and delete controls and rejects their POSTs.
	ReadOnly bool

	// RefreshInterval for the dashboard stats auto-refresh.
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

// router holds the frontend router state.
type router struct {
	svc      *service.Service
	config   *Config
	renderer *renderer
}

// NewRouter creates a new frontend router.
func NewRouter(svc *service.Service, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{
			AdminPath:       "/admin",
			RefreshInterval: 30 * time.Second,
		}
	}
	admin := "/" + strings.Trim(cfg.AdminPath, "/")

	// Parse base templates (layout, shared fragments)
	// Page-specific templates are parsed dynamically by the renderer
	// to avoid conflicts between "content" blocks in different pages.
	baseTmpl := template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS,
			"templates/base.html",
			"templates/fragments/flash.html",
			"templates/fragments/contact-form.html",
			"templates/fragments/newsletter-form.html",
			"templates/fragments/dashboard-stats.html",
		))

	r := &router{
		svc:      svc,
		config:   cfg,
		renderer: newRenderer(baseTmpl, templatesFS, cfg),
	}

	mux := http.NewServeMux()

	// Static assets
	staticSub, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Public site
	mux.HandleFunc("GET /{$}", r.handleHome)
	mux.HandleFunc("POST /contact", r.handleContact)
	mux.HandleFunc("POST /newsletter", r.handleNewsletter)

	// Admin panel
	mux.HandleFunc("GET "+admin, r.handleAdmin)
	mux.HandleFunc("GET "+admin+"/{section}", r.handleAdmin)
	mux.HandleFunc("POST "+admin+"/projects", r.handleAddProject)
	mux.HandleFunc("POST "+admin+"/clients", r.handleAddClient)
	mux.HandleFunc("POST "+admin+"/{collection}/{id}/delete", r.handleDelete)

	// HTMX fragments
	mux.HandleFunc("GET "+admin+"/fragments/dashboard-stats", r.handleFragmentDashboardStats)

	return withFrontendMiddleware(mux, cfg)
}

// withFrontendMiddleware wraps the handler with frontend-specific middleware.
func withFrontendMiddleware(handler http.Handler, cfg *Config) http.Handler {
	handler = frontendRecoveryMiddleware(handler, cfg.Logger)
	return handler
}

// frontendRecoveryMiddleware recovers from panics.
func frontendRecoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"safeHTML":   safeHTML,
		"pathEscape": pathEscape,
		"dict":       dictFunc,
		"initials":   initials,
	}
}

// dictFunc creates a map from key-value pairs for use in templates.
// Usage: {{template "foo" (dict "key1" val1 "key2" val2)}}
func dictFunc(values ...any) map[string]any {
	if len(values)%2 != 0 {
		return nil
	}
	dict := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			continue
		}
		dict[key] = values[i+1]
	}
	return dict
}
