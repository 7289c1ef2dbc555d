package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/hooks"
	"github.com/flipr/sitepanel/ui"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	addr        string
	apiURL      string
	basePath    string
	adminPath   string
	readOnly    bool
	logRequests bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the public site and admin panel",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath, os.Getenv)
		if err != nil {
			fatal("Error loading config", err)
		}
		applyServeFlags(cmd, cfg)

		logger := slog.Default()
		handler, err := newServer(cfg, logger)
		if err != nil {
			fatal("Error building server", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := run(ctx, cfg, handler, logger); err != nil {
			fatal("Server error", err)
		}
	},
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.addr, "addr", "", "Listen address (overrides SERVER_ADDR)")
	f.StringVar(&serveFlags.apiURL, "api-url", "", "REST API base URL (overrides API_BASE_URL)")
	f.StringVar(&serveFlags.basePath, "base-path", "", "URL prefix the site is served under")
	f.StringVar(&serveFlags.adminPath, "admin-path", "", "Admin panel path relative to the base path")
	f.BoolVar(&serveFlags.readOnly, "read-only", false, "Hide admin add and delete controls")
	f.BoolVar(&serveFlags.logRequests, "log-requests", false, "Log every request sent to the REST API")
	rootCmd.AddCommand(serveCmd)
}

// applyServeFlags overrides cfg with the flags set on the command line.
func applyServeFlags(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()
	if f.Changed("addr") {
		cfg.Server.Addr = serveFlags.addr
	}
	if f.Changed("api-url") {
		cfg.API.BaseURL = serveFlags.apiURL
	}
	if f.Changed("base-path") {
		cfg.UI.BasePath = serveFlags.basePath
	}
	if f.Changed("admin-path") {
		cfg.UI.AdminPath = serveFlags.adminPath
	}
	if f.Changed("read-only") {
		cfg.UI.ReadOnly = serveFlags.readOnly
	}
	if f.Changed("log-requests") {
		cfg.API.LogRequests = serveFlags.logRequests
	}
}

// newServer wires the API client, the UI handlers and the chi router.
func newServer(cfg *Config, logger *slog.Logger) (http.Handler, error) {
	registry := hooks.NewRegistry()
	if cfg.API.LogRequests {
		stdLogger := log.New(os.Stderr, "", log.LstdFlags)
		if verbose {
			hooks.NewVerboseLoggingHooks(stdLogger).Register(registry)
		} else {
			hooks.NewLoggingHooks(stdLogger).Register(registry)
		}
	}

	client, err := sitepanel.NewClient(cfg.clientConfig(),
		sitepanel.WithLogger(logger),
		sitepanel.WithHooks(registry),
	)
	if err != nil {
		return nil, err
	}

	uiCfg := cfg.uiConfig()
	uiCfg.Logger = logger

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/ui-api", http.StripPrefix("/ui-api", ui.APIHandler(client, uiCfg)))

	site := ui.UIHandler(client, uiCfg)
	base := strings.TrimRight(cfg.UI.BasePath, "/")
	if base == "" {
		r.Mount("/", site)
	} else {
		r.Mount(base, http.StripPrefix(base, site))
		// Registered after Mount so it replaces the mount's GET on the bare prefix.
		r.Get(base, func(w http.ResponseWriter, req *http.Request) {
			target := base + "/"
			if req.URL.RawQuery != "" {
				target += "?" + req.URL.RawQuery
			}
			http.Redirect(w, req, target, http.StatusMovedPermanently)
		})
	}

	return r, nil
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, cfg *Config, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.Server.Addr, "api", cfg.API.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
