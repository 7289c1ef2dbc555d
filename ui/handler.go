package ui

import (
	"net/http"

	"github.com/flipr/sitepanel/ui/api"
	"github.com/flipr/sitepanel/ui/frontend"
	"github.com/flipr/sitepanel/ui/service"
)

// UIHandler returns an http.Handler for the SSR public site and admin panel.
// This handler renders pages with html/template and uses HTMX + Tailwind.
//
// The backend is usually a *sitepanel.Client.
//
// Usage:
//
//	http.Handle("/", ui.UIHandler(client, cfg))
//	r.Mount("/site", ui.UIHandler(client, &ui.Config{BasePath: "/site"}))
func UIHandler(backend service.Backend, cfg *Config) http.Handler {
	cfg = prepare(cfg)

	svc := newService(backend, cfg)
	return frontend.NewRouter(svc, &frontend.Config{
		BasePath:        cfg.BasePath,
		AdminPath:       cfg.AdminPath,
		ReadOnly:        cfg.ReadOnly,
		RefreshInterval: cfg.RefreshInterval,
		Logger:          cfg.Logger,
	})
}

// APIHandler returns an http.Handler for the JSON view API.
//
// Usage:
//
//	http.Handle("/ui-api/", http.StripPrefix("/ui-api", ui.APIHandler(client, cfg)))
func APIHandler(backend service.Backend, cfg *Config) http.Handler {
	cfg = prepare(cfg)

	svc := newService(backend, cfg)
	return api.NewRouter(svc, &api.Config{
		ReadOnly:        cfg.ReadOnly,
		RefreshInterval: cfg.RefreshInterval,
		Logger:          cfg.Logger,
	})
}

// prepare copies cfg and applies defaults.
// It panics on invalid configuration, as that is a programmer error.
func prepare(cfg *Config) *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		c := *cfg
		cfg = &c
		cfg.applyDefaults()
	}

	if err := cfg.validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func newService(backend service.Backend, cfg *Config) *service.Service {
	return service.New(backend, &service.Config{
		Logger:        cfg.Logger,
		FlashDuration: cfg.FlashDuration,
	})
}
