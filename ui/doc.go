// Package ui provides the server-rendered public site and admin panel for a
// sitepanel API.
//
// The package provides two HTTP handlers:
//   - UIHandler: SSR public site and admin panel with HTMX + Tailwind
//   - APIHandler: JSON access to the same view models
//
// # Quick Start
//
//	client, _ := sitepanel.NewClient(&sitepanel.ClientConfig{
//	    BaseURL: os.Getenv("API_BASE_URL"),
//	})
//
//	mux := http.NewServeMux()
//	mux.Handle("/", ui.UIHandler(client, nil))
//
//	http.ListenAndServe(":8080", mux)
//
// # Configuration
//
// The handlers accept an optional Config struct for customization:
//
//	cfg := &ui.Config{
//	    AdminPath:       "/admin",
//	    ReadOnly:        false,            // Hide admin add/delete if true
//	    FlashDuration:   5 * time.Second,  // Public banner auto-hide
//	    RefreshInterval: 30 * time.Second, // Dashboard stats polling
//	}
//
// # Framework Integration
//
// The handlers return standard http.Handler, compatible with any Go framework:
//
//	// Standard library
//	http.Handle("/site/", http.StripPrefix("/site", ui.UIHandler(client, cfg)))
//
//	// Chi
//	r.Mount("/", ui.UIHandler(client, cfg))
//
// # Adding Middleware
//
// The admin panel performs no authentication. Wrap the handler externally:
//
//	handler := authMiddleware(ui.UIHandler(client, cfg))
//	http.Handle("/", handler)
package ui
