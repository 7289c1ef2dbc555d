package frontend

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/flipr/sitepanel/ui/service"
)

// renderer handles template rendering.
type renderer struct {
	baseTemplate *template.Template // Base template with layout and fragments
	templatesFS  fs.FS              // Embedded filesystem for page templates
	config       *Config
}

// newRenderer creates a new renderer.
func newRenderer(baseTemplate *template.Template, templatesFS fs.FS, cfg *Config) *renderer {
	return &renderer{
		baseTemplate: baseTemplate,
		templatesFS:  templatesFS,
		config:       cfg,
	}
}

// PageData contains common data for all pages.
type PageData struct {
	Title           string
	BasePath        string
	AdminPath       string
	CurrentPath     string
	ReadOnly        bool
	RefreshInterval int // in seconds
	Flash           *FlashMessage
	Data            any
}

// FlashMessage represents a flash message.
// AutoHideMs is zero for messages that stay until the next page view.
type FlashMessage struct {
	Type       string // "success" or "error"
	Message    string
	AutoHideMs int64
}

// flashFrom converts a service banner for the templates.
func flashFrom(f *service.Flash) *FlashMessage {
	if f == nil {
		return nil
	}
	return &FlashMessage{
		Type:       string(f.Type),
		Message:    f.Message,
		AutoHideMs: f.AutoHideMillis(),
	}
}

// adminURL returns the mounted admin panel path.
func (r *renderer) adminURL() string {
	return r.config.BasePath + "/" + strings.Trim(r.config.AdminPath, "/")
}

func (r *renderer) pageData(req *http.Request, title string, flash *FlashMessage, data any) PageData {
	return PageData{
		Title:           title,
		BasePath:        r.config.BasePath,
		AdminPath:       r.adminURL(),
		CurrentPath:     req.URL.Path,
		ReadOnly:        r.config.ReadOnly,
		RefreshInterval: int(r.config.RefreshInterval.Seconds()),
		Flash:           flash,
		Data:            data,
	}
}

// render renders a page template inside the base layout.
// It clones the base template and parses the page-specific template into it,
// avoiding conflicts between "content" blocks in different pages.
func (r *renderer) render(w http.ResponseWriter, name string, data PageData) error {
	tmpl, err := r.baseTemplate.Clone()
	if err != nil {
		return fmt.Errorf("clone template: %w", err)
	}

	pageTemplatePath := "templates/" + name
	if _, err := tmpl.ParseFS(r.templatesFS, pageTemplatePath); err != nil {
		return fmt.Errorf("parse page template %s: %w", pageTemplatePath, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// renderFragment renders a shared fragment (no layout).
// Fragment templates define their template name as the file path (e.g., "fragments/flash.html").
// The base template is cloned first: an executed html/template can no longer be cloned.
func (r *renderer) renderFragment(w http.ResponseWriter, name string, data any) error {
	tmpl, err := r.baseTemplate.Clone()
	if err != nil {
		return fmt.Errorf("clone template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, name, data)
}

// Template helper functions

// initials returns up to two leading letters of a name, for avatar fallbacks.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(word))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
