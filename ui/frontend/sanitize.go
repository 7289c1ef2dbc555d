package frontend

import (
	"html/template"
	"net/url"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizeOnce   sync.Once
	sanitizePolicy *bluemonday.Policy
)

// safeHTML renders a card description as entered, keeping the inline markup
// the UGC policy allows and dropping scripts and event handlers.
func safeHTML(s string) template.HTML {
	sanitizeOnce.Do(func() {
		sanitizePolicy = bluemonday.UGCPolicy()
		sanitizePolicy.RequireNoFollowOnLinks(true)
		sanitizePolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
	return template.HTML(sanitizePolicy.Sanitize(s))
}

// pathEscape escapes a record id for use as one URL path segment.
func pathEscape(v any) string {
	switch s := v.(type) {
	case string:
		return url.PathEscape(s)
	case interface{ String() string }:
		return url.PathEscape(s.String())
	default:
		return ""
	}
}
