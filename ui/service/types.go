package service

import (
	"time"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/types"
)

// FlashType is the style of a flash message.
type FlashType string

const (
	FlashSuccess FlashType = "success"
	FlashError   FlashType = "error"
)

// Flash is a status message shown after a form submission.
// AutoHide is zero for messages that stay until the next page view.
type Flash struct {
	Type     FlashType     `json:"type"`
	Message  string        `json:"message"`
	AutoHide time.Duration `json:"-"`
}

// AutoHideMillis returns AutoHide in milliseconds, for templates.
func (f *Flash) AutoHideMillis() int64 {
	return f.AutoHide.Milliseconds()
}

// Result is the outcome of a submitted action.
type Result struct {
	// OK is true when the API accepted the request.
	OK bool `json:"ok"`

	// Planned is false when client-side validation stopped the action
	// before any request was sent.
	Planned bool `json:"planned"`

	// ClearForm tells the view to reset the submitted form.
	ClearForm bool `json:"clear_form"`

	Flash *Flash `json:"flash"`
}

// =============================================================================
// Public site
// =============================================================================

// ProjectCard is one project on the public page, defaults already applied.
type ProjectCard struct {
	ID          types.ID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
}

// ClientCard is one testimonial on the public page.
type ClientCard struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ProjectCards is the projects container. Exactly one of Error, Empty or
// Cards is set.
type ProjectCards struct {
	Cards []ProjectCard `json:"cards,omitempty"`
	Empty string        `json:"empty,omitempty"`
	Error string        `json:"error,omitempty"`
}

// ClientCards is the clients container. Exactly one of Error, Empty or
// Cards is set.
type ClientCards struct {
	Cards []ClientCard `json:"cards,omitempty"`
	Empty string       `json:"empty,omitempty"`
	Error string       `json:"error,omitempty"`
}

// PublicPage is everything the public landing page renders from the API.
type PublicPage struct {
	Projects ProjectCards `json:"projects"`
	Clients  ClientCards  `json:"clients"`
}

// =============================================================================
// Admin panel
// =============================================================================

// Counts are the dashboard totals. A collection whose fetch failed counts 0.
type Counts struct {
	Projects    int `json:"projects"`
	Clients     int `json:"clients"`
	Contacts    int `json:"contacts"`
	Subscribers int `json:"subscribers"`
}

// ActivityItem is one rendered activity feed entry.
type ActivityItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// ActivityFeed is the dashboard feed. Exactly one of Error, Empty or Items is set.
type ActivityFeed struct {
	Items []ActivityItem `json:"items,omitempty"`
	Empty string         `json:"empty,omitempty"`
	Error string         `json:"error,omitempty"`
}

// Dashboard is the dashboard section.
type Dashboard struct {
	Counts Counts `json:"counts"`

	// Failed lists the collections whose count fetch failed.
	Failed []sitepanel.Collection `json:"failed,omitempty"`

	Activity ActivityFeed `json:"activity"`
}

// Row is one data row of an admin table.
// Image is empty for tables without a thumbnail column.
type Row struct {
	ID       types.ID `json:"id,omitempty"`
	Image    string   `json:"image,omitempty"`
	ImageAlt string   `json:"image_alt,omitempty"`
	Cells    []string `json:"cells"`

	// Actions renders the edit and delete buttons. Edit has no behaviour.
	Actions bool `json:"actions"`
}

// Placeholder is a single row spanning the whole table.
type Placeholder struct {
	Text    string `json:"text"`
	Colspan int    `json:"colspan"`
	IsError bool   `json:"is_error"`
}

// Table is a collection section. Rows is empty whenever Placeholder is set.
type Table struct {
	Section     Section      `json:"section"`
	Collection  string       `json:"collection"`
	Columns     []string     `json:"columns"`
	Rows        []Row        `json:"rows,omitempty"`
	Placeholder *Placeholder `json:"placeholder,omitempty"`

	// CanAdd shows the add button and form.
	CanAdd bool `json:"can_add"`

	// DeleteConfirm is the confirmation prompt of the delete buttons.
	DeleteConfirm string `json:"delete_confirm,omitempty"`
}

// NavItem is one sidebar link.
type NavItem struct {
	Section Section `json:"section"`
	Title   string  `json:"title"`
	Icon    string  `json:"icon"`
	Active  bool    `json:"active"`
}

// PanelView is what the admin page renders: the sidebar and the one visible
// section. Dashboard is set for the dashboard section, Table otherwise.
type PanelView struct {
	Section   Section    `json:"section"`
	Title     string     `json:"title"`
	Nav       []NavItem  `json:"nav"`
	Dashboard *Dashboard `json:"dashboard,omitempty"`
	Table     *Table     `json:"table,omitempty"`

	// Counts are the latest dashboard counts, refreshed after every mutation.
	// Nil until the dashboard has been loaded once.
	Counts *Counts `json:"counts,omitempty"`
}
