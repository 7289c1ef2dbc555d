package sitepanel

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/flipr/sitepanel/types"
)

// Request describes one API call without performing it.
// Path is relative to the client's base URL.
type Request struct {
	Method string
	Path   string
	Body   any
}

// Op returns the "METHOD /path" label used in errors and logs.
func (r *Request) Op() string {
	return r.Method + " " + r.Path
}

// ListRequest returns the GET for a whole collection.
func ListRequest(c Collection) (*Request, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, string(c))
	}
	return &Request{Method: http.MethodGet, Path: c.Path()}, nil
}

// CreateProjectRequest returns the POST that adds a project.
func CreateProjectRequest(in types.ProjectInput) *Request {
	return &Request{Method: http.MethodPost, Path: Projects.Path(), Body: in}
}

// CreateClientRequest returns the POST that adds a client testimonial.
func CreateClientRequest(in types.ClientInput) *Request {
	return &Request{Method: http.MethodPost, Path: Clients.Path(), Body: in}
}

// SubmitContactRequest returns the POST for a contact-form submission.
func SubmitContactRequest(in types.ContactInput) *Request {
	return &Request{Method: http.MethodPost, Path: Contacts.Path(), Body: in}
}

// SubscribeRequest returns the POST for a newsletter subscription.
func SubscribeRequest(in types.SubscriptionInput) *Request {
	return &Request{Method: http.MethodPost, Path: Newsletter.Path(), Body: in}
}

// DeleteRequest returns the DELETE for one record.
// Only projects and clients can be deleted.
func DeleteRequest(c Collection, id types.ID) (*Request, error) {
	if !c.Deletable() {
		return nil, fmt.Errorf("%w: %s", ErrNotDeletable, c)
	}
	if strings.TrimSpace(id.String()) == "" {
		return nil, ErrInvalidID
	}
	return &Request{
		Method: http.MethodDelete,
		Path:   c.Path() + "/" + url.PathEscape(id.String()),
	}, nil
}
