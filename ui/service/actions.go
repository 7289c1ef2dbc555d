package service

import (
	"strings"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/types"
)

// Action is one user intent that maps to at most one API call.
// Plan never performs I/O.
type Action interface {
	Plan() (*sitepanel.Request, error)
}

// LoadAction reloads a whole collection.
type LoadAction struct {
	Collection sitepanel.Collection
}

// Plan returns the collection GET.
func (a LoadAction) Plan() (*sitepanel.Request, error) {
	return sitepanel.ListRequest(a.Collection)
}

// ContactAction is a contact-form submission.
// The form marks every field required; no further validation happens here.
type ContactAction struct {
	Fullname string
	Email    string
	Mobile   string
	City     string
}

// Plan returns the POST /contacts request.
func (a ContactAction) Plan() (*sitepanel.Request, error) {
	return sitepanel.SubmitContactRequest(types.ContactInput{
		Fullname: a.Fullname,
		Email:    a.Email,
		Mobile:   a.Mobile,
		City:     a.City,
	}), nil
}

// SubscribeAction is a newsletter sign-up.
type SubscribeAction struct {
	Email string
}

// Plan rejects emails that are empty or lack "@" and otherwise returns POST /newsletter.
func (a SubscribeAction) Plan() (*sitepanel.Request, error) {
	if a.Email == "" || !strings.Contains(a.Email, "@") {
		return nil, ErrInvalidEmail
	}
	return sitepanel.SubscribeRequest(types.SubscriptionInput{Email: a.Email}), nil
}

// AddProjectAction submits the admin "add project" form.
type AddProjectAction struct {
	Name        string
	Description string
	Image       string
	Category    string
	Location    string
}

// Plan returns the POST /projects request.
func (a AddProjectAction) Plan() (*sitepanel.Request, error) {
	return sitepanel.CreateProjectRequest(types.ProjectInput{
		Name:        a.Name,
		Description: a.Description,
		Image:       a.Image,
		Category:    a.Category,
		Location:    a.Location,
	}), nil
}

// AddClientAction submits the admin "add client" form.
type AddClientAction struct {
	Name        string
	Designation string
	Description string
	Image       string
}

// Plan returns the POST /clients request.
func (a AddClientAction) Plan() (*sitepanel.Request, error) {
	return sitepanel.CreateClientRequest(types.ClientInput{
		Name:        a.Name,
		Designation: a.Designation,
		Description: a.Description,
		Image:       a.Image,
	}), nil
}

// DeleteAction removes one project or client. The UI asks for confirmation
// before dispatching it.
type DeleteAction struct {
	Collection sitepanel.Collection
	ID         types.ID
}

// Plan returns the DELETE request, or an error for collections without one.
func (a DeleteAction) Plan() (*sitepanel.Request, error) {
	return sitepanel.DeleteRequest(a.Collection, a.ID)
}
