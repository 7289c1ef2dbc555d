package sitepanel

import (
	"context"

	"github.com/flipr/sitepanel/types"
)

func list[T any](ctx context.Context, c *Client, coll Collection) ([]T, error) {
	req, err := ListRequest(coll)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProjects returns every project, in server order.
func (c *Client) ListProjects(ctx context.Context) ([]types.Project, error) {
	return list[types.Project](ctx, c, Projects)
}

// ListClients returns every client testimonial, in server order.
func (c *Client) ListClients(ctx context.Context) ([]types.Client, error) {
	return list[types.Client](ctx, c, Clients)
}

// ListContacts returns every contact-form submission, in server order.
func (c *Client) ListContacts(ctx context.Context) ([]types.Contact, error) {
	return list[types.Contact](ctx, c, Contacts)
}

// ListSubscribers returns every newsletter subscriber, in server order.
func (c *Client) ListSubscribers(ctx context.Context) ([]types.Subscriber, error) {
	return list[types.Subscriber](ctx, c, Newsletter)
}

// ListActivity returns the dashboard activity feed.
func (c *Client) ListActivity(ctx context.Context) ([]types.Activity, error) {
	return list[types.Activity](ctx, c, Activity)
}

// CreateProject adds a project and returns the record the server created.
func (c *Client) CreateProject(ctx context.Context, in types.ProjectInput) (*types.Project, error) {
	var out types.Project
	if err := c.Do(ctx, CreateProjectRequest(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClient adds a client testimonial and returns the created record.
func (c *Client) CreateClient(ctx context.Context, in types.ClientInput) (*types.Client, error) {
	var out types.Client
	if err := c.Do(ctx, CreateClientRequest(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitContact posts a contact-form submission.
func (c *Client) SubmitContact(ctx context.Context, in types.ContactInput) (*types.Contact, error) {
	var out types.Contact
	if err := c.Do(ctx, SubmitContactRequest(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Subscribe adds an email to the newsletter.
func (c *Client) Subscribe(ctx context.Context, email string) (*types.Subscriber, error) {
	var out types.Subscriber
	if err := c.Do(ctx, SubscribeRequest(types.SubscriptionInput{Email: email}), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project by id.
func (c *Client) DeleteProject(ctx context.Context, id types.ID) error {
	req, err := DeleteRequest(Projects, id)
	if err != nil {
		return err
	}
	return c.Do(ctx, req, nil)
}

// DeleteClient removes a client testimonial by id.
func (c *Client) DeleteClient(ctx context.Context, id types.ID) error {
	req, err := DeleteRequest(Clients, id)
	if err != nil {
		return err
	}
	return c.Do(ctx, req, nil)
}
