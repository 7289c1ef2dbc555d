package service

import (
	"context"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/types"
)

// Column headers per table.
var (
	projectColumns    = []string{"Image", "Name", "Description", "Category", "Actions"}
	clientColumns     = []string{"Image", "Name", "Designation", "Description", "Actions"}
	contactColumns    = []string{"Full Name", "Email", "Mobile", "City", "Date"}
	subscriberColumns = []string{"Email", "Subscribed On"}
)

// ProjectsTable loads projects for the admin table.
func (s *Service) ProjectsTable(ctx context.Context) (*Table, []types.Project) {
	table := &Table{
		Section:       SectionProjects,
		Collection:    sitepanel.Projects.String(),
		Columns:       projectColumns,
		CanAdd:        true,
		DeleteConfirm: deleteConfirm(sitepanel.Projects),
	}

	var projects []types.Project
	if err := s.Dispatch(ctx, LoadAction{Collection: sitepanel.Projects}, &projects); err != nil {
		s.logWarn("error loading projects", err)
		table.Placeholder = errorRow("Failed to load projects.", len(projectColumns))
		return table, nil
	}
	if len(projects) == 0 {
		table.Placeholder = emptyRow(ProjectsEmptyAdmin, len(projectColumns))
		return table, projects
	}

	for _, p := range projects {
		table.Rows = append(table.Rows, Row{
			ID:       p.ID,
			Image:    orDefault(p.Image, AdminThumbnailPlaceholder),
			ImageAlt: p.Name,
			Cells: []string{
				p.Name,
				Truncate(p.Description, DescriptionLimit),
				orDefault(p.Category, AdminMissingCategory),
			},
			Actions: true,
		})
	}
	return table, projects
}

// ClientsTable loads client testimonials for the admin table.
func (s *Service) ClientsTable(ctx context.Context) (*Table, []types.Client) {
	table := &Table{
		Section:       SectionClients,
		Collection:    sitepanel.Clients.String(),
		Columns:       clientColumns,
		CanAdd:        true,
		DeleteConfirm: deleteConfirm(sitepanel.Clients),
	}

	var clients []types.Client
	if err := s.Dispatch(ctx, LoadAction{Collection: sitepanel.Clients}, &clients); err != nil {
		s.logWarn("error loading clients", err)
		table.Placeholder = errorRow("Failed to load clients.", len(clientColumns))
		return table, nil
	}
	if len(clients) == 0 {
		table.Placeholder = emptyRow(ClientsEmptyAdmin, len(clientColumns))
		return table, clients
	}

	for _, c := range clients {
		table.Rows = append(table.Rows, Row{
			ID:       c.ID,
			Image:    orDefault(c.Image, AdminThumbnailPlaceholder),
			ImageAlt: c.Name,
			Cells: []string{
				c.Name,
				c.Designation,
				Truncate(c.Description, DescriptionLimit),
			},
			Actions: true,
		})
	}
	return table, clients
}

// ContactsTable loads contact submissions. The table is read-only.
func (s *Service) ContactsTable(ctx context.Context) (*Table, []types.Contact) {
	table := &Table{
		Section:    SectionContacts,
		Collection: sitepanel.Contacts.String(),
		Columns:    contactColumns,
	}

	var contacts []types.Contact
	if err := s.Dispatch(ctx, LoadAction{Collection: sitepanel.Contacts}, &contacts); err != nil {
		s.logWarn("error loading contacts", err)
		table.Placeholder = errorRow("Failed to load contacts.", len(contactColumns))
		return table, nil
	}
	if len(contacts) == 0 {
		table.Placeholder = emptyRow(ContactsEmptyAdmin, len(contactColumns))
		return table, contacts
	}

	now := s.config.Now()
	for _, c := range contacts {
		table.Rows = append(table.Rows, Row{
			ID: c.ID,
			Cells: []string{
				c.Fullname,
				c.Email,
				c.Mobile,
				c.City,
				c.Date.OrNow(now).Format(DateLayout),
			},
		})
	}
	return table, contacts
}

// SubscribersTable loads newsletter subscribers. The table is read-only.
func (s *Service) SubscribersTable(ctx context.Context) (*Table, []types.Subscriber) {
	table := &Table{
		Section:    SectionNewsletter,
		Collection: sitepanel.Newsletter.String(),
		Columns:    subscriberColumns,
	}

	var subscribers []types.Subscriber
	if err := s.Dispatch(ctx, LoadAction{Collection: sitepanel.Newsletter}, &subscribers); err != nil {
		s.logWarn("error loading subscribers", err)
		table.Placeholder = errorRow("Failed to load subscribers.", len(subscriberColumns))
		return table, nil
	}
	if len(subscribers) == 0 {
		table.Placeholder = emptyRow(SubscribersEmptyAdmin, len(subscriberColumns))
		return table, subscribers
	}

	now := s.config.Now()
	for _, sub := range subscribers {
		table.Rows = append(table.Rows, Row{
			ID: sub.ID,
			Cells: []string{
				sub.Email,
				sub.Date.OrNow(now).Format(DateLayout),
			},
		})
	}
	return table, subscribers
}

func emptyRow(text string, colspan int) *Placeholder {
	return &Placeholder{Text: text, Colspan: colspan}
}

func errorRow(text string, colspan int) *Placeholder {
	return &Placeholder{Text: text, Colspan: colspan, IsError: true}
}

func deleteConfirm(c sitepanel.Collection) string {
	return "Are you sure you want to delete this " + c.Singular() + "?"
}
