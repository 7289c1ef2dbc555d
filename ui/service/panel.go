package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/types"
)

// Section is one page of the admin panel.
type Section string

const (
	SectionDashboard  Section = "dashboard"
	SectionProjects   Section = "projects"
	SectionClients    Section = "clients"
	SectionContacts   Section = "contacts"
	SectionNewsletter Section = "newsletter"
)

// Sections lists the admin sections in sidebar order.
var Sections = []Section{
	SectionDashboard,
	SectionProjects,
	SectionClients,
	SectionContacts,
	SectionNewsletter,
}

// ParseSection returns the section named s.
// The empty string selects the dashboard.
func ParseSection(s string) (Section, error) {
	if s == "" {
		return SectionDashboard, nil
	}
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// String returns the section name.
func (s Section) String() string {
	return string(s)
}

// Title returns the heading shown above the section.
func (s Section) Title() string {
	switch s {
	case SectionDashboard:
		return "Dashboard"
	case SectionProjects:
		return "Projects"
	case SectionClients:
		return "Clients"
	case SectionContacts:
		return "Contact Submissions"
	case SectionNewsletter:
		return "Newsletter Subscribers"
	default:
		return string(s)
	}
}

// Icon returns the Font Awesome class of the sidebar entry.
func (s Section) Icon() string {
	switch s {
	case SectionDashboard:
		return "fa-tachometer-alt"
	case SectionProjects:
		return "fa-project-diagram"
	case SectionClients:
		return "fa-users"
	case SectionContacts:
		return "fa-envelope"
	case SectionNewsletter:
		return "fa-newspaper"
	default:
		return "fa-circle"
	}
}

// Collection returns the API collection behind a table section.
// The dashboard has none.
func (s Section) Collection() (sitepanel.Collection, bool) {
	switch s {
	case SectionProjects:
		return sitepanel.Projects, true
	case SectionClients:
		return sitepanel.Clients, true
	case SectionContacts:
		return sitepanel.Contacts, true
	case SectionNewsletter:
		return sitepanel.Newsletter, true
	}
	return "", false
}

// SectionFor returns the admin section that shows collection c.
func SectionFor(c sitepanel.Collection) (Section, bool) {
	for _, s := range Sections {
		if coll, ok := s.Collection(); ok && coll == c {
			return s, true
		}
	}
	return "", false
}

// Panel is the state of one admin panel view: the active section and the
// data last loaded for it. It is not safe for concurrent use.
type Panel struct {
	svc     *Service
	current Section

	projects    []types.Project
	clients     []types.Client
	contacts    []types.Contact
	subscribers []types.Subscriber

	dashboard *Dashboard
	table     *Table
	counts    *Counts
}

// NewPanel returns a panel showing the dashboard. Nothing is loaded until
// Navigate is called.
func (s *Service) NewPanel() *Panel {
	return &Panel{svc: s, current: SectionDashboard}
}

// Current returns the active section.
func (p *Panel) Current() Section {
	return p.current
}

// Navigate makes section the only visible one, discards previously loaded
// records and reloads the section's data.
func (p *Panel) Navigate(ctx context.Context, section Section) error {
	if _, err := ParseSection(string(section)); err != nil {
		return err
	}

	p.current = section
	p.projects, p.clients, p.contacts, p.subscribers = nil, nil, nil, nil
	p.dashboard, p.table = nil, nil

	p.reload(ctx)
	return nil
}

func (p *Panel) reload(ctx context.Context) {
	switch p.current {
	case SectionDashboard:
		p.dashboard = p.svc.Dashboard(ctx)
		counts := p.dashboard.Counts
		p.counts = &counts
	case SectionProjects:
		p.table, p.projects = p.svc.ProjectsTable(ctx)
	case SectionClients:
		p.table, p.clients = p.svc.ClientsTable(ctx)
	case SectionContacts:
		p.table, p.contacts = p.svc.ContactsTable(ctx)
	case SectionNewsletter:
		p.table, p.subscribers = p.svc.SubscribersTable(ctx)
	}
}

// refreshCounts reloads the dashboard totals after a mutation.
func (p *Panel) refreshCounts(ctx context.Context) {
	counts, _ := p.svc.Counts(ctx)
	p.counts = &counts
	if p.dashboard != nil {
		p.dashboard.Counts = counts
	}
}

// Projects returns the projects loaded by the last navigation.
func (p *Panel) Projects() []types.Project { return p.projects }

// Clients returns the clients loaded by the last navigation.
func (p *Panel) Clients() []types.Client { return p.clients }

// Contacts returns the contacts loaded by the last navigation.
func (p *Panel) Contacts() []types.Contact { return p.contacts }

// Subscribers returns the subscribers loaded by the last navigation.
func (p *Panel) Subscribers() []types.Subscriber { return p.subscribers }

// View returns the view model of the active section.
func (p *Panel) View() *PanelView {
	view := &PanelView{
		Section: p.current,
		Title:   p.current.Title(),
		Nav:     make([]NavItem, 0, len(Sections)),
		Counts:  p.counts,
	}
	for _, s := range Sections {
		view.Nav = append(view.Nav, NavItem{
			Section: s,
			Title:   s.Title(),
			Icon:    s.Icon(),
			Active:  s == p.current,
		})
	}
	if p.current == SectionDashboard {
		view.Dashboard = p.dashboard
	} else {
		view.Table = p.table
	}
	return view
}

// AddProject submits the add-project form, then reloads the projects table
// and the dashboard counts.
func (p *Panel) AddProject(ctx context.Context, a AddProjectAction) *Result {
	return p.add(ctx, SectionProjects, a)
}

// AddClient submits the add-client form, then reloads the clients table and
// the dashboard counts.
func (p *Panel) AddClient(ctx context.Context, a AddClientAction) *Result {
	return p.add(ctx, SectionClients, a)
}

func (p *Panel) add(ctx context.Context, section Section, a Action) *Result {
	coll, _ := section.Collection()
	noun := coll.Singular()

	err := p.svc.Dispatch(ctx, a, nil)
	res := p.mutationResult(err, "error adding "+noun,
		capitalize(noun)+" added successfully!",
		"Error: "+sitepanel.ServerMessage(err, "Failed to add "+noun),
	)

	p.current = section
	p.reload(ctx)
	if res.OK {
		p.refreshCounts(ctx)
	}
	return res
}

// Delete removes one project or client and reloads the matching table and
// the dashboard counts. The caller is responsible for confirmation.
func (p *Panel) Delete(ctx context.Context, a DeleteAction) *Result {
	section, ok := SectionFor(a.Collection)
	if !ok || !a.Collection.Deletable() {
		return &Result{Flash: &Flash{Type: FlashError, Message: fmt.Sprintf("Failed to delete %s.", a.Collection.Singular())}}
	}
	noun := a.Collection.Singular()

	err := p.svc.Dispatch(ctx, a, nil)
	if errors.Is(err, sitepanel.ErrInvalidID) {
		return &Result{Flash: &Flash{Type: FlashError, Message: "Failed to delete " + noun + "."}}
	}
	res := p.mutationResult(err, "error deleting "+noun,
		capitalize(noun)+" deleted successfully!",
		"Failed to delete "+noun+".",
	)

	p.current = section
	p.reload(ctx)
	if res.OK {
		p.refreshCounts(ctx)
	}
	return res
}

// mutationResult maps an admin mutation outcome to a banner. Admin banners
// stay until the next page view.
func (p *Panel) mutationResult(err error, logMsg, success, failure string) *Result {
	switch {
	case err == nil:
		return &Result{
			OK:        true,
			Planned:   true,
			ClearForm: true,
			Flash:     &Flash{Type: FlashSuccess, Message: success},
		}
	case errors.Is(err, sitepanel.ErrNetwork):
		p.svc.logWarn(logMsg, err)
		return &Result{Planned: true, Flash: &Flash{Type: FlashError, Message: NetworkErrorMessage}}
	default:
		p.svc.logWarn(logMsg, err)
		return &Result{Planned: true, Flash: &Flash{Type: FlashError, Message: failure}}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
