package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/internal/testutil"
	"github.com/flipr/sitepanel/types"
)

func TestDashboard_IsolatedFailures(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "projects", types.Project{ID: "1"}, types.Project{ID: "2"}, types.Project{ID: "3"})
	api.Seed(t, "clients", types.Client{ID: "1"})
	api.Seed(t, "newsletter", types.Subscriber{Email: "a@b.co"}, types.Subscriber{Email: "c@d.co"})
	api.Respond(http.MethodGet, "/contacts", http.StatusInternalServerError, `{}`)
	svc := newTestService(t, api.URL())

	d := svc.Dashboard(context.Background())

	want := Counts{Projects: 3, Clients: 1, Contacts: 0, Subscribers: 2}
	if d.Counts != want {
		t.Errorf("Counts = %+v, want %+v", d.Counts, want)
	}
	if len(d.Failed) != 1 || d.Failed[0] != sitepanel.Contacts {
		t.Errorf("Failed = %v, want [contacts]", d.Failed)
	}
	if d.Activity.Empty != ActivityEmpty {
		t.Errorf("Activity = %+v, want empty", d.Activity)
	}
}

func TestDashboard_Activity(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "activity", types.Activity{
		Icon:        "fa-user-plus",
		Title:       "New subscriber",
		Description: "a@b.co joined",
		Time:        "2 hours ago",
	})
	svc := newTestService(t, api.URL())

	feed := svc.ActivityFeed(context.Background())
	if len(feed.Items) != 1 || feed.Items[0].Icon != "fa-user-plus" {
		t.Errorf("feed = %+v", feed)
	}

	api.Respond(http.MethodGet, "/activity", http.StatusBadGateway, `{}`)
	feed = svc.ActivityFeed(context.Background())
	if feed.Error != ActivityLoadFailed {
		t.Errorf("feed = %+v, want error", feed)
	}
}

func TestTables_EmptyPlaceholders(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	svc := newTestService(t, api.URL())
	ctx := context.Background()

	projects, _ := svc.ProjectsTable(ctx)
	clients, _ := svc.ClientsTable(ctx)
	contacts, _ := svc.ContactsTable(ctx)
	subscribers, _ := svc.SubscribersTable(ctx)

	tests := []struct {
		table   *Table
		text    string
		colspan int
	}{
		{projects, ProjectsEmptyAdmin, 5},
		{clients, ClientsEmptyAdmin, 5},
		{contacts, ContactsEmptyAdmin, 5},
		{subscribers, SubscribersEmptyAdmin, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.table.Section), func(t *testing.T) {
			if len(tt.table.Rows) != 0 {
				t.Errorf("rows = %d, want 0", len(tt.table.Rows))
			}
			p := tt.table.Placeholder
			if p == nil || p.Text != tt.text || p.Colspan != tt.colspan || p.IsError {
				t.Errorf("placeholder = %+v, want %q colspan %d", p, tt.text, tt.colspan)
			}
		})
	}
}

func TestTables_LoadFailure(t *testing.T) {
	svc := newTestService(t, testutil.DeadURL(t))

	table, records := svc.ProjectsTable(context.Background())
	if records != nil {
		t.Errorf("records = %v, want nil", records)
	}
	p := table.Placeholder
	if p == nil || !p.IsError || p.Text != "Failed to load projects." || p.Colspan != 5 {
		t.Errorf("placeholder = %+v", p)
	}
}

func TestProjectsTable_Rows(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	long := strings.Repeat("x", 60)
	api.Seed(t, "projects",
		types.Project{ID: "1", Name: "One", Description: long},
		types.Project{ID: "2", Name: "Two", Description: "short", Category: "Web", Image: "two.png"},
	)
	svc := newTestService(t, api.URL())

	table, projects := svc.ProjectsTable(context.Background())
	if len(projects) != 2 || len(table.Rows) != 2 {
		t.Fatalf("rows = %d, records = %d, want 2", len(table.Rows), len(projects))
	}
	if table.Placeholder != nil {
		t.Errorf("unexpected placeholder %+v", table.Placeholder)
	}

	first := table.Rows[0]
	if first.ID != "1" || first.Image != AdminThumbnailPlaceholder {
		t.Errorf("first row = %+v", first)
	}
	if first.Cells[1] != strings.Repeat("x", 50)+"..." {
		t.Errorf("description = %q, want truncated", first.Cells[1])
	}
	if first.Cells[2] != AdminMissingCategory {
		t.Errorf("category = %q, want %q", first.Cells[2], AdminMissingCategory)
	}
	if !first.Actions {
		t.Error("project rows should carry actions")
	}

	second := table.Rows[1]
	if second.Image != "two.png" || second.Cells[1] != "short" || second.Cells[2] != "Web" {
		t.Errorf("second row = %+v", second)
	}
}

func TestContactsTable_Dates(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "contacts",
		types.Contact{ID: "1", Fullname: "Ann", Date: types.Date{Time: time.Date(2023, 12, 25, 9, 0, 0, 0, time.UTC)}},
		types.Contact{ID: "2", Fullname: "Bob"},
	)
	svc := newTestService(t, api.URL())

	table, _ := svc.ContactsTable(context.Background())
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if got := table.Rows[0].Cells[4]; got != "12/25/2023" {
		t.Errorf("date = %q, want 12/25/2023", got)
	}
	if got := table.Rows[1].Cells[4]; got != "3/7/2024" {
		t.Errorf("missing date = %q, want today 3/7/2024", got)
	}
	if table.Rows[0].Actions || table.CanAdd {
		t.Error("contacts table should be read-only")
	}
}

func TestPanel_Navigate(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "clients", types.Client{ID: "7", Name: "Acme"})
	svc := newTestService(t, api.URL())
	ctx := context.Background()

	panel := svc.NewPanel()
	if panel.Current() != SectionDashboard {
		t.Errorf("initial section = %q", panel.Current())
	}

	if err := panel.Navigate(ctx, SectionClients); err != nil {
		t.Fatalf("Navigate() error = %v", err)
	}
	view := panel.View()
	if view.Dashboard != nil || view.Table == nil {
		t.Fatalf("view = %+v, want only the clients table", view)
	}
	active := 0
	for _, item := range view.Nav {
		if item.Active {
			active++
			if item.Section != SectionClients {
				t.Errorf("active nav = %q", item.Section)
			}
		}
	}
	if active != 1 {
		t.Errorf("active nav entries = %d, want 1", active)
	}
	if len(panel.Clients()) != 1 {
		t.Errorf("clients = %d, want 1", len(panel.Clients()))
	}

	if err := panel.Navigate(ctx, SectionDashboard); err != nil {
		t.Fatalf("Navigate() error = %v", err)
	}
	if panel.Clients() != nil {
		t.Error("navigation should discard previously loaded records")
	}
	if panel.View().Dashboard == nil {
		t.Error("dashboard view missing")
	}

	if err := panel.Navigate(ctx, Section("bogus")); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestPanel_DeleteProject(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "projects",
		types.Project{ID: "41", Name: "Keep"},
		types.Project{ID: "42", Name: "Remove"},
	)
	svc := newTestService(t, api.URL())
	panel := svc.NewPanel()

	res := panel.Delete(context.Background(), DeleteAction{Collection: sitepanel.Projects, ID: "42"})
	if !res.OK || res.Flash.Message != "Project deleted successfully!" {
		t.Fatalf("Delete() = %+v", res)
	}
	if api.Count(http.MethodDelete, "/projects/42") != 1 {
		t.Error("expected DELETE /projects/42")
	}
	if panel.Current() != SectionProjects {
		t.Errorf("section = %q, want projects", panel.Current())
	}
	for _, p := range panel.Projects() {
		if p.ID == "42" {
			t.Error("reloaded table still contains project 42")
		}
	}
	if view := panel.View(); view.Counts == nil || view.Counts.Projects != 1 {
		t.Errorf("counts = %+v, want 1 project", view.Counts)
	}
}

func TestPanel_DeleteFailure(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	svc := newTestService(t, api.URL())
	panel := svc.NewPanel()

	res := panel.Delete(context.Background(), DeleteAction{Collection: sitepanel.Clients, ID: "404"})
	if res.OK || res.Flash.Message != "Failed to delete client." {
		t.Errorf("Delete() = %+v", res)
	}
	if panel.View().Counts != nil {
		t.Error("counts should not refresh after a failed delete")
	}
}

func TestPanel_DeleteNotAllowed(t *testing.T) {
	backend := &recordingBackend{}
	panel := New(backend, nil).NewPanel()

	res := panel.Delete(context.Background(), DeleteAction{Collection: sitepanel.Contacts, ID: "1"})
	if res.OK || res.Planned {
		t.Errorf("Delete() = %+v", res)
	}
	if len(backend.requests) != 0 {
		t.Errorf("sent %d requests, want 0", len(backend.requests))
	}
}

func TestPanel_AddProject(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	svc := newTestService(t, api.URL())
	panel := svc.NewPanel()

	res := panel.AddProject(context.Background(), AddProjectAction{Name: "New", Description: "d"})
	if !res.OK || !res.ClearForm || res.Flash.Message != "Project added successfully!" {
		t.Fatalf("AddProject() = %+v", res)
	}
	if len(panel.Projects()) != 1 || panel.Projects()[0].Name != "New" {
		t.Errorf("projects = %+v", panel.Projects())
	}
	if panel.View().Counts.Projects != 1 {
		t.Errorf("counts = %+v", panel.View().Counts)
	}
}

func TestPanel_AddClientRejected(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Respond(http.MethodPost, "/clients", http.StatusBadRequest, `{"message":"Name is required"}`)
	svc := newTestService(t, api.URL())
	panel := svc.NewPanel()

	res := panel.AddClient(context.Background(), AddClientAction{})
	if res.OK || res.ClearForm {
		t.Fatalf("AddClient() = %+v, want failure", res)
	}
	if res.Flash.Message != "Error: Name is required" {
		t.Errorf("message = %q", res.Flash.Message)
	}
	if panel.Current() != SectionClients {
		t.Errorf("section = %q, want clients", panel.Current())
	}

	api.Respond(http.MethodPost, "/clients", http.StatusBadRequest, `oops`)
	res = panel.AddClient(context.Background(), AddClientAction{})
	if res.Flash.Message != "Error: Failed to add client" {
		t.Errorf("message = %q", res.Flash.Message)
	}
}
