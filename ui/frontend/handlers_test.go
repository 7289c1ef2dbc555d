package frontend

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/internal/testutil"
	"github.com/flipr/sitepanel/types"
	"github.com/flipr/sitepanel/ui/service"
)

func newTestRouter(t *testing.T, api *testutil.FakeAPI, cfg *Config) http.Handler {
	t.Helper()
	client, err := sitepanel.NewClient(&sitepanel.ClientConfig{BaseURL: api.URL()})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if cfg == nil {
		cfg = &Config{AdminPath: "/admin", RefreshInterval: 30 * time.Second}
	}
	return NewRouter(service.New(client, nil), cfg)
}

func serve(t *testing.T, h http.Handler, req *http.Request) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code, rec.Body.String()
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHome_RendersCards(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "projects", types.Project{ID: "1", Name: "Lakeside Villa", Description: "Sizes 2*3*4, <b>new</b> wing\n# Villa"})
	api.Seed(t, "clients", types.Client{ID: "1", Name: "Rowan Hale", Designation: "CEO", Description: "Great team"})
	h := newTestRouter(t, api, nil)

	code, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	for _, want := range []string{
		"Lakeside Villa",
		"Sizes 2*3*4, <b>new</b> wing\n# Villa",
		"Rowan Hale",
		"CEO",
		`"Great team"`,
		service.DefaultProjectCategory,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "<em>3</em>") || strings.Contains(body, "<h1>Villa") {
		t.Error("description should not be reformatted")
	}
}

func TestHome_EmptyAndFailed(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Respond(http.MethodGet, "/clients", http.StatusInternalServerError, `{}`)
	h := newTestRouter(t, api, nil)

	_, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(body, service.ProjectsEmptyPublic) {
		t.Error("missing empty projects message")
	}
	if !strings.Contains(body, service.ClientsLoadFailedPublic) {
		t.Error("missing clients failure message")
	}
	if strings.Contains(body, "project-card") {
		t.Error("unexpected project card")
	}
}

func TestSafeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Plain 2*3*4", "Plain 2*3*4"},
		{"<b>bold</b> text", "<b>bold</b> text"},
		{"hi <script>alert(1)</script>", "hi "},
		{`<b onclick="alert(1)">hi</b>`, `<b>hi</b>`},
	}
	for _, tt := range tests {
		if got := string(safeHTML(tt.in)); got != tt.want {
			t.Errorf("safeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPathEscape(t *testing.T) {
	if got := pathEscape(types.ID("7?x/y")); got != "7%3Fx%2Fy" {
		t.Errorf("pathEscape() = %q", got)
	}
	if got := pathEscape("42"); got != "42" {
		t.Errorf("pathEscape() = %q", got)
	}
}

func TestContact_ForwardsValuesAsEntered(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	h := newTestRouter(t, api, nil)

	serve(t, h, postForm("/contact", url.Values{
		"fullname": {"  Ann Lee "},
		"email":    {"ann@x.io"},
		"mobile":   {"555"},
		"city":     {" Oslo"},
	}))

	var body string
	for _, r := range api.Requests() {
		if r.Method == http.MethodPost && r.Path == "/contacts" {
			body = r.Body
		}
	}
	if !strings.Contains(body, `"fullname":"  Ann Lee "`) || !strings.Contains(body, `"city":" Oslo"`) {
		t.Errorf("body = %q, want values untouched", body)
	}
}

func TestContact_HTMXFragment(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	h := newTestRouter(t, api, nil)

	req := postForm("/contact", url.Values{
		"fullname": {"Ann Lee"},
		"email":    {"ann@x.io"},
		"mobile":   {"555"},
		"city":     {"Oslo"},
	})
	req.Header.Set("HX-Request", "true")
	code, body := serve(t, h, req)

	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if strings.Contains(body, "<html") {
		t.Error("HTMX response should be a fragment")
	}
	if !strings.Contains(body, "Thank you! Your message has been sent successfully.") {
		t.Error("missing success banner")
	}
	if !strings.Contains(body, `data-auto-hide="5000"`) {
		t.Error("success banner should auto-hide after 5000ms")
	}
	if strings.Contains(body, `value="Ann Lee"`) {
		t.Error("form should be cleared after success")
	}
	if api.Count(http.MethodPost, "/contacts") != 1 {
		t.Error("expected one POST /contacts")
	}
}

func TestContact_RejectedKeepsValues(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Respond(http.MethodPost, "/contacts", http.StatusBadRequest, `{"message":"Email invalid"}`)
	h := newTestRouter(t, api, nil)

	_, body := serve(t, h, postForm("/contact", url.Values{"fullname": {"Ann Lee"}, "email": {"bad"}}))
	if !strings.Contains(body, "Error: Email invalid") {
		t.Error("missing server message")
	}
	if !strings.Contains(body, `value="Ann Lee"`) {
		t.Error("form values should be kept after a failure")
	}
	if !strings.Contains(body, "<html") {
		t.Error("plain POST should render the full page")
	}
}

func TestNewsletter_InvalidEmail(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	h := newTestRouter(t, api, nil)

	req := postForm("/newsletter", url.Values{"email": {"nope"}})
	req.Header.Set("HX-Request", "true")
	_, body := serve(t, h, req)

	if !strings.Contains(body, service.NewsletterInvalidMessage) {
		t.Error("missing invalid email message")
	}
	if api.Count(http.MethodPost, "/newsletter") != 0 {
		t.Error("invalid email must not reach the API")
	}
}

func TestAdmin_Sections(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "projects", types.Project{ID: "9", Name: "Harbor Loft"})
	h := newTestRouter(t, api, nil)

	tests := []struct {
		path string
		code int
		want string
	}{
		{"/admin", http.StatusOK, "Recent Activity"},
		{"/admin/projects", http.StatusOK, "Harbor Loft"},
		{"/admin/clients", http.StatusOK, service.ClientsEmptyAdmin},
		{"/admin/contacts", http.StatusOK, service.ContactsEmptyAdmin},
		{"/admin/newsletter", http.StatusOK, `colspan="2"`},
		{"/admin/settings", http.StatusNotFound, "Section not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, body := serve(t, h, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if code != tt.code {
				t.Fatalf("status = %d, want %d", code, tt.code)
			}
			if !strings.Contains(body, tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}
}

func TestAdmin_AddProject(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	h := newTestRouter(t, api, nil)

	_, body := serve(t, h, postForm("/admin/projects", url.Values{"name": {"Canal House"}}))
	if !strings.Contains(body, "Project added successfully!") {
		t.Error("missing success banner")
	}
	if !strings.Contains(body, "Canal House") {
		t.Error("reloaded table should contain the new project")
	}
	if api.Len("projects") != 1 {
		t.Errorf("projects = %d, want 1", api.Len("projects"))
	}
}

func TestAdmin_AddClientFailureKeepsForm(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Respond(http.MethodPost, "/clients", http.StatusBadRequest, `{}`)
	h := newTestRouter(t, api, nil)

	_, body := serve(t, h, postForm("/admin/clients", url.Values{"name": {"Iris Vale"}, "designation": {"CTO"}}))
	if !strings.Contains(body, "Error: Failed to add client") {
		t.Error("missing failure banner")
	}
	if !strings.Contains(body, `value="Iris Vale"`) {
		t.Error("add form should keep its values")
	}
}

func TestAdmin_Delete(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "projects", types.Project{ID: "42", Name: "Old Mill"})
	h := newTestRouter(t, api, nil)

	_, body := serve(t, h, postForm("/admin/projects/42/delete", nil))
	if !strings.Contains(body, "Project deleted successfully!") {
		t.Error("missing success banner")
	}
	if strings.Contains(body, "Old Mill") {
		t.Error("deleted project still listed")
	}
	if api.Count(http.MethodDelete, "/projects/42") != 1 {
		t.Error("expected DELETE /projects/42")
	}

	code, _ := serve(t, h, postForm("/admin/contacts/1/delete", nil))
	if code != http.StatusNotFound {
		t.Errorf("delete contact status = %d, want 404", code)
	}
}

func TestAdmin_DeleteEscapesID(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "projects", types.Project{ID: "7?x", Name: "Odd Id"})
	h := newTestRouter(t, api, nil)

	_, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/admin/projects", nil))
	if !strings.Contains(body, `action="/admin/projects/7%3Fx/delete"`) {
		t.Fatalf("delete action not escaped: %s", body)
	}

	_, body = serve(t, h, postForm("/admin/projects/7%3Fx/delete", nil))
	if !strings.Contains(body, "Project deleted successfully!") {
		t.Error("missing success banner")
	}
	if api.Count(http.MethodDelete, "/projects/7?x") != 1 {
		t.Error("expected DELETE of the escaped id")
	}
}

func TestAdmin_ReadOnly(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "projects", types.Project{ID: "1", Name: "Quay"})
	h := newTestRouter(t, api, &Config{AdminPath: "/admin", ReadOnly: true, RefreshInterval: time.Minute})

	code, _ := serve(t, h, postForm("/admin/projects", url.Values{"name": {"x"}}))
	if code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", code)
	}
	_, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/admin/projects", nil))
	if strings.Contains(body, "delete-btn") || strings.Contains(body, "add-projects-form") {
		t.Error("read-only admin should hide add and delete controls")
	}
	if api.Count(http.MethodPost, "/projects") != 0 {
		t.Error("read-only admin must not reach the API")
	}
}

func TestFragmentDashboardStats(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Seed(t, "clients", types.Client{ID: "1"}, types.Client{ID: "2"})
	h := newTestRouter(t, api, nil)

	code, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/admin/fragments/dashboard-stats", nil))
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if !strings.Contains(body, `id="total-clients">2<`) {
		t.Errorf("body = %s", body)
	}
	if !strings.Contains(body, "every 30s") {
		t.Error("missing refresh trigger")
	}
}

func TestInitials(t *testing.T) {
	if got := initials("rowan kai hale"); got != "RK" {
		t.Errorf("initials() = %q, want RK", got)
	}
	if got := initials(""); got != "" {
		t.Errorf("initials(\"\") = %q", got)
	}
}
