package frontend

import (
	"errors"
	"net/http"
	"strings"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/types"
	"github.com/flipr/sitepanel/ui/service"
)

// contactForm holds the contact form values and its banner.
type contactForm struct {
	Fullname string
	Email    string
	Mobile   string
	City     string
	Flash    *FlashMessage
}

// newsletterForm holds the newsletter form value and its banner.
type newsletterForm struct {
	Email string
	Flash *FlashMessage
}

// publicView is the data of the public landing page.
type publicView struct {
	Page       *service.PublicPage
	Contact    contactForm
	Newsletter newsletterForm
}

// adminView is the data of the admin panel page.
type adminView struct {
	Panel *service.PanelView

	// ShowAddForm opens the add form of the current table.
	ShowAddForm bool

	// Form holds the submitted add-form values when the submission failed.
	Form map[string]string

	LogoutConfirm string
}

// isHTMX reports whether the request came from an HTMX swap.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// logError logs an error if the logger is configured.
func (rt *router) logError(msg string, err error) {
	if rt.config.Logger != nil {
		rt.config.Logger.Warn(msg, "error", err.Error())
	}
}

// formValues copies the named form fields as entered.
func formValues(r *http.Request, names ...string) map[string]string {
	values := make(map[string]string, len(names))
	for _, name := range names {
		values[name] = r.PostFormValue(name)
	}
	return values
}

// Public site handlers

func (rt *router) handleHome(w http.ResponseWriter, r *http.Request) {
	rt.renderHome(w, r, publicView{})
}

func (rt *router) renderHome(w http.ResponseWriter, r *http.Request, view publicView) {
	view.Page = rt.svc.PublicPage(r.Context())
	data := rt.renderer.pageData(r, "Home", nil, view)
	if err := rt.renderer.render(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	v := formValues(r, "fullname", "email", "mobile", "city")
	res := rt.svc.SubmitContact(r.Context(), service.ContactAction{
		Fullname: v["fullname"],
		Email:    v["email"],
		Mobile:   v["mobile"],
		City:     v["city"],
	})

	form := contactForm{Flash: flashFrom(res.Flash)}
	if !res.ClearForm {
		form.Fullname, form.Email, form.Mobile, form.City = v["fullname"], v["email"], v["mobile"], v["city"]
	}
	view := publicView{Contact: form}

	if isHTMX(r) {
		data := rt.renderer.pageData(r, "", nil, view)
		if err := rt.renderer.renderFragment(w, "fragments/contact-form.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	rt.renderHome(w, r, view)
}

func (rt *router) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	res := rt.svc.Subscribe(r.Context(), service.SubscribeAction{Email: email})

	form := newsletterForm{Flash: flashFrom(res.Flash)}
	if !res.ClearForm {
		form.Email = email
	}
	view := publicView{Newsletter: form}

	if isHTMX(r) {
		data := rt.renderer.pageData(r, "", nil, view)
		if err := rt.renderer.renderFragment(w, "fragments/newsletter-form.html", data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	rt.renderHome(w, r, view)
}

// Admin panel handlers

func (rt *router) handleAdmin(w http.ResponseWriter, r *http.Request) {
	section, err := service.ParseSection(r.PathValue("section"))
	if err != nil {
		http.Error(w, "Section not found", http.StatusNotFound)
		return
	}

	panel := rt.svc.NewPanel()
	if err := panel.Navigate(r.Context(), section); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rt.renderAdmin(w, r, panel, nil, adminView{
		ShowAddForm: r.URL.Query().Get("add") == "1" && !rt.config.ReadOnly,
	})
}

func (rt *router) renderAdmin(w http.ResponseWriter, r *http.Request, panel *service.Panel, res *service.Result, view adminView) {
	view.Panel = panel.View()
	view.LogoutConfirm = service.LogoutConfirmMessage

	var flash *FlashMessage
	if res != nil {
		flash = flashFrom(res.Flash)
	}
	data := rt.renderer.pageData(r, view.Panel.Title, flash, view)
	if err := rt.renderer.render(w, "admin.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleAddProject(w http.ResponseWriter, r *http.Request) {
	if rt.config.ReadOnly {
		http.Error(w, "Admin is read-only", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	v := formValues(r, "name", "description", "image", "category", "location")
	panel := rt.svc.NewPanel()
	res := panel.AddProject(r.Context(), service.AddProjectAction{
		Name:        v["name"],
		Description: v["description"],
		Image:       v["image"],
		Category:    v["category"],
		Location:    v["location"],
	})

	rt.renderAdmin(w, r, panel, res, addFormState(res, v))
}

func (rt *router) handleAddClient(w http.ResponseWriter, r *http.Request) {
	if rt.config.ReadOnly {
		http.Error(w, "Admin is read-only", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	v := formValues(r, "name", "designation", "description", "image")
	panel := rt.svc.NewPanel()
	res := panel.AddClient(r.Context(), service.AddClientAction{
		Name:        v["name"],
		Designation: v["designation"],
		Description: v["description"],
		Image:       v["image"],
	})

	rt.renderAdmin(w, r, panel, res, addFormState(res, v))
}

// addFormState keeps the add form open with its values unless the
// submission succeeded.
func addFormState(res *service.Result, values map[string]string) adminView {
	if res.ClearForm {
		return adminView{}
	}
	return adminView{ShowAddForm: true, Form: values}
}

func (rt *router) handleDelete(w http.ResponseWriter, r *http.Request) {
	if rt.config.ReadOnly {
		http.Error(w, "Admin is read-only", http.StatusForbidden)
		return
	}

	coll := sitepanel.Collection(r.PathValue("collection"))
	if !coll.Deletable() {
		http.Error(w, "Collection not found", http.StatusNotFound)
		return
	}
	id := types.ID(r.PathValue("id"))
	if strings.TrimSpace(id.String()) == "" {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return
	}

	panel := rt.svc.NewPanel()
	res := panel.Delete(r.Context(), service.DeleteAction{Collection: coll, ID: id})
	rt.renderAdmin(w, r, panel, res, adminView{})
}

// HTMX fragment handlers

func (rt *router) handleFragmentDashboardStats(w http.ResponseWriter, r *http.Request) {
	counts, failed := rt.svc.Counts(r.Context())
	if len(failed) > 0 {
		rt.logError("dashboard stats refresh incomplete", errors.New(joinCollections(failed)))
	}

	data := map[string]any{
		"AdminPath":       rt.renderer.adminURL(),
		"RefreshInterval": int(rt.config.RefreshInterval.Seconds()),
		"Counts":          counts,
	}
	if err := rt.renderer.renderFragment(w, "fragments/dashboard-stats.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func joinCollections(cs []sitepanel.Collection) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return "failed collections: " + strings.Join(names, ", ")
}
