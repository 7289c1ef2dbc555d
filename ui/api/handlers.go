package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/types"
	"github.com/flipr/sitepanel/ui/service"
)

// maxBodySize caps JSON request bodies.
const maxBodySize = 1 << 20

// Response wraps all API responses.
type Response struct {
	Data  any       `json:"data,omitempty"`
	Error *APIError `json:"error,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// FlashResponse is a banner with its auto-hide delay in milliseconds.
type FlashResponse struct {
	Type       service.FlashType `json:"type"`
	Message    string            `json:"message"`
	AutoHideMs int64             `json:"auto_hide_ms,omitempty"`
}

// ResultResponse is the outcome of a submitted action.
type ResultResponse struct {
	OK        bool           `json:"ok"`
	Planned   bool           `json:"planned"`
	ClearForm bool           `json:"clear_form"`
	Flash     *FlashResponse `json:"flash,omitempty"`
}

func toResultResponse(res *service.Result) *ResultResponse {
	out := &ResultResponse{
		OK:        res.OK,
		Planned:   res.Planned,
		ClearForm: res.ClearForm,
	}
	if res.Flash != nil {
		out.Flash = &FlashResponse{
			Type:       res.Flash.Type,
			Message:    res.Flash.Message,
			AutoHideMs: res.Flash.AutoHideMillis(),
		}
	}
	return out
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Error: &APIError{Code: code, Message: message},
	})
}

// writeResult writes an action outcome. Rejected and failed actions still
// carry the result so callers can show the banner.
func writeResult(w http.ResponseWriter, okStatus int, res *service.Result) {
	status := okStatus
	switch {
	case !res.Planned:
		status = http.StatusUnprocessableEntity
	case !res.OK:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, toResultResponse(res))
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// checkWritable rejects mutations in read-only mode.
func (rt *router) checkWritable(w http.ResponseWriter) bool {
	if rt.config.ReadOnly {
		writeError(w, http.StatusForbidden, "read_only", "the admin API is read-only")
		return false
	}
	return true
}

// Public handlers

func (rt *router) handlePublic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.svc.PublicPage(r.Context()))
}

func (rt *router) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var in types.ContactInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res := rt.svc.SubmitContact(r.Context(), service.ContactAction{
		Fullname: in.Fullname,
		Email:    in.Email,
		Mobile:   in.Mobile,
		City:     in.City,
	})
	writeResult(w, http.StatusCreated, res)
}

func (rt *router) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var in types.SubscriptionInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res := rt.svc.Subscribe(r.Context(), service.SubscribeAction{Email: in.Email})
	writeResult(w, http.StatusCreated, res)
}

// Dashboard handlers

func (rt *router) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.svc.Dashboard(r.Context()))
}

func (rt *router) handleDashboardEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "sse_not_supported", "SSE not supported")
		return
	}

	send := func() {
		counts, _ := rt.svc.Counts(r.Context())
		data, _ := json.Marshal(counts)
		_, _ = w.Write([]byte("event: stats\ndata: "))
		_, _ = w.Write(data)
		_, _ = w.Write([]byte("\n\n"))
		flusher.Flush()
	}

	interval := rt.config.RefreshInterval
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	send()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			send()
		}
	}
}

// Section handlers

func (rt *router) handleSection(w http.ResponseWriter, r *http.Request) {
	section, err := service.ParseSection(r.PathValue("section"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	panel := rt.svc.NewPanel()
	if err := panel.Navigate(r.Context(), section); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, panel.View())
}

func (rt *router) handleAddProject(w http.ResponseWriter, r *http.Request) {
	if !rt.checkWritable(w) {
		return
	}
	var in types.ProjectInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res := rt.svc.NewPanel().AddProject(r.Context(), service.AddProjectAction{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Category:    in.Category,
		Location:    in.Location,
	})
	writeResult(w, http.StatusCreated, res)
}

func (rt *router) handleAddClient(w http.ResponseWriter, r *http.Request) {
	if !rt.checkWritable(w) {
		return
	}
	var in types.ClientInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res := rt.svc.NewPanel().AddClient(r.Context(), service.AddClientAction{
		Name:        in.Name,
		Designation: in.Designation,
		Description: in.Description,
		Image:       in.Image,
	})
	writeResult(w, http.StatusCreated, res)
}

func (rt *router) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	rt.handleDelete(w, r, sitepanel.Projects)
}

func (rt *router) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	rt.handleDelete(w, r, sitepanel.Clients)
}

func (rt *router) handleDelete(w http.ResponseWriter, r *http.Request, coll sitepanel.Collection) {
	if !rt.checkWritable(w) {
		return
	}

	action := service.DeleteAction{Collection: coll, ID: types.ID(r.PathValue("id"))}
	if _, err := action.Plan(); err != nil {
		if errors.Is(err, sitepanel.ErrInvalidID) {
			writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
			return
		}
		writeError(w, http.StatusNotFound, "not_found", err.Error())
		return
	}

	res := rt.svc.NewPanel().Delete(r.Context(), action)
	writeResult(w, http.StatusOK, res)
}
