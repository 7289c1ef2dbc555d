// Package testutil provides test utilities for sitepanel
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// RecordedRequest is one request seen by the fake API
type RecordedRequest struct {
	Method string
	Path   string
	Body   string
	Header http.Header
}

// cannedResponse replaces the fake's normal behaviour for one route
type cannedResponse struct {
	status int
	body   string
}

// FakeAPI is an in-memory stand-in for the REST collaborator.
// Collections live under /api/{collection}; GET lists, POST appends,
// DELETE /api/{collection}/{id} removes.
type FakeAPI struct {
	Server *httptest.Server

	mu          sync.Mutex
	collections map[string][]map[string]any
	overrides   map[string]cannedResponse
	requests    []RecordedRequest
	nextID      int
}

// NewFakeAPI starts a fake API server that is closed when the test ends
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		collections: map[string][]map[string]any{
			"projects":   {},
			"clients":    {},
			"contacts":   {},
			"newsletter": {},
			"activity":   {},
		},
		overrides: make(map[string]cannedResponse),
		nextID:    1000,
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the API base URL (including the /api prefix)
func (f *FakeAPI) URL() string {
	return f.Server.URL + "/api"
}

// Seed appends records to a collection. Records are stored as their JSON form.
func (f *FakeAPI) Seed(t *testing.T, collection string, records ...any) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("Failed to marshal seed record: %v", err)
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("Failed to unmarshal seed record: %v", err)
		}
		f.collections[collection] = append(f.collections[collection], m)
	}
}

// Respond makes every request matching method and path return status and body
func (f *FakeAPI) Respond(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides[method+" "+path] = cannedResponse{status: status, body: body}
}

// Len returns the number of records in a collection
func (f *FakeAPI) Len(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.collections[collection])
}

// Requests returns a copy of all recorded requests
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Count returns how many requests matched method and path
func (f *FakeAPI) Count(method, path string) int {
	n := 0
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")

	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, RecordedRequest{
		Method: r.Method,
		Path:   path,
		Body:   string(body),
		Header: r.Header.Clone(),
	})

	if canned, ok := f.overrides[r.Method+" "+path]; ok {
		writeRaw(w, canned.status, canned.body)
		return
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	records, known := f.collections[parts[0]]
	if !known {
		writeRaw(w, http.StatusNotFound, `{"message":"Not found"}`)
		return
	}

	switch {
	case r.Method == http.MethodGet && len(parts) == 1:
		writeJSON(w, http.StatusOK, records)

	case r.Method == http.MethodPost && len(parts) == 1:
		var rec map[string]any
		if err := json.Unmarshal(body, &rec); err != nil {
			writeRaw(w, http.StatusBadRequest, `{"message":"Invalid JSON"}`)
			return
		}
		f.nextID++
		rec["id"] = strconv.Itoa(f.nextID)
		f.collections[parts[0]] = append(records, rec)
		writeJSON(w, http.StatusCreated, rec)

	case r.Method == http.MethodDelete && len(parts) == 2:
		for i, rec := range records {
			if idString(rec["id"]) == parts[1] {
				f.collections[parts[0]] = append(records[:i:i], records[i+1:]...)
				writeRaw(w, http.StatusOK, `{"message":"Deleted"}`)
				return
			}
		}
		writeRaw(w, http.StatusNotFound, `{"message":"Not found"}`)

	default:
		writeRaw(w, http.StatusMethodNotAllowed, `{"message":"Method not allowed"}`)
	}
}

func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// DeadURL returns the base URL of a server that has already been shut down,
// so every request to it fails at the transport level.
func DeadURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/api"
	srv.Close()
	return url
}
