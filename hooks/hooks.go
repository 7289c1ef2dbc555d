package hooks

import (
	"context"
	"sync"
	"time"
)

// RequestInfo describes an outgoing API request.
type RequestInfo struct {
	RequestID string
	Method    string
	URL       string
	Body      []byte
}

// ResponseInfo describes the outcome of an API request.
// StatusCode is zero when the request never produced a response.
type ResponseInfo struct {
	RequestID  string
	Method     string
	URL        string
	StatusCode int
	Duration   time.Duration
	Err        error
}

// BeforeRequestHook is called before a request is sent to the API
type BeforeRequestHook func(ctx context.Context, req *RequestInfo)

// AfterResponseHook is called once a request has completed or failed
type AfterResponseHook func(ctx context.Context, resp *ResponseInfo)

// Registry holds all registered hooks
type Registry struct {
	mu            sync.RWMutex
	beforeRequest []BeforeRequestHook
	afterResponse []AfterResponseHook
}

// NewRegistry creates a new hook registry
func NewRegistry() *Registry {
	return &Registry{
		beforeRequest: []BeforeRequestHook{},
		afterResponse: []AfterResponseHook{},
	}
}

// OnBeforeRequest registers a hook to be called before each request
func (r *Registry) OnBeforeRequest(hook BeforeRequestHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beforeRequest = append(r.beforeRequest, hook)
}

// OnAfterResponse registers a hook to be called after each request
func (r *Registry) OnAfterResponse(hook AfterResponseHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.afterResponse = append(r.afterResponse, hook)
}

// TriggerBeforeRequest calls all registered before-request hooks
func (r *Registry) TriggerBeforeRequest(ctx context.Context, req *RequestInfo) {
	if r == nil {
		return
	}
	r.mu.RLock()
	hooks := make([]BeforeRequestHook, len(r.beforeRequest))
	copy(hooks, r.beforeRequest)
	r.mu.RUnlock()

	for _, hook := range hooks {
		hook(ctx, req)
	}
}

// TriggerAfterResponse calls all registered after-response hooks
func (r *Registry) TriggerAfterResponse(ctx context.Context, resp *ResponseInfo) {
	if r == nil {
		return
	}
	r.mu.RLock()
	hooks := make([]AfterResponseHook, len(r.afterResponse))
	copy(hooks, r.afterResponse)
	r.mu.RUnlock()

	for _, hook := range hooks {
		hook(ctx, resp)
	}
}
