package hooks

import (
	"context"
	"log"
)

// LoggingHooks provides built-in logging hooks for API traffic
type LoggingHooks struct {
	logger *log.Logger
}

// NewLoggingHooks creates logging hooks with the provided logger
func NewLoggingHooks(logger *log.Logger) *LoggingHooks {
	return &LoggingHooks{logger: logger}
}

// DefaultLoggingHooks creates logging hooks with default logger
func DefaultLoggingHooks() *LoggingHooks {
	return &LoggingHooks{logger: log.Default()}
}

// Register attaches the hooks to a registry
func (h *LoggingHooks) Register(r *Registry) {
	r.OnBeforeRequest(h.BeforeRequest)
	r.OnAfterResponse(h.AfterResponse)
}

// BeforeRequest logs the outgoing request line
func (h *LoggingHooks) BeforeRequest(ctx context.Context, req *RequestInfo) {
	h.logger.Printf("[sitepanel] %s %s (request_id=%s)", req.Method, req.URL, req.RequestID)
}

// AfterResponse logs the status, or the transport error for failed requests
func (h *LoggingHooks) AfterResponse(ctx context.Context, resp *ResponseInfo) {
	if resp.Err != nil && resp.StatusCode == 0 {
		h.logger.Printf("[sitepanel] %s %s failed after %v: %v", resp.Method, resp.URL, resp.Duration, resp.Err)
		return
	}
	h.logger.Printf("[sitepanel] %s %s -> %d in %v", resp.Method, resp.URL, resp.StatusCode, resp.Duration)
}

// VerboseLoggingHooks also logs request bodies, for debugging
type VerboseLoggingHooks struct {
	logger *log.Logger
}

// NewVerboseLoggingHooks creates verbose logging hooks
func NewVerboseLoggingHooks(logger *log.Logger) *VerboseLoggingHooks {
	return &VerboseLoggingHooks{logger: logger}
}

// Register attaches the hooks to a registry
func (h *VerboseLoggingHooks) Register(r *Registry) {
	r.OnBeforeRequest(h.BeforeRequest)
	r.OnAfterResponse(h.AfterResponse)
}

// BeforeRequest logs the request line and body
func (h *VerboseLoggingHooks) BeforeRequest(ctx context.Context, req *RequestInfo) {
	h.logger.Printf("[sitepanel][VERBOSE] === %s %s ===", req.Method, req.URL)
	h.logger.Printf("[sitepanel][VERBOSE] Request ID: %s", req.RequestID)
	if len(req.Body) > 0 {
		h.logger.Printf("[sitepanel][VERBOSE] Body: %s", string(req.Body))
	}
}

// AfterResponse logs status, duration and error
func (h *VerboseLoggingHooks) AfterResponse(ctx context.Context, resp *ResponseInfo) {
	h.logger.Printf("[sitepanel][VERBOSE] Status: %d", resp.StatusCode)
	h.logger.Printf("[sitepanel][VERBOSE] Duration: %v", resp.Duration)
	if resp.Err != nil {
		h.logger.Printf("[sitepanel][VERBOSE] Error: %v", resp.Err)
	}
}
