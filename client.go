package sitepanel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flipr/sitepanel/hooks"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Version is the current sitepanel version
const Version = "1.0.0"

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Client talks to the REST collaborator that owns projects, clients,
// contacts, newsletter subscribers and the activity feed.
//
// A Client is safe for concurrent use. It never retries and keeps no cache:
// every call is exactly one HTTP request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	config     *ClientConfig
}

// NewClient creates a new API client.
//
// Example:
//
//	client, err := sitepanel.NewClient(&sitepanel.ClientConfig{
//	    BaseURL: "http://localhost:3000/api",
//	})
//	projects, err := client.ListProjects(ctx)
func NewClient(cfg *ClientConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultClientConfig()
	} else {
		c := *cfg
		cfg = &c
	}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
		if cfg.Timeout > 0 {
			httpClient.Timeout = cfg.Timeout
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		config:     cfg,
	}, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs req and decodes a successful JSON response into out (which may be nil).
//
// Failures come in two kinds: *NetworkError when no response was received,
// and *APIError for any non-2xx status.
func (c *Client) Do(ctx context.Context, req *Request, out any) error {
	op := req.Op()

	var body []byte
	if req.Body != nil {
		var err error
		body, err = json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.config.UserAgent)
	httpReq.Header.Set("X-Request-ID", requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.config.Hooks.TriggerBeforeRequest(ctx, &hooks.RequestInfo{
		RequestID: requestID,
		Method:    req.Method,
		URL:       httpReq.URL.String(),
		Body:      body,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		netErr := &NetworkError{Op: op, Err: err}
		c.afterResponse(ctx, requestID, httpReq, 0, start, netErr)
		c.logWarn("api request failed", "op", op, "request_id", requestID, "error", err)
		return netErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
		c.afterResponse(ctx, requestID, httpReq, resp.StatusCode, start, apiErr)
		c.logWarn("api request rejected", "op", op, "request_id", requestID, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		netErr := &NetworkError{Op: op, Err: fmt.Errorf("read body: %w", err)}
		c.afterResponse(ctx, requestID, httpReq, resp.StatusCode, start, netErr)
		return netErr
	}
	c.afterResponse(ctx, requestID, httpReq, resp.StatusCode, start, nil)

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) afterResponse(ctx context.Context, requestID string, req *http.Request, status int, start time.Time, err error) {
	c.config.Hooks.TriggerAfterResponse(ctx, &hooks.ResponseInfo{
		RequestID:  requestID,
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: status,
		Duration:   time.Since(start),
		Err:        err,
	})
}

func (c *Client) logWarn(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Warn(msg, args...)
	}
}

// errorMessage pulls a human-readable message out of an error body.
// It understands {"message": ...}, {"error": "..."} and {"error": {"message": ...}}.
func errorMessage(raw []byte) string {
	if !gjson.ValidBytes(raw) {
		return ""
	}
	for _, path := range []string{"message", "error.message", "error"} {
		res := gjson.GetBytes(raw, path)
		if res.Type == gjson.String && res.Str != "" {
			return res.Str
		}
	}
	return ""
}
