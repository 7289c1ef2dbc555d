package hooks

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
}

func TestOnBeforeRequest(t *testing.T) {
	r := NewRegistry()
	var captured *RequestInfo

	r.OnBeforeRequest(func(ctx context.Context, req *RequestInfo) {
		captured = req
	})

	r.TriggerBeforeRequest(context.Background(), &RequestInfo{Method: "GET", URL: "http://api/projects"})
	if captured == nil {
		t.Fatal("hook was not called")
	}
	if captured.Method != "GET" {
		t.Errorf("expected method 'GET', got '%s'", captured.Method)
	}
}

func TestOnAfterResponse(t *testing.T) {
	r := NewRegistry()
	var status int

	r.OnAfterResponse(func(ctx context.Context, resp *ResponseInfo) {
		status = resp.StatusCode
	})

	r.TriggerAfterResponse(context.Background(), &ResponseInfo{StatusCode: 201})
	if status != 201 {
		t.Errorf("expected status 201, got %d", status)
	}
}

func TestHooksRunInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	var order []int

	r.OnBeforeRequest(func(ctx context.Context, req *RequestInfo) { order = append(order, 1) })
	r.OnBeforeRequest(func(ctx context.Context, req *RequestInfo) { order = append(order, 2) })
	r.OnBeforeRequest(func(ctx context.Context, req *RequestInfo) { order = append(order, 3) })

	r.TriggerBeforeRequest(context.Background(), &RequestInfo{})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("unexpected order: %v", order)
	}
}

func TestNilRegistryIsNoop(t *testing.T) {
	var r *Registry
	r.TriggerBeforeRequest(context.Background(), &RequestInfo{})
	r.TriggerAfterResponse(context.Background(), &ResponseInfo{})
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.OnAfterResponse(func(ctx context.Context, resp *ResponseInfo) {})
		}()
		go func() {
			defer wg.Done()
			r.TriggerAfterResponse(context.Background(), &ResponseInfo{})
		}()
	}
	wg.Wait()
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry()
	NewLoggingHooks(log.New(&buf, "", 0)).Register(r)

	r.TriggerBeforeRequest(context.Background(), &RequestInfo{RequestID: "req-1", Method: "DELETE", URL: "http://api/projects/42"})
	r.TriggerAfterResponse(context.Background(), &ResponseInfo{Method: "DELETE", URL: "http://api/projects/42", StatusCode: 200})
	r.TriggerAfterResponse(context.Background(), &ResponseInfo{Method: "GET", URL: "http://api/clients", Err: errors.New("connection refused")})

	out := buf.String()
	for _, want := range []string{
		"DELETE http://api/projects/42 (request_id=req-1)",
		"-> 200",
		"GET http://api/clients failed",
		"connection refused",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestVerboseLoggingHooks_LogsBody(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry()
	NewVerboseLoggingHooks(log.New(&buf, "", 0)).Register(r)

	r.TriggerBeforeRequest(context.Background(), &RequestInfo{Method: "POST", URL: "http://api/newsletter", Body: []byte(`{"email":"a@b.com"}`)})

	if !strings.Contains(buf.String(), `{"email":"a@b.com"}`) {
		t.Errorf("expected body in verbose log, got:\n%s", buf.String())
	}
}
