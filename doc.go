// Package sitepanel is the Go side of a small business website: a typed client
// for the REST API that owns projects, client testimonials, contact submissions
// and newsletter subscribers, plus (in package ui) the public site and admin
// panel rendered on top of it.
//
// # Quick Start
//
//	client, err := sitepanel.NewClient(&sitepanel.ClientConfig{
//	    BaseURL: "http://localhost:3000/api",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	projects, err := client.ListProjects(ctx)
//
// # Requests
//
// Every API call is first described as a *Request by a pure builder
// (ListRequest, CreateProjectRequest, DeleteRequest, ...) and then sent with
// Client.Do. The admin and public controllers in ui/service plan user actions
// as Requests, so they can be tested without a network.
//
// # Errors
//
// Client.Do returns *NetworkError (matching ErrNetwork) when no response was
// received and *APIError for non-2xx responses. ServerMessage extracts the
// server-provided message for display:
//
//	if err != nil {
//	    msg := sitepanel.ServerMessage(err, "Failed to add project")
//	}
//
// Nothing is retried.
//
// # Hooks
//
// Register hooks to observe traffic:
//
//	reg := hooks.NewRegistry()
//	hooks.DefaultLoggingHooks().Register(reg)
//	client, _ := sitepanel.NewClient(nil, sitepanel.WithHooks(reg))
package sitepanel
