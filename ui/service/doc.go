// Package service provides the shared logic behind the public site and the
// admin panel.
//
// The service layer is HTTP-agnostic and used by both the REST API and
// SSR frontend handlers. It talks to the external API through the Backend
// interface (satisfied by *sitepanel.Client) and returns view models that
// templates render without further decisions.
//
// # Usage
//
//	client, _ := sitepanel.NewClient(nil)
//	svc := service.New(client, nil)
//
//	// Public page: project and client cards
//	page := svc.PublicPage(ctx)
//
//	// Admin panel: one controller per view
//	panel := svc.NewPanel()
//	_ = panel.Navigate(ctx, service.SectionProjects)
//	view := panel.View()
//
// # Actions
//
// Every user action (submitting a form, deleting a record, loading a section)
// is a value implementing Action. Its Plan method is pure: it returns the
// *sitepanel.Request the action intends to send, or a validation error when
// nothing should be sent. Service.Dispatch plans and then sends.
//
// # Failures
//
// No failure escapes as an error to the caller of PublicPage, Dashboard or the
// table loaders: every failure becomes view state (a placeholder, a "0" count,
// a flash message) and is logged through Config.Logger. Nothing is retried.
package service
