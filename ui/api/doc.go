// Package api provides JSON handlers for the public site and the admin panel.
//
// The API layer exposes the same view models the SSR frontend renders, for
// scripts and tests. Every response uses the {"data":...,"error":...}
// envelope.
//
// # Endpoints
//
// Public Site:
//   - GET /public - Project and client cards
//   - POST /contacts - Submit the contact form
//   - POST /newsletter - Subscribe an email
//
// Dashboard:
//   - GET /dashboard - Counts and activity feed
//   - GET /dashboard/events - SSE stream of counts, every RefreshInterval
//
// Admin Sections:
//   - GET /sections/{section} - Panel view of one section
//   - POST /projects - Add a project
//   - POST /clients - Add a client
//   - DELETE /projects/{id} - Delete a project
//   - DELETE /clients/{id} - Delete a client
//
// Mutating admin endpoints answer 403 when ReadOnly is set. Action
// endpoints answer 422 when input validation stopped the action and 502
// when the backing API rejected or never answered it.
package api
