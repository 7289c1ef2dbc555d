// Package frontend provides SSR frontend handlers for the public site and the
// admin panel.
//
// The frontend uses HTMX for interactivity and Tailwind CSS for styling,
// both loaded via CDN for simplicity. Every form also works without
// JavaScript: a plain POST re-renders the whole page.
//
// # Routes
//
// Public Site:
//   - GET / - Landing page with projects and client testimonials
//   - POST /contact - Contact form (full page or HTMX fragment)
//   - POST /newsletter - Newsletter sign-up (full page or HTMX fragment)
//
// Admin Panel (under AdminPath, "/admin" by default):
//   - GET /admin - Dashboard
//   - GET /admin/{section} - dashboard, projects, clients, contacts or newsletter
//   - POST /admin/projects - Add a project
//   - POST /admin/clients - Add a client
//   - POST /admin/{collection}/{id}/delete - Delete a project or client
//
// HTMX Fragments:
//   - GET /admin/fragments/dashboard-stats - Dashboard counts, polled every RefreshInterval
//
// Static Assets:
//   - GET /static/* - Embedded static files (JS)
package frontend
