// Package internal contains the implementation packages for the BizConsult
// site. They follow Go's internal package convention and are not importable
// by other modules.
//
// # Package Organization
//
//   - config: viper-backed configuration with defaults and validation
//   - contact: the contact form submission, its validator and form record
//   - content: the fixed copy and tables the landing page is built from
//   - errors: coded application errors and field-scoped validation errors
//   - logging: levelled structured logger
//   - page: templ components for the landing page and an HTML inspector
//   - server: HTTP routes, security middleware, rate limiting and live reload
//   - validation: origin and URL checks used by the server
//   - version: build metadata
//   - watcher: debounced file system watcher for the assets directory
//
// # Request Flow
//
// A contact post-back creates a contact.Form for the request, submits it
// and renders the page from the outcome. No form state is shared between
// requests. In development the watcher reports asset changes to the
// server, which broadcasts a reload to connected browsers over websocket.
package internal
