package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/conneroisu/bizconsult/internal/contact"
	"github.com/conneroisu/bizconsult/internal/page"
	"github.com/conneroisu/bizconsult/internal/version"
)

// maxFormBytes bounds the contact form body.
const maxFormBytes = 64 << 10

// contactResponse is the JSON body returned to clients that ask for it.
type contactResponse struct {
	Accepted     bool                  `json:"accepted"`
	Errors       map[string]string     `json:"errors"`
	Notification *contact.Notification `json:"notification,omitempty"`
}

func (s *Server) props() page.Props {
	return page.Props{
		Lang:      s.config.Site.Tag(),
		HotReload: s.hub != nil,
	}
}

// handleIndex renders the landing page with an empty form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, s.props(), http.StatusOK)
}

// handleContactRedirect sends a plain GET of the form endpoint back to the
// contact section.
func (s *Server) handleContactRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/#contact", http.StatusSeeOther)
}

// handleContact validates a posted submission. The page is re-rendered
// with inline errors (422) or with the confirmation toast and a cleared
// form (200). Submitted values are never logged.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Malformed form data", http.StatusBadRequest)
		return
	}

	form := contact.NewForm()
	for _, field := range contact.Fields() {
		form.Set(field, r.PostForm.Get(field.String()))
	}
	outcome := form.Submit()

	status := http.StatusOK
	if !outcome.Accepted {
		status = http.StatusUnprocessableEntity
	}

	if wantsJSON(r) {
		s.writeJSON(w, r, status, contactResponse{
			Accepted:     outcome.Accepted,
			Errors:       outcome.Errors.Messages(),
			Notification: outcome.Notification,
		})
		return
	}

	props := page.FromOutcome(form, outcome)
	props.Lang = s.config.Site.Tag()
	props.HotReload = s.hub != nil

	w.Header().Set("Cache-Control", "no-store")
	s.renderPage(w, r, props, status)
}

// handleHealth returns the server health status for health checks
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]interface{}{
		"server": map[string]interface{}{"status": "healthy"},
	}
	if s.hub != nil {
		checks["live_reload"] = map[string]interface{}{
			"status":  "healthy",
			"clients": s.hub.ClientCount(),
		}
	}

	s.writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     version.GetShortVersion(),
		"environment": s.config.Server.Environment,
		"checks":      checks,
	})
}

func (s *Server) handleReloadScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(page.ReloadScript))
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, props page.Props, status int) {
	handler := templ.Handler(page.Landing(props),
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			s.logger.Error(r.Context(), err, "Failed to render page")
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			})
		}),
	)
	handler.ServeHTTP(w, r)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to encode JSON response")
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// noDirectoryListing hides the file server's generated directory indexes.
func noDirectoryListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
